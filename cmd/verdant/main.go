package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"verdant/internal/calculator"
	"verdant/internal/domain"
	"verdant/internal/logger"
	"verdant/internal/repository"
	"verdant/internal/service"
	"verdant/internal/util"
)

type screenFlags struct {
	amount    float64
	years     int
	risk      string
	envWeight int
	query     string
	live      bool
	advice    bool
}

func main() {
	flags := screenFlags{}

	rootCmd := &cobra.Command{
		Use:   "verdant",
		Short: "Screen S&P 500 instruments on carbon and return",
	}

	screenCmd := &cobra.Command{
		Use:   "screen",
		Short: "Rank the catalog for an investment profile and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd.Context(), flags)
		},
	}
	screenCmd.Flags().Float64Var(&flags.amount, "amount", 10000, "investment amount in dollars")
	screenCmd.Flags().IntVar(&flags.years, "years", 10, "investment horizon in years")
	screenCmd.Flags().StringVar(&flags.risk, "risk", "medium", "risk tier: low, medium or high")
	screenCmd.Flags().IntVar(&flags.envWeight, "env-weight", 50, "environmental weight percent (financial gets the rest)")
	screenCmd.Flags().StringVar(&flags.query, "query", "", "filter ranked rows by ticker or name substring")
	screenCmd.Flags().BoolVar(&flags.live, "live", false, "refresh live quotes before screening")
	screenCmd.Flags().BoolVar(&flags.advice, "advice", false, "generate a model-written recommendation (needs OPENAI_API_KEY)")
	rootCmd.AddCommand(screenCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScreen(ctx context.Context, flags screenFlags) error {
	log := logger.New()

	catalogRepository, err := repository.NewCatalogRepository()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	priceService := service.NewPriceService(repository.NewQuoteRepository(), catalogRepository.Tickers(), log)
	screeningService := service.NewScreeningService(catalogRepository, priceService, log)

	if flags.live {
		updated := priceService.RefreshQuotes(ctx)
		live, total := priceService.Coverage()
		fmt.Printf("refreshed %d quotes (%d/%d live)\n\n", updated, live, total)
	}

	tier, err := domain.NewRiskTier(flags.risk)
	if err != nil {
		return err
	}
	weights, err := domain.NewWeightSplit(flags.envWeight)
	if err != nil {
		return err
	}

	result, err := screeningService.Calculate(ctx, domain.UserParameters{
		InvestmentAmount: flags.amount,
		HorizonYears:     flags.years,
		RiskTier:         tier,
		Weights:          weights,
	})
	if err != nil {
		return err
	}

	printResult(result, flags.query)

	if flags.advice {
		if err := printAdvice(ctx, screeningService, result, log); err != nil {
			return err
		}
	}
	return nil
}

func printResult(result *domain.CalculationResult, query string) {
	params := result.Params
	fmt.Printf("%s profile: $%.0f over %d years, %d%% environmental / %d%% financial\n\n",
		params.RiskTier.DisplayLabel(), params.InvestmentAmount, params.HorizonYears,
		params.Weights.Environmental(), params.Weights.Financial())

	amount := decimal.NewFromFloat(params.InvestmentAmount)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "TICKER", "NAME", "PRICE", "CARBON", "RETURN", "SCORE", "PROJECTED", "GAIN", "SHARES"})
	for i, s := range result.Investable {
		if !calculator.MatchesQuery(s, query) {
			continue
		}
		price := fmt.Sprintf("%.2f", s.EffectivePrice)
		if s.UsedLivePrice {
			price += "*"
		}
		shares := "-"
		if est, err := calculator.EstimateShares(amount, decimal.NewFromFloat(s.EffectivePrice)); err == nil {
			shares = fmt.Sprintf("%d", est.Shares)
		}
		tw.AppendRow(table.Row{
			i + 1, s.Ticker, s.Name, price,
			fmt.Sprintf("%d (%s)", s.CarbonScore, s.CarbonGrade),
			s.ReturnScore, s.CompositeScore,
			fmt.Sprintf("%.2f", s.FutureValue),
			fmt.Sprintf("%+.1f%%", s.GainPercent),
			shares,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
		{Number: 10, Align: text.AlignRight},
	})
	tw.Render()

	if len(result.Excluded) > 0 {
		fmt.Println()
		ex := table.NewWriter()
		ex.SetOutputMirror(os.Stdout)
		ex.SetStyle(table.StyleLight)
		ex.AppendHeader(table.Row{"EXCLUDED", "GRADE", "INTENSITY", "SCOPE 1", "CONCERN"})
		for _, s := range result.Excluded {
			concern := ""
			if len(s.Cons) > 0 {
				concern = s.Cons[0]
			}
			ex.AppendRow(table.Row{
				s.Ticker, s.CarbonGrade,
				fmt.Sprintf("%.1f tCO2/$M", s.CarbonIntensity),
				calculator.FormatEmissions(s.Scope1Emissions),
				concern,
			})
		}
		ex.Render()
	}

	if len(result.Allocations) > 0 {
		fmt.Println()
		al := table.NewWriter()
		al.SetOutputMirror(os.Stdout)
		al.SetStyle(table.StyleLight)
		al.AppendHeader(table.Row{"ALLOCATION", "PERCENT", "AMOUNT"})
		for _, line := range result.Allocations {
			al.AppendRow(table.Row{line.Ticker, fmt.Sprintf("%d%%", line.AllocationPercent), "$" + line.AllocationAmount.StringFixed(2)})
		}
		al.Render()
	}

	fmt.Println()
	fmt.Printf("top pick %s projects to $%.2f (+$%.2f); avg carbon of top 3: %d/100; best gain: %s at %+.1f%%\n",
		result.Summary.TopTicker, result.Summary.TopFutureValue, result.Summary.TopGainAbsolute,
		result.Summary.AvgCarbonTop3, result.Summary.BestGainTicker, result.Summary.BestGainPercent)
	if result.UsedLivePrices {
		fmt.Println("* price from live quote")
	}
}

func printAdvice(ctx context.Context, screeningService service.ScreeningService, result *domain.CalculationResult, log *zap.SugaredLogger) error {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return err
	}
	if secrets.OpenAIApiKey == "" {
		return fmt.Errorf("%w: --advice requires OPENAI_API_KEY or a secrets file", domain.ErrInvalidParameter)
	}

	gptRepository, err := repository.NewGptRepository(secrets.OpenAIApiKey)
	if err != nil {
		return err
	}
	adviceService := service.NewAdviceService(gptRepository, screeningService, log)

	narrative, err := adviceService.GenerateAdvice(ctx, result)
	if err != nil {
		return err
	}

	fmt.Println()
	if !narrative.Structured {
		fmt.Println(narrative.Raw)
		return nil
	}
	for _, section := range narrative.Sections {
		fmt.Println(text.Bold.Sprint(section.Heading))
		fmt.Println(strings.TrimSpace(section.Body))
		fmt.Println()
	}
	if narrative.Disclaimer != "" {
		fmt.Println(text.Italic.Sprint(narrative.Disclaimer))
	}
	return nil
}
