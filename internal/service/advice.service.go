package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"verdant/internal/calculator"
	"verdant/internal/domain"
	"verdant/internal/repository"
)

// advicePromptTopN caps how many ranked instruments the prompt describes.
const advicePromptTopN = 5

type AdviceService interface {
	// GenerateAdvice builds the prompt for a calculation snapshot, calls
	// the narrative model, and parses the response into sections. The
	// narrative is attached to the snapshot only if it is still current;
	// the caller receives it either way.
	GenerateAdvice(ctx context.Context, result *domain.CalculationResult) (*domain.Narrative, error)
}

type adviceServiceHandler struct {
	GptRepository    repository.GptRepository
	ScreeningService ScreeningService
	Log              *zap.SugaredLogger
}

func NewAdviceService(
	gptRepository repository.GptRepository,
	screeningService ScreeningService,
	log *zap.SugaredLogger,
) AdviceService {
	return adviceServiceHandler{
		GptRepository:    gptRepository,
		ScreeningService: screeningService,
		Log:              log,
	}
}

func (h adviceServiceHandler) GenerateAdvice(ctx context.Context, result *domain.CalculationResult) (*domain.Narrative, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no calculation to advise on", domain.ErrInvalidParameter)
	}

	prompt := BuildAdvicePrompt(result)
	text, err := h.GptRepository.GenerateNarrative(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advice: %w", err)
	}

	narrative := calculator.SplitNarrative(text)
	if !h.ScreeningService.AttachNarrative(result.SnapshotID, narrative) {
		h.Log.Infow("narrative arrived for a superseded snapshot", "snapshotID", result.SnapshotID)
	}

	return &narrative, nil
}

// BuildAdvicePrompt renders the snapshot into the instruction the narrative
// model answers. The section headers here must stay in lockstep with
// calculator.SectionHeadings or the response splitter degrades to the
// unstructured fallback.
func BuildAdvicePrompt(result *domain.CalculationResult) string {
	params := result.Params
	riskLabel := strings.ToLower(params.RiskTier.DisplayLabel())
	envWeight := params.Weights.Environmental()
	finWeight := params.Weights.Financial()

	top := result.Investable
	if len(top) > advicePromptTopN {
		top = top[:advicePromptTopN]
	}

	topLines := []string{}
	for i, s := range top {
		netZero := "none"
		if s.NetZeroYear != domain.NetZeroYearNone {
			netZero = fmt.Sprintf("%d", s.NetZeroYear)
		}
		topLines = append(topLines, fmt.Sprintf(
			"%d. %s (%s) — Composite: %d/100, Carbon: %d/100 (Grade %s), MSCI: %s, Projected %dyr gain: %+.0f%%, Annual return est: %.0f%%, Net Zero target: %s",
			i+1, s.Ticker, s.Name, s.CompositeScore, s.CarbonScore, s.CarbonGrade,
			s.EsgRating, params.HorizonYears, s.GainPercent, s.AnnualRatePercent, netZero,
		))
	}

	avoidParts := []string{}
	for _, s := range result.Excluded {
		avoidParts = append(avoidParts, fmt.Sprintf(
			"%s (Grade %s, %.1f tCO2/$M revenue)", s.Ticker, s.CarbonGrade, s.CarbonIntensity,
		))
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"You are VERDANT, an expert green investment advisor specialising in S&P 500 ESG analysis. "+
			"A user wants to invest $%.0f with a %d-year horizon and %s risk tolerance. "+
			"They've weighted their priorities as %d%% environmental and %d%% financial return.\n\n",
		params.InvestmentAmount, params.HorizonYears, riskLabel, envWeight, finWeight,
	)
	fmt.Fprintf(&b, "Top %d stocks ranked by composite score (%d%% environmental + %d%% financial):\n%s\n\n",
		len(top), envWeight, finWeight, strings.Join(topLines, "\n"))
	fmt.Fprintf(&b, "ESG stocks to avoid: %s\n\n", strings.Join(avoidParts, ", "))

	b.WriteString("Write a personalised, SUCCINCT, actionable investment recommendation. " +
		"Use the actual numbers provided. Structure your text-only response with these exact sections:\n\n")
	fmt.Fprintf(&b, "YOUR INVESTMENT PROFILE\nWhat $%.0f + %d-year + %s risk + %d/%d env/fin weighting means strategically.\n\n",
		params.InvestmentAmount, params.HorizonYears, riskLabel, envWeight, finWeight)
	b.WriteString("TOP RECOMMENDATION\nWhy the #1 stock is the best fit. Include specific shares they can buy and projected portfolio value.\n\n")
	fmt.Fprintf(&b, "SUGGESTED ALLOCATION\nHow to split $%.0f across 2-4 of the top stocks. Give specific dollar amounts and rationale.\n\n",
		params.InvestmentAmount)
	b.WriteString("ENVIRONMENTAL IMPACT\nWhat choosing these stocks means for their environmental footprint vs. investing in XOM/CVX instead.\n\n")
	b.WriteString("KEY RISKS TO WATCH\n2-3 specific risks: market, regulatory, and ESG-washing considerations.\n\n")
	b.WriteString("FINAL VERDICT\nA crisp, confident recommendation they can act on today.\n\n")
	b.WriteString(`End with exactly: "This is for educational purposes only and does not constitute financial advice."`)

	return b.String()
}
