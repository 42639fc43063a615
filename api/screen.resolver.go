package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verdant/internal/calculator"
	"verdant/internal/domain"
)

type screenRequest struct {
	InvestmentAmount    float64 `json:"investmentAmount"`
	HorizonYears        int     `json:"horizonYears"`
	RiskTier            string  `json:"riskTier"`
	EnvironmentalWeight *int    `json:"environmentalWeightPercent"`
	FinancialWeight     *int    `json:"financialWeightPercent"`

	// optional substring filter over the investable rows
	Query string `json:"query"`
}

type rankedRow struct {
	Rank              int     `json:"rank"`
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	Sector            string  `json:"sector"`
	EffectivePrice    float64 `json:"effectivePrice"`
	UsedLivePrice     bool    `json:"usedLivePrice"`
	CarbonScore       int     `json:"carbonScore"`
	CarbonGrade       string  `json:"carbonGrade"`
	EsgRating         string  `json:"esgRating"`
	ReturnScore       int     `json:"returnScore"`
	CompositeScore    int     `json:"compositeScore"`
	FutureValue       float64 `json:"futureValue"`
	GainAbsolute      float64 `json:"gainAbsolute"`
	GainPercent       float64 `json:"gainPercent"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	Shares            int64   `json:"shares"`
	EstimatedCost     string  `json:"estimatedCost"`
}

type excludedRow struct {
	Ticker          string  `json:"ticker"`
	Name            string  `json:"name"`
	CarbonGrade     string  `json:"carbonGrade"`
	CarbonIntensity float64 `json:"carbonIntensity"`
	TopConcern      string  `json:"topConcern"`
}

type allocationRow struct {
	Ticker            string `json:"ticker"`
	AllocationPercent int    `json:"allocationPercent"`
	AllocationAmount  string `json:"allocationAmount"`
}

type summaryBlock struct {
	TopTicker       string  `json:"topTicker"`
	TopFutureValue  float64 `json:"topFutureValue"`
	TopGainAbsolute float64 `json:"topGainAbsolute"`
	AvgCarbonTop3   int     `json:"avgCarbonTop3"`
	BestGainTicker  string  `json:"bestGainTicker"`
	BestGainPercent float64 `json:"bestGainPercent"`
}

type screenResponse struct {
	SnapshotID     string          `json:"snapshotID"`
	Investable     []rankedRow     `json:"investable"`
	Excluded       []excludedRow   `json:"excluded"`
	Allocations    []allocationRow `json:"allocations"`
	Summary        summaryBlock    `json:"summary"`
	UsedLivePrices bool            `json:"usedLivePrices"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

func parseUserParameters(requestBody screenRequest) (domain.UserParameters, error) {
	tier, err := domain.NewRiskTier(requestBody.RiskTier)
	if err != nil {
		return domain.UserParameters{}, err
	}

	var weights domain.WeightSplit
	switch {
	case requestBody.EnvironmentalWeight != nil && requestBody.FinancialWeight != nil:
		if *requestBody.EnvironmentalWeight+*requestBody.FinancialWeight != 100 {
			return domain.UserParameters{}, fmt.Errorf("%w: weights must sum to 100", domain.ErrInvalidParameter)
		}
		weights, err = domain.NewWeightSplit(*requestBody.EnvironmentalWeight)
	case requestBody.EnvironmentalWeight != nil:
		weights, err = domain.NewWeightSplit(*requestBody.EnvironmentalWeight)
	case requestBody.FinancialWeight != nil:
		weights, err = domain.WeightSplitFromFinancial(*requestBody.FinancialWeight)
	default:
		weights, err = domain.NewWeightSplit(50)
	}
	if err != nil {
		return domain.UserParameters{}, err
	}

	return domain.UserParameters{
		InvestmentAmount: requestBody.InvestmentAmount,
		HorizonYears:     requestBody.HorizonYears,
		RiskTier:         tier,
		Weights:          weights,
	}, nil
}

func (m ApiHandler) screen(c *gin.Context) {
	var requestBody screenRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err), c)
		return
	}

	params, err := parseUserParameters(requestBody)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.ScreeningService.Calculate(c.Request.Context(), params)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run screen: %w", err), c)
		return
	}

	responseJson, err := buildScreenResponse(result, requestBody.Query)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, responseJson)
}

func buildScreenResponse(result *domain.CalculationResult, query string) (screenResponse, error) {
	amount := decimal.NewFromFloat(result.Params.InvestmentAmount)

	investable := []rankedRow{}
	for i, s := range result.Investable {
		// filtering hides rows but keeps their rank in the full ordering
		if !calculator.MatchesQuery(s, query) {
			continue
		}
		est, err := calculator.EstimateShares(amount, decimal.NewFromFloat(s.EffectivePrice))
		if err != nil {
			return screenResponse{}, fmt.Errorf("failed to size %s: %w", s.Ticker, err)
		}
		investable = append(investable, rankedRow{
			Rank:              i + 1,
			Ticker:            s.Ticker,
			Name:              s.Name,
			Sector:            s.Sector,
			EffectivePrice:    s.EffectivePrice,
			UsedLivePrice:     s.UsedLivePrice,
			CarbonScore:       s.CarbonScore,
			CarbonGrade:       string(s.CarbonGrade),
			EsgRating:         s.EsgRating,
			ReturnScore:       s.ReturnScore,
			CompositeScore:    s.CompositeScore,
			FutureValue:       s.FutureValue,
			GainAbsolute:      s.GainAbsolute,
			GainPercent:       s.GainPercent,
			AnnualRatePercent: s.AnnualRatePercent,
			Shares:            est.Shares,
			EstimatedCost:     est.EstimatedCost.StringFixed(2),
		})
	}

	excluded := []excludedRow{}
	for _, s := range result.Excluded {
		concern := ""
		if len(s.Cons) > 0 {
			concern = s.Cons[0]
		}
		excluded = append(excluded, excludedRow{
			Ticker:          s.Ticker,
			Name:            s.Name,
			CarbonGrade:     string(s.CarbonGrade),
			CarbonIntensity: s.CarbonIntensity,
			TopConcern:      concern,
		})
	}

	allocations := []allocationRow{}
	for _, line := range result.Allocations {
		allocations = append(allocations, allocationRow{
			Ticker:            line.Ticker,
			AllocationPercent: line.AllocationPercent,
			AllocationAmount:  line.AllocationAmount.StringFixed(2),
		})
	}

	return screenResponse{
		SnapshotID:  result.SnapshotID.String(),
		Investable:  investable,
		Excluded:    excluded,
		Allocations: allocations,
		Summary: summaryBlock{
			TopTicker:       result.Summary.TopTicker,
			TopFutureValue:  result.Summary.TopFutureValue,
			TopGainAbsolute: result.Summary.TopGainAbsolute,
			AvgCarbonTop3:   result.Summary.AvgCarbonTop3,
			BestGainTicker:  result.Summary.BestGainTicker,
			BestGainPercent: result.Summary.BestGainPercent,
		},
		UsedLivePrices: result.UsedLivePrices,
		GeneratedAt:    result.GeneratedAt,
	}, nil
}
