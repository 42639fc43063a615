package domain

import "fmt"

type RiskTier string

const (
	RiskTierLow    RiskTier = "low"
	RiskTierMedium RiskTier = "medium"
	RiskTierHigh   RiskTier = "high"
)

func NewRiskTier(s string) (RiskTier, error) {
	switch RiskTier(s) {
	case RiskTierLow, RiskTierMedium, RiskTierHigh:
		return RiskTier(s), nil
	}
	return "", fmt.Errorf("%w: unknown risk tier %q", ErrInvalidParameter, s)
}

// DisplayLabel is the user-facing name for the tier.
func (r RiskTier) DisplayLabel() string {
	switch r {
	case RiskTierLow:
		return "Conservative"
	case RiskTierMedium:
		return "Balanced"
	case RiskTierHigh:
		return "Aggressive"
	}
	return string(r)
}

type CarbonGrade string

const (
	CarbonGradeA CarbonGrade = "A"
	CarbonGradeB CarbonGrade = "B"
	CarbonGradeC CarbonGrade = "C"
	CarbonGradeD CarbonGrade = "D"
	CarbonGradeF CarbonGrade = "F"
)

// GradeForScore maps a 0-100 carbon score to its letter band:
// A 80-100, B 60-79, C 40-59, D 20-39, F 0-19.
func GradeForScore(score int) CarbonGrade {
	switch {
	case score >= 80:
		return CarbonGradeA
	case score >= 60:
		return CarbonGradeB
	case score >= 40:
		return CarbonGradeC
	case score >= 20:
		return CarbonGradeD
	}
	return CarbonGradeF
}

type RecommendationLabel string

const (
	RecommendationStrongBuy RecommendationLabel = "STRONG BUY"
	RecommendationBuy       RecommendationLabel = "BUY"
	RecommendationHold      RecommendationLabel = "HOLD"
	RecommendationAvoid     RecommendationLabel = "AVOID"
)

// NetZeroYearNone marks instruments with no net zero commitment.
const NetZeroYearNone = 0

// InstrumentRecord is one row of the static catalog. Records are loaded once
// at startup and never mutated; live quotes shadow Price through the overlay
// instead of writing here.
type InstrumentRecord struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Description string `json:"description"`

	Price           float64 `json:"price"`
	MarketCap       string  `json:"marketCap"`
	PriceToEarnings float64 `json:"priceToEarnings"`

	CarbonScore      int         `json:"carbonScore"`
	CarbonGrade      CarbonGrade `json:"carbonGrade"`
	EsgRating        string      `json:"esgRating"`
	Scope1Emissions  float64     `json:"scope1Emissions"`
	Scope2Emissions  float64     `json:"scope2Emissions"`
	Scope3Emissions  float64     `json:"scope3Emissions"`
	CarbonIntensity  float64     `json:"carbonIntensity"`
	NetZeroYear      int         `json:"netZeroYear"`
	Renewables       int         `json:"renewablesPercent"`
	ReductionTarget  string      `json:"reductionHeadline"`
	CommitmentDetail string      `json:"commitmentDetail"`

	Pros []string `json:"pros"`
	Cons []string `json:"cons"`

	AnnualReturn map[RiskTier]float64 `json:"annualReturn"`

	Recommendation      RecommendationLabel `json:"recommendation"`
	RecommendationClass string              `json:"recommendationClass"`
}

// AnnualReturnPercent looks up the estimated annual return for a tier.
func (r InstrumentRecord) AnnualReturnPercent(tier RiskTier) (float64, error) {
	if _, err := NewRiskTier(string(tier)); err != nil {
		return 0, err
	}
	rate, ok := r.AnnualReturn[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no return estimate for tier %q", ErrInvalidParameter, r.Ticker, tier)
	}
	return rate, nil
}

// EffectivePrice resolves the price to use for a record: the overlay entry
// when one exists, the catalog default otherwise. Neither input is mutated.
func EffectivePrice(r InstrumentRecord, overlay map[string]float64) (price float64, live bool) {
	if p, ok := overlay[r.Ticker]; ok && p > 0 {
		return p, true
	}
	return r.Price, false
}
