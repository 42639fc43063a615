package calculator

import (
	"fmt"
	"math"

	"verdant/internal/domain"
)

// Calibration bounds for normalizing annual returns to 0-100. These are
// fixed constants, not derived from the live catalog, so scores stay
// comparable across runs; a catalog update outside the range saturates at
// 0 or 100 rather than rescaling everyone else.
const (
	ReturnMin = 3.0
	ReturnMax = 40.0
)

// RoundHalfUp rounds to the nearest integer with .5 going up. Composite
// scores drive both ranking and display, so a single rule is used
// everywhere.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func normalizeReturn(annualReturnPercent float64) float64 {
	score := (annualReturnPercent - ReturnMin) / (ReturnMax - ReturnMin) * 100
	return math.Min(100, math.Max(0, score))
}

// ProjectReturn compounds amount at ratePercent/year over the horizon.
// A zero-year horizon returns the amount unchanged.
func ProjectReturn(amount float64, years int, ratePercent float64) (futureValue, gainAbsolute, gainPercent float64) {
	futureValue = amount * math.Pow(1+ratePercent/100, float64(years))
	gainAbsolute = futureValue - amount
	gainPercent = gainAbsolute / amount * 100
	return futureValue, gainAbsolute, gainPercent
}

// ScoreInstrument derives the full per-instrument view for one calculation
// run: the normalized return score, the weighted composite, and the
// projected return triple. Ranking math reads only CarbonScore; the stored
// grade is display-only.
func ScoreInstrument(rec domain.InstrumentRecord, effectivePrice float64, usedLive bool, params domain.UserParameters) (domain.ScoredInstrument, error) {
	rate, err := rec.AnnualReturnPercent(params.RiskTier)
	if err != nil {
		return domain.ScoredInstrument{}, fmt.Errorf("failed to score %s: %w", rec.Ticker, err)
	}

	returnScore := RoundHalfUp(normalizeReturn(rate))
	composite := RoundHalfUp(
		float64(rec.CarbonScore)*float64(params.Weights.Environmental())/100 +
			float64(returnScore)*float64(params.Weights.Financial())/100,
	)

	futureValue, gainAbs, gainPct := ProjectReturn(params.InvestmentAmount, params.HorizonYears, rate)

	return domain.ScoredInstrument{
		InstrumentRecord:  rec,
		EffectivePrice:    effectivePrice,
		UsedLivePrice:     usedLive,
		ReturnScore:       returnScore,
		CompositeScore:    composite,
		FutureValue:       futureValue,
		GainAbsolute:      gainAbs,
		GainPercent:       gainPct,
		AnnualRatePercent: rate,
	}, nil
}
