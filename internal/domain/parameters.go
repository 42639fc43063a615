package domain

import "fmt"

// OfferedHorizons is the enumerated set of investment horizons the product
// offers. Anything outside this list is rejected as an invalid parameter.
var OfferedHorizons = []int{1, 3, 5, 10, 15, 20}

// WeightSplit couples the environmental and financial weights so they are
// structurally guaranteed to sum to 100. Only the environmental share is
// stored; the financial share is derived.
type WeightSplit struct {
	env int
}

func NewWeightSplit(environmentalPercent int) (WeightSplit, error) {
	if environmentalPercent < 0 || environmentalPercent > 100 {
		return WeightSplit{}, fmt.Errorf("%w: environmental weight %d must be 0-100", ErrInvalidParameter, environmentalPercent)
	}
	return WeightSplit{env: environmentalPercent}, nil
}

// WeightSplitFromFinancial builds the split from the financial side, the way
// the coupled slider pair derives one control from the other.
func WeightSplitFromFinancial(financialPercent int) (WeightSplit, error) {
	if financialPercent < 0 || financialPercent > 100 {
		return WeightSplit{}, fmt.Errorf("%w: financial weight %d must be 0-100", ErrInvalidParameter, financialPercent)
	}
	return WeightSplit{env: 100 - financialPercent}, nil
}

func (w WeightSplit) Environmental() int { return w.env }
func (w WeightSplit) Financial() int     { return 100 - w.env }

// UserParameters is the full input to one calculation run. It is passed
// explicitly into every scoring call; scoring functions read no ambient
// state.
type UserParameters struct {
	InvestmentAmount float64
	HorizonYears     int
	RiskTier         RiskTier
	Weights          WeightSplit
}

func (p UserParameters) Validate() error {
	if p.InvestmentAmount <= 0 {
		return fmt.Errorf("%w: investment amount must be positive, got %v", ErrInvalidParameter, p.InvestmentAmount)
	}
	if _, err := NewRiskTier(string(p.RiskTier)); err != nil {
		return err
	}
	for _, y := range OfferedHorizons {
		if p.HorizonYears == y {
			return nil
		}
	}
	return fmt.Errorf("%w: horizon %d years is not offered", ErrInvalidParameter, p.HorizonYears)
}
