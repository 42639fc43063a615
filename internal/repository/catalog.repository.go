package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"verdant/internal/domain"
)

//go:embed catalog.json
var catalogJSON []byte

type CatalogRepository interface {
	// List returns the catalog in its fixed insertion order. Callers must
	// treat the returned records as read-only.
	List() []domain.InstrumentRecord
	// Get looks up one record by ticker.
	Get(ticker string) (domain.InstrumentRecord, error)
	// Tickers returns every ticker in catalog order.
	Tickers() []string
}

type catalogRepositoryHandler struct {
	records  []domain.InstrumentRecord
	byTicker map[string]domain.InstrumentRecord
}

// NewCatalogRepository loads and validates the embedded catalog. Validation
// is strict: a record with a non-positive price, an out-of-range carbon
// score, a stored grade that disagrees with the score band, or a missing
// return tier fails the load.
func NewCatalogRepository() (CatalogRepository, error) {
	records := []domain.InstrumentRecord{}
	if err := json.Unmarshal(catalogJSON, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byTicker := map[string]domain.InstrumentRecord{}
	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("invalid catalog record %s: %w", rec.Ticker, err)
		}
		if _, ok := byTicker[rec.Ticker]; ok {
			return nil, fmt.Errorf("duplicate catalog ticker %s", rec.Ticker)
		}
		byTicker[rec.Ticker] = rec
	}

	return catalogRepositoryHandler{
		records:  records,
		byTicker: byTicker,
	}, nil
}

func validateRecord(rec domain.InstrumentRecord) error {
	if rec.Ticker == "" {
		return fmt.Errorf("missing ticker")
	}
	if rec.Price <= 0 {
		return fmt.Errorf("price must be positive, got %v", rec.Price)
	}
	if rec.CarbonScore < 0 || rec.CarbonScore > 100 {
		return fmt.Errorf("carbon score %d out of range", rec.CarbonScore)
	}
	if derived := domain.GradeForScore(rec.CarbonScore); rec.CarbonGrade != derived {
		return fmt.Errorf("stored grade %s disagrees with score %d (band %s)", rec.CarbonGrade, rec.CarbonScore, derived)
	}
	for _, scope := range []float64{rec.Scope1Emissions, rec.Scope2Emissions, rec.Scope3Emissions} {
		if scope < 0 {
			return fmt.Errorf("negative emissions quantity")
		}
	}
	if rec.Renewables < 0 || rec.Renewables > 100 {
		return fmt.Errorf("renewables percent %d out of range", rec.Renewables)
	}
	for _, tier := range []domain.RiskTier{domain.RiskTierLow, domain.RiskTierMedium, domain.RiskTierHigh} {
		if _, ok := rec.AnnualReturn[tier]; !ok {
			return fmt.Errorf("missing %s tier return estimate", tier)
		}
	}
	switch rec.Recommendation {
	case domain.RecommendationStrongBuy, domain.RecommendationBuy, domain.RecommendationHold, domain.RecommendationAvoid:
	default:
		return fmt.Errorf("unknown recommendation label %q", rec.Recommendation)
	}
	return nil
}

func (h catalogRepositoryHandler) List() []domain.InstrumentRecord {
	out := make([]domain.InstrumentRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h catalogRepositoryHandler) Get(ticker string) (domain.InstrumentRecord, error) {
	rec, ok := h.byTicker[ticker]
	if !ok {
		return domain.InstrumentRecord{}, fmt.Errorf("%w: unknown ticker %q", domain.ErrInvalidParameter, ticker)
	}
	return rec, nil
}

func (h catalogRepositoryHandler) Tickers() []string {
	tickers := make([]string, 0, len(h.records))
	for _, rec := range h.records {
		tickers = append(tickers, rec.Ticker)
	}
	return tickers
}
