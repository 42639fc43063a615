package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScoredInstrument is a catalog record plus everything one calculation run
// derived for it. Recomputed from scratch on every run; never persisted.
type ScoredInstrument struct {
	InstrumentRecord

	EffectivePrice float64
	UsedLivePrice  bool

	// ReturnScore is the tier return normalized to 0-100 against the fixed
	// calibration range, rounded half-up.
	ReturnScore    int
	CompositeScore int

	FutureValue       float64
	GainAbsolute      float64
	GainPercent       float64
	AnnualRatePercent float64
}

// AllocationLine is one row of the proportional top-N split.
type AllocationLine struct {
	Ticker            string
	AllocationPercent int
	AllocationAmount  decimal.Decimal
}

// ShareEstimate is the per-row "entire amount into this one instrument"
// sizing. Informational only; independent of the allocation split.
type ShareEstimate struct {
	Shares        int64
	EstimatedCost decimal.Decimal
}

// SummaryStats are the headline numbers shown above the ranked list.
type SummaryStats struct {
	TopTicker       string
	TopFutureValue  float64
	TopGainAbsolute float64
	AvgCarbonTop3   int
	BestGainTicker  string
	BestGainPercent float64
}

// CalculationResult is one atomically published snapshot: the full scored
// ordering, the two-way partition, the top-N allocation, and the parameters
// that produced it. A new run replaces the whole value; there is no partial
// update.
type CalculationResult struct {
	SnapshotID uuid.UUID
	Params     UserParameters

	All        []ScoredInstrument
	Investable []ScoredInstrument
	Excluded   []ScoredInstrument

	Allocations []AllocationLine
	Summary     SummaryStats

	UsedLivePrices bool
	GeneratedAt    time.Time

	// Narrative is attached after the fact by the advice service, and only
	// while this snapshot is still the current one.
	Narrative *Narrative
}

// NarrativeSection is one recognized block of the model's response.
type NarrativeSection struct {
	Heading string
	Body    string
}

// Narrative is the tagged result of best-effort section parsing of the
// model output. Structured=false means no expected header matched and Raw
// holds the entire response as one block.
type Narrative struct {
	Structured bool
	Sections   []NarrativeSection
	Disclaimer string
	Raw        string
}
