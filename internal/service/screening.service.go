package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"verdant/internal/calculator"
	"verdant/internal/domain"
	"verdant/internal/repository"
)

// DefaultAllocationSize is how many of the top investable instruments the
// portfolio split covers.
const DefaultAllocationSize = 5

type ScreeningService interface {
	// Calculate runs a full scoring/ranking/allocation pass and publishes
	// the result as the current snapshot.
	Calculate(ctx context.Context, params domain.UserParameters) (*domain.CalculationResult, error)
	// Recalculate re-runs the last calculation with the same parameters,
	// picking up any overlay prices that arrived since. No-op when nothing
	// has been calculated yet.
	Recalculate(ctx context.Context) (*domain.CalculationResult, error)
	// Latest returns the current snapshot, or nil before the first run.
	Latest() *domain.CalculationResult
	// AttachNarrative stores a narrative on the snapshot it was generated
	// for. Returns false, discarding the narrative, when that snapshot has
	// been superseded.
	AttachNarrative(snapshotID uuid.UUID, narrative domain.Narrative) bool
}

type screeningServiceHandler struct {
	CatalogRepository repository.CatalogRepository
	PriceService      PriceService
	Log               *zap.SugaredLogger

	allocationSize int

	mu   sync.Mutex
	last *domain.CalculationResult
}

func NewScreeningService(
	catalogRepository repository.CatalogRepository,
	priceService PriceService,
	log *zap.SugaredLogger,
) ScreeningService {
	return &screeningServiceHandler{
		CatalogRepository: catalogRepository,
		PriceService:      priceService,
		Log:               log,
		allocationSize:    DefaultAllocationSize,
	}
}

func (h *screeningServiceHandler) Calculate(ctx context.Context, params domain.UserParameters) (*domain.CalculationResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	overlay := h.PriceService.Overlay()

	scored := []domain.ScoredInstrument{}
	usedLive := false
	for _, rec := range h.CatalogRepository.List() {
		price, live := domain.EffectivePrice(rec, overlay)
		usedLive = usedLive || live

		s, err := calculator.ScoreInstrument(rec, price, live, params)
		if err != nil {
			return nil, err
		}
		scored = append(scored, s)
	}

	set := calculator.RankAndPartition(scored)

	allocations, err := calculator.Allocate(
		set.TopN(h.allocationSize),
		decimal.NewFromFloat(params.InvestmentAmount),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate top picks: %w", err)
	}

	summary, err := calculator.Summarize(set.Investable)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize results: %w", err)
	}

	result := &domain.CalculationResult{
		SnapshotID:     uuid.New(),
		Params:         params,
		All:            set.All,
		Investable:     set.Investable,
		Excluded:       set.Excluded,
		Allocations:    allocations,
		Summary:        summary,
		UsedLivePrices: usedLive,
		GeneratedAt:    time.Now().UTC(),
	}

	h.mu.Lock()
	h.last = result
	h.mu.Unlock()

	h.Log.Infow("published calculation snapshot",
		"snapshotID", result.SnapshotID,
		"investable", len(result.Investable),
		"excluded", len(result.Excluded),
		"livePrices", usedLive,
	)

	return result, nil
}

func (h *screeningServiceHandler) Recalculate(ctx context.Context) (*domain.CalculationResult, error) {
	h.mu.Lock()
	last := h.last
	h.mu.Unlock()

	if last == nil {
		return nil, nil
	}
	return h.Calculate(ctx, last.Params)
}

func (h *screeningServiceHandler) Latest() *domain.CalculationResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

func (h *screeningServiceHandler) AttachNarrative(snapshotID uuid.UUID, narrative domain.Narrative) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.last == nil || h.last.SnapshotID != snapshotID {
		h.Log.Debugw("discarding narrative for superseded snapshot", "snapshotID", snapshotID)
		return false
	}
	h.last.Narrative = &narrative
	return true
}
