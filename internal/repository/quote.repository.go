package repository

import (
	"fmt"

	"github.com/piquette/finance-go/quote"

	"verdant/internal/domain"
)

// QuoteRepository is the live market-data source. Quotes are authoritative
// until superseded; callers must tolerate partial coverage.
type QuoteRepository interface {
	GetQuote(symbol string) (float64, error)
}

type quoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

func (quoteRepositoryHandler) GetQuote(symbol string) (float64, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get quote for %s: %v", domain.ErrUpstreamUnavailable, symbol, err)
	}
	if q == nil || q.RegularMarketPrice <= 0 {
		return 0, fmt.Errorf("%w: no usable quote for %s", domain.ErrUpstreamUnavailable, symbol)
	}
	return q.RegularMarketPrice, nil
}
