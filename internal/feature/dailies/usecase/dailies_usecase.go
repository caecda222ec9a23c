// Package usecase implements the business logic for the dailies feature.
package usecase

import (
	"context"

	"orats_data/internal/feature/dailies/domain/entity"
)

const (
	// DefaultOutputSize is the default number of bars returned per query.
	DefaultOutputSize = 200
	// MaxOutputSize is the largest number of bars a single query may return.
	MaxOutputSize = 5000
)

// DailyBarRepository abstracts the read/write layer for daily bars.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type DailyBarRepository interface {
	// Find returns the most recent bars for a ticker, newest first.
	Find(ctx context.Context, ticker string, outputsize int) ([]entity.DailyBar, error)
	// UpsertBatch inserts or updates a batch of bars.
	UpsertBatch(ctx context.Context, bars []entity.DailyBar) error
}

type dailiesUsecase struct {
	bars DailyBarRepository
}

// NewDailiesUsecase creates a new dailies usecase instance.
func NewDailiesUsecase(bars DailyBarRepository) *dailiesUsecase {
	return &dailiesUsecase{bars: bars}
}

// GetDailyBars returns end-of-day bars for the given ticker. Out of
// range output sizes fall back to the default.
func (du *dailiesUsecase) GetDailyBars(ctx context.Context, ticker string, outputsize int) ([]entity.DailyBar, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return du.bars.Find(ctx, ticker, outputsize)
}
