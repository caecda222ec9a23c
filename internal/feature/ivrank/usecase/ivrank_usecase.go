// Package usecase implements the business logic for the ivrank feature.
package usecase

import (
	"context"

	"orats_data/internal/feature/ivrank/domain/entity"
)

const (
	// DefaultOutputSize is the default number of snapshots returned per query.
	DefaultOutputSize = 30
	// MaxOutputSize is the largest number of snapshots a query may return.
	MaxOutputSize = 1000
)

// IvRankRepository abstracts the read/write layer for IV rank
// snapshots. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type IvRankRepository interface {
	// Find returns the most recent snapshots for a ticker, newest first.
	Find(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error)
	// UpsertBatch inserts or updates a batch of snapshots.
	UpsertBatch(ctx context.Context, snaps []entity.IvRankSnapshot) error
}

type ivRankUsecase struct {
	snaps IvRankRepository
}

// NewIvRankUsecase creates a new ivrank usecase instance.
func NewIvRankUsecase(snaps IvRankRepository) *ivRankUsecase {
	return &ivRankUsecase{snaps: snaps}
}

// GetIvRanks returns IV rank snapshots for the given ticker. Out of
// range output sizes fall back to the default.
func (iu *ivRankUsecase) GetIvRanks(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return iu.snaps.Find(ctx, ticker, outputsize)
}
