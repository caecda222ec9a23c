package usecase

import (
	"context"

	"orats_data/internal/feature/ivrank/domain/entity"
)

// ingestBatchSize caps how many tickers go into one upstream request.
const ingestBatchSize = 50

// MarketDataRepository abstracts the upstream IV rank source.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type MarketDataRepository interface {
	// IvRanks returns the current IV rank snapshot for the given
	// underlyings.
	IvRanks(ctx context.Context, tickers []string) ([]entity.IvRankSnapshot, error)
}

// IngestUsecase pulls IV rank snapshots from the upstream API and
// persists them.
type IngestUsecase struct {
	market MarketDataRepository
	snaps  IvRankRepository
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(market MarketDataRepository, snaps IvRankRepository) *IngestUsecase {
	return &IngestUsecase{market: market, snaps: snaps}
}

// IngestAll fetches the current snapshot for every ticker on the
// watchlist in batches and upserts the results. The upstream resource
// accepts multiple tickers per call, so no per-ticker rate limiting is
// needed here.
func (iu *IngestUsecase) IngestAll(ctx context.Context, tickers []string) error {
	for start := 0; start < len(tickers); start += ingestBatchSize {
		end := start + ingestBatchSize
		if end > len(tickers) {
			end = len(tickers)
		}

		snaps, err := iu.market.IvRanks(ctx, tickers[start:end])
		if err != nil {
			return err
		}
		if err := iu.snaps.UpsertBatch(ctx, snaps); err != nil {
			return err
		}
	}
	return nil
}
