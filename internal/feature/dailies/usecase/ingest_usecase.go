package usecase

import (
	"context"
	"log/slog"

	"orats_data/internal/feature/dailies/domain/entity"
	"orats_data/internal/shared/ratelimiter"
)

// MarketDataRepository abstracts the upstream market data source.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type MarketDataRepository interface {
	// DailyHistory returns the full end-of-day price history for one
	// underlying.
	DailyHistory(ctx context.Context, ticker string) ([]entity.DailyBar, error)
}

// IngestUsecase pulls end-of-day history from the upstream API and
// persists it to the database.
type IngestUsecase struct {
	market      MarketDataRepository
	bars        DailyBarRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(market MarketDataRepository, bars DailyBarRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, bars: bars, rateLimiter: rateLimiter}
}

// ingestOne fetches the daily history for a single ticker and upserts
// it in one batch.
func (iu *IngestUsecase) ingestOne(ctx context.Context, ticker string) error {
	bars, err := iu.market.DailyHistory(ctx, ticker)
	if err != nil {
		return err
	}
	for i := range bars {
		bars[i].Ticker = ticker
	}
	return iu.bars.UpsertBatch(ctx, bars)
}

// IngestAll fetches and persists the daily history for every ticker on
// the watchlist. A failed ticker is logged and skipped so one bad
// symbol cannot stall the run; the upstream rate limit is respected
// between requests.
func (iu *IngestUsecase) IngestAll(ctx context.Context, tickers []string) error {
	for _, ticker := range tickers {
		iu.rateLimiter.WaitIfNeeded()
		if err := iu.ingestOne(ctx, ticker); err != nil {
			slog.Error("failed to ingest daily bars", "ticker", ticker, "error", err)
			continue
		}
	}
	return nil
}
