// Package orats adapts the Data API client to the repository
// interfaces the ingest usecases consume.
package orats

import (
	"context"
	"net/http"

	"orats_data/data"
	dailiesentity "orats_data/internal/feature/dailies/domain/entity"
	dailiesusecase "orats_data/internal/feature/dailies/usecase"
	ivrankentity "orats_data/internal/feature/ivrank/domain/entity"
	ivrankusecase "orats_data/internal/feature/ivrank/usecase"
)

// Repository fetches market data from the upstream Data API.
type Repository struct {
	client *data.Client
}

// Compile-time checks that Repository satisfies the consumer interfaces.
var (
	_ dailiesusecase.MarketDataRepository = (*Repository)(nil)
	_ ivrankusecase.MarketDataRepository  = (*Repository)(nil)
)

// NewRepository creates a Repository from the given configuration and
// HTTP client.
func NewRepository(cfg Config, httpClient *http.Client) *Repository {
	client := data.NewClient(data.Config{
		Token:   cfg.Token,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}, httpClient)
	return &Repository{client: client}
}

// DailyHistory returns the full end-of-day price history for one
// underlying, converted to domain bars.
func (r *Repository) DailyHistory(ctx context.Context, ticker string) ([]dailiesentity.DailyBar, error) {
	rows, err := r.client.DailyPrice(ctx, data.DailyPriceRequest{Tickers: []string{ticker}})
	if err != nil {
		return nil, err
	}

	bars := make([]dailiesentity.DailyBar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, dailiesentity.DailyBar{
			Ticker:    row.Ticker,
			TradeDate: row.TradeDate.Time,
			Open:      row.Open,
			High:      row.HiPx,
			Low:       row.LoPx,
			Close:     row.ClsPx,
			Volume:    row.StockVolume,
		})
	}
	return bars, nil
}

// IvRanks returns the current IV rank snapshot for the given
// underlyings.
func (r *Repository) IvRanks(ctx context.Context, tickers []string) ([]ivrankentity.IvRankSnapshot, error) {
	rows, err := r.client.IvRank(ctx, data.IvRankRequest{Tickers: tickers})
	if err != nil {
		return nil, err
	}

	snaps := make([]ivrankentity.IvRankSnapshot, 0, len(rows))
	for _, row := range rows {
		snaps = append(snaps, ivrankentity.IvRankSnapshot{
			Ticker:    row.Ticker,
			TradeDate: row.TradeDate.Time,
			Iv:        row.Iv,
			IvRank1m:  row.IvRank1m,
			IvPct1m:   row.IvPct1m,
			IvRank1y:  row.IvRank1y,
			IvPct1y:   row.IvPct1y,
		})
	}
	return snaps, nil
}
