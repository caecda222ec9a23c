package industry

import (
	"context"
	"sync"

	"orats_data/data"
)

// Periods are the standard realized volatility lookbacks, in trading
// days. The one day lookback only exists for the intraday estimator
// with earnings included.
var Periods = []int{5, 10, 20, 30, 60, 90, 100, 120, 252, 500, 1000}

// VolatilityHistory exposes the realized volatility lookbacks for one
// underlying as period-indexed maps. The hvs row is fetched once and
// memoized.
type VolatilityHistory struct {
	ticker string
	client *data.Client

	mu     sync.Mutex
	cached *data.HistoricalVolatility
}

// NewVolatilityHistory binds an underlying symbol to a client.
func NewVolatilityHistory(client *data.Client, ticker string) *VolatilityHistory {
	return &VolatilityHistory{ticker: ticker, client: client}
}

func (h *VolatilityHistory) row(ctx context.Context) (*data.HistoricalVolatility, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cached != nil {
		return h.cached, nil
	}
	rows, err := h.client.HistoricalVolatility(ctx, data.HistoricalVolatilityRequest{
		Tickers: []string{h.ticker},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, data.ErrNotFound
	}
	h.cached = &rows[0]
	return h.cached, nil
}

// Intraday returns the intraday realized volatilities keyed by lookback
// period in days. With earnings included the map also carries the one
// day lookback.
func (h *VolatilityHistory) Intraday(ctx context.Context, excludeEarnings bool) (map[int]float64, error) {
	row, err := h.row(ctx)
	if err != nil {
		return nil, err
	}

	var values []float64
	results := make(map[int]float64, len(Periods)+1)
	if excludeEarnings {
		values = []float64{
			row.OrHvXern5d, row.OrHvXern10d, row.OrHvXern20d, row.OrHvXern30d,
			row.OrHvXern60d, row.OrHvXern90d, row.OrHvXern100d, row.OrHvXern120d,
			row.OrHvXern252d, row.OrHvXern500d, row.OrHvXern1000d,
		}
	} else {
		results[1] = row.OrHv1d
		values = []float64{
			row.OrHv5d, row.OrHv10d, row.OrHv20d, row.OrHv30d,
			row.OrHv60d, row.OrHv90d, row.OrHv100d, row.OrHv120d,
			row.OrHv252d, row.OrHv500d, row.OrHv1000d,
		}
	}
	for i, period := range Periods {
		results[period] = values[i]
	}
	return results, nil
}

// CloseToClose returns the close to close realized volatilities keyed
// by lookback period in days.
func (h *VolatilityHistory) CloseToClose(ctx context.Context, excludeEarnings bool) (map[int]float64, error) {
	row, err := h.row(ctx)
	if err != nil {
		return nil, err
	}

	var values []float64
	if excludeEarnings {
		values = []float64{
			row.ClsHvXern5d, row.ClsHvXern10d, row.ClsHvXern20d, row.ClsHvXern30d,
			row.ClsHvXern60d, row.ClsHvXern90d, row.ClsHvXern100d, row.ClsHvXern120d,
			row.ClsHvXern252d, row.ClsHvXern500d, row.ClsHvXern1000d,
		}
	} else {
		values = []float64{
			row.ClsHv5d, row.ClsHv10d, row.ClsHv20d, row.ClsHv30d,
			row.ClsHv60d, row.ClsHv90d, row.ClsHv100d, row.ClsHv120d,
			row.ClsHv252d, row.ClsHv500d, row.ClsHv1000d,
		}
	}
	results := make(map[int]float64, len(Periods))
	for i, period := range Periods {
		results[period] = values[i]
	}
	return results, nil
}
