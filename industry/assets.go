package industry

import (
	"context"
	"sync"

	"orats_data/data"
)

// Asset represents the underlying asset of an option contract. The
// ticker metadata is fetched once on first use and memoized for the
// lifetime of the Asset.
type Asset struct {
	ticker string
	client *data.Client

	mu     sync.Mutex
	cached *data.Ticker
}

// NewAsset binds an underlying symbol to a client.
func NewAsset(client *data.Client, ticker string) *Asset {
	return &Asset{ticker: ticker, client: client}
}

// Ticker returns the underlying symbol.
func (a *Asset) Ticker() string { return a.ticker }

func (a *Asset) info(ctx context.Context) (*data.Ticker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cached != nil {
		return a.cached, nil
	}
	rows, err := a.client.Tickers(ctx, data.TickersRequest{Ticker: a.ticker})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, data.ErrNotFound
	}
	a.cached = &rows[0]
	return a.cached, nil
}

// HistoricalDataRange reports the duration of available historical
// data as the minimum and maximum dates.
func (a *Asset) HistoricalDataRange(ctx context.Context) (min, max data.Date, err error) {
	info, err := a.info(ctx)
	if err != nil {
		return data.Date{}, data.Date{}, err
	}
	return info.MinDate, info.MaxDate, nil
}

// Universe is a collection of underlying assets sharing one client.
type Universe struct {
	Assets []*Asset
}

// NewUniverse builds an asset per ticker, deduplicating symbols.
func NewUniverse(client *data.Client, tickers ...string) *Universe {
	seen := make(map[string]bool, len(tickers))
	u := &Universe{}
	for _, t := range tickers {
		if seen[t] {
			continue
		}
		seen[t] = true
		u.Assets = append(u.Assets, NewAsset(client, t))
	}
	return u
}
