package industry

import (
	"context"
	"sort"

	"orats_data/data"
)

// Quote is one side of an option market.
type Quote struct {
	Price float64
	Size  int
	IV    float64
}

// Greeks carries the first-order sensitivities of an option. The API
// publishes one set per strike; calls and puts share every greek
// except delta, which differs by exactly one.
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
	Phi   float64
}

// Option is a single listed contract with its theoretical value,
// market quotes and greeks.
type Option struct {
	Ticker       string
	Expiration   data.Date
	Strike       float64
	Price        float64
	Spot         float64
	Volume       int
	OpenInterest int
	IV           float64
	Greeks       Greeks
	Bid          Quote
	Offer        Quote
}

// CallOption is the call side of a strikes row.
type CallOption struct {
	Option
}

// PutOption is the put side of a strikes row.
type PutOption struct {
	Option
}

func callFromStrike(s data.Strike) CallOption {
	return CallOption{Option{
		Ticker:       s.Ticker,
		Expiration:   s.ExpirDate,
		Strike:       s.Strike,
		Price:        s.CallValue,
		Spot:         s.SpotPrice,
		Volume:       s.CallVolume,
		OpenInterest: s.CallOpenInterest,
		IV:           s.SmvVol,
		Greeks: Greeks{
			Delta: s.Delta,
			Gamma: s.Gamma,
			Theta: s.Theta,
			Vega:  s.Vega,
			Rho:   s.Rho,
			Phi:   s.Phi,
		},
		Bid:   Quote{Price: s.CallBidPrice, Size: s.CallBidSize, IV: s.CallBidIv},
		Offer: Quote{Price: s.CallAskPrice, Size: s.CallAskSize, IV: s.CallAskIv},
	}}
}

func putFromStrike(s data.Strike) PutOption {
	return PutOption{Option{
		Ticker:       s.Ticker,
		Expiration:   s.ExpirDate,
		Strike:       s.Strike,
		Price:        s.PutValue,
		Spot:         s.SpotPrice,
		Volume:       s.PutVolume,
		OpenInterest: s.PutOpenInterest,
		IV:           s.SmvVol,
		Greeks: Greeks{
			// Published greeks are call-side; the put delta follows
			// from put-call parity.
			Delta: s.Delta - 1,
			Gamma: s.Gamma,
			Theta: s.Theta,
			Vega:  s.Vega,
			Rho:   s.Rho,
			Phi:   s.Phi,
		},
		Bid:   Quote{Price: s.PutBidPrice, Size: s.PutBidSize, IV: s.PutBidIv},
		Offer: Quote{Price: s.PutAskPrice, Size: s.PutAskSize, IV: s.PutAskIv},
	}}
}

// OptionsChain is the full chain for one underlying, with calls and
// puts grouped by expiration.
type OptionsChain struct {
	Ticker string

	expirations []data.Date
	calls       map[string][]CallOption
	puts        map[string][]PutOption
}

// NewOptionsChain groups strikes rows for a single underlying into a
// chain. Rows are expected to share one ticker.
func NewOptionsChain(strikes []data.Strike) *OptionsChain {
	chain := &OptionsChain{
		calls: make(map[string][]CallOption),
		puts:  make(map[string][]PutOption),
	}
	for _, s := range strikes {
		if chain.Ticker == "" {
			chain.Ticker = s.Ticker
		}
		key := s.ExpirDate.String()
		if _, ok := chain.calls[key]; !ok {
			chain.expirations = append(chain.expirations, s.ExpirDate)
		}
		chain.calls[key] = append(chain.calls[key], callFromStrike(s))
		chain.puts[key] = append(chain.puts[key], putFromStrike(s))
	}
	sort.Slice(chain.expirations, func(i, j int) bool {
		return chain.expirations[i].Before(chain.expirations[j].Time)
	})
	return chain
}

// Expirations lists the chain's expiration dates in ascending order.
func (c *OptionsChain) Expirations() []data.Date { return c.expirations }

// Calls returns the call contracts expiring on the given date.
func (c *OptionsChain) Calls(expiration data.Date) []CallOption {
	return c.calls[expiration.String()]
}

// Puts returns the put contracts expiring on the given date.
func (c *OptionsChain) Puts(expiration data.Date) []PutOption {
	return c.puts[expiration.String()]
}

// ChainFilter narrows a chain request. The zero value requests the
// complete current chains for the given tickers.
type ChainFilter struct {
	TradeDate       data.Date
	ExpirationRange *data.Range // days to expiration
	DeltaRange      *data.Range
}

// Chains fetches strikes for the given underlyings and groups them
// into one chain per ticker, ordered by first appearance in the
// response.
func Chains(ctx context.Context, client *data.Client, filter ChainFilter, tickers ...string) ([]*OptionsChain, error) {
	strikes, err := client.Strikes(ctx, data.StrikesRequest{
		Tickers:         tickers,
		TradeDate:       filter.TradeDate,
		ExpirationRange: filter.ExpirationRange,
		DeltaRange:      filter.DeltaRange,
	})
	if err != nil {
		return nil, err
	}

	var chains []*OptionsChain
	for _, rows := range groupByTicker(strikes, func(s data.Strike) string { return s.Ticker }) {
		chains = append(chains, NewOptionsChain(rows))
	}
	return chains, nil
}

// groupByTicker splits rows into per-ticker groups, preserving the
// order tickers first appear in.
func groupByTicker[T any](rows []T, key func(T) string) [][]T {
	index := make(map[string]int)
	var groups [][]T
	for _, row := range rows {
		k := key(row)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], row)
	}
	return groups
}
