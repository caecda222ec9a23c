package industry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orats_data/data"
)

func newStubClient(t *testing.T, body string, hits *atomic.Int32) *data.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return data.NewClient(data.Config{Token: "test-token", BaseURL: srv.URL}, srv.Client())
}

func sampleStrike(ticker, expir string, strike, delta float64) string {
	return `{"ticker":"` + ticker + `","tradeDate":"2024-02-12","expirDate":"` + expir + `",` +
		`"strike":` + fmtF(strike) + `,"spotPrice":185.69,"smvVol":0.22,` +
		`"callValue":19.35,"putValue":2.34,"callVolume":100,"putVolume":50,` +
		`"callOpenInterest":2000,"putOpenInterest":900,` +
		`"callBidPrice":19.1,"callAskPrice":19.6,"callBidSize":12,"callAskSize":9,` +
		`"callBidIv":0.21,"callAskIv":0.23,` +
		`"putBidPrice":2.31,"putAskPrice":2.38,"putBidSize":30,"putAskSize":25,` +
		`"putBidIv":0.215,"putAskIv":0.225,` +
		`"delta":` + fmtF(delta) + `,"gamma":0.0105,"theta":-0.0268,"vega":0.3313,"rho":0.4969,"phi":-0.5601}`
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestNewOptionsChain_GroupsByExpiration(t *testing.T) {
	t.Parallel()

	strikes := []data.Strike{
		{Ticker: "IBM", ExpirDate: data.NewDate(2024, time.June, 21), Strike: 170, Delta: 0.82},
		{Ticker: "IBM", ExpirDate: data.NewDate(2024, time.June, 21), Strike: 180, Delta: 0.61},
		{Ticker: "IBM", ExpirDate: data.NewDate(2024, time.September, 20), Strike: 175, Delta: 0.68},
	}
	chain := NewOptionsChain(strikes)

	assert.Equal(t, "IBM", chain.Ticker)
	require.Len(t, chain.Expirations(), 2)

	june := data.NewDate(2024, time.June, 21)
	sept := data.NewDate(2024, time.September, 20)
	assert.Equal(t, "2024-06-21", chain.Expirations()[0].String())
	assert.Len(t, chain.Calls(june), 2)
	assert.Len(t, chain.Puts(june), 2)
	assert.Len(t, chain.Calls(sept), 1)
	assert.Empty(t, chain.Calls(data.NewDate(2025, time.January, 17)))
}

func TestNewOptionsChain_PutDeltaFollowsParity(t *testing.T) {
	t.Parallel()

	strikes := []data.Strike{{
		Ticker:    "IBM",
		ExpirDate: data.NewDate(2024, time.June, 21),
		Strike:    170,
		Delta:     0.8159,
		Gamma:     0.0105,
	}}
	chain := NewOptionsChain(strikes)
	expir := data.NewDate(2024, time.June, 21)

	call := chain.Calls(expir)[0]
	put := chain.Puts(expir)[0]

	assert.InDelta(t, 0.8159, call.Greeks.Delta, 1e-9)
	assert.InDelta(t, -0.1841, put.Greeks.Delta, 1e-9)
	// every other greek is shared between the pair
	assert.Equal(t, call.Greeks.Gamma, put.Greeks.Gamma)
}

func TestNewOptionsChain_SplitsCallAndPutSides(t *testing.T) {
	t.Parallel()

	strikes := []data.Strike{{
		Ticker:       "IBM",
		ExpirDate:    data.NewDate(2024, time.June, 21),
		Strike:       170,
		SpotPrice:    185.69,
		SmvVol:       0.22,
		CallValue:    19.35,
		PutValue:     2.34,
		CallBidPrice: 19.1,
		CallBidSize:  12,
		CallBidIv:    0.21,
		PutAskPrice:  2.38,
		PutAskSize:   25,
		PutAskIv:     0.225,
	}}
	chain := NewOptionsChain(strikes)
	expir := data.NewDate(2024, time.June, 21)

	call := chain.Calls(expir)[0]
	assert.InDelta(t, 19.35, call.Price, 1e-9)
	assert.InDelta(t, 19.1, call.Bid.Price, 1e-9)
	assert.Equal(t, 12, call.Bid.Size)
	assert.InDelta(t, 0.22, call.IV, 1e-9)

	put := chain.Puts(expir)[0]
	assert.InDelta(t, 2.34, put.Price, 1e-9)
	assert.InDelta(t, 2.38, put.Offer.Price, 1e-9)
	assert.Equal(t, 25, put.Offer.Size)
}

func TestChains_OneChainPerTicker(t *testing.T) {
	t.Parallel()

	body := `{"data":[` +
		sampleStrike("IBM", "2024-06-21", 170, 0.82) + `,` +
		sampleStrike("AAPL", "2024-06-21", 190, 0.55) + `,` +
		sampleStrike("IBM", "2024-09-20", 175, 0.68) + `]}`
	client := newStubClient(t, body, nil)

	chains, err := Chains(context.Background(), client, ChainFilter{}, "IBM", "AAPL")
	require.NoError(t, err)

	require.Len(t, chains, 2)
	assert.Equal(t, "IBM", chains[0].Ticker)
	assert.Equal(t, "AAPL", chains[1].Ticker)
	assert.Len(t, chains[0].Expirations(), 2)
	assert.Len(t, chains[1].Expirations(), 1)
}

func TestChains_PropagatesRequestErrors(t *testing.T) {
	t.Parallel()

	client := newStubClient(t, `{"data":[]}`, nil)

	_, err := Chains(context.Background(), client, ChainFilter{})
	var verr *data.ValidationError
	assert.ErrorAs(t, err, &verr)
}
