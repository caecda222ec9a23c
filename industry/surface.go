package industry

import (
	"context"

	"orats_data/data"
)

// VolatilitySurface is the implied surface for one underlying, one
// monies row per listed expiration.
type VolatilitySurface struct {
	Ticker string
	Monies []data.MoneyImplied
}

// ForecastSurface is the forecast counterpart of VolatilitySurface.
type ForecastSurface struct {
	Ticker string
	Monies []data.MoneyForecast
}

// VolatilitySurfaces fetches the implied monies for the given
// underlyings and groups them into one surface per ticker.
func VolatilitySurfaces(ctx context.Context, client *data.Client, tradeDate data.Date, tickers ...string) ([]VolatilitySurface, error) {
	monies, err := client.MoniesImplied(ctx, data.MoniesRequest{Tickers: tickers, TradeDate: tradeDate})
	if err != nil {
		return nil, err
	}

	var surfaces []VolatilitySurface
	for _, rows := range groupByTicker(monies, func(m data.MoneyImplied) string { return m.Ticker }) {
		surfaces = append(surfaces, VolatilitySurface{Ticker: rows[0].Ticker, Monies: rows})
	}
	return surfaces, nil
}

// ForecastSurfaces fetches the forecast monies for the given
// underlyings and groups them into one surface per ticker.
func ForecastSurfaces(ctx context.Context, client *data.Client, tradeDate data.Date, tickers ...string) ([]ForecastSurface, error) {
	monies, err := client.MoniesForecast(ctx, data.MoniesRequest{Tickers: tickers, TradeDate: tradeDate})
	if err != nil {
		return nil, err
	}

	var surfaces []ForecastSurface
	for _, rows := range groupByTicker(monies, func(m data.MoneyForecast) string { return m.Ticker }) {
		surfaces = append(surfaces, ForecastSurface{Ticker: rows[0].Ticker, Monies: rows})
	}
	return surfaces, nil
}
