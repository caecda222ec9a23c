// Package entity defines the domain models for the ivrank feature.
package entity

import "time"

// IvRankSnapshot represents one day's implied volatility rank reading
// for an underlying. Ranks and percentiles are relative to the one
// month and one year IV histories.
type IvRankSnapshot struct {
	Ticker    string
	TradeDate time.Time
	Iv        float64
	IvRank1m  float64
	IvPct1m   float64
	IvRank1y  float64
	IvPct1y   float64
}
