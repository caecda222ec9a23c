// Package entity defines the domain models for the dailies feature.
package entity

import "time"

// DailyBar represents one end-of-day OHLCV bar for an underlying.
type DailyBar struct {
	Ticker    string    // Underlying symbol (e.g. "AAPL", "IBM")
	TradeDate time.Time // Session date, midnight UTC
	Open      float64   // Opening price
	High      float64   // Session high
	Low       float64   // Session low
	Close     float64   // Closing price
	Volume    int64     // Share volume
}
