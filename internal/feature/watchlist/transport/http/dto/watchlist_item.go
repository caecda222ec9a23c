package dto

// WatchlistItem is the response DTO for one watchlist entry.
type WatchlistItem struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}
