package dto

// IvRankResponse is the response DTO for one IV rank snapshot.
type IvRankResponse struct {
	TradeDate string  `json:"tradeDate"`
	Iv        float64 `json:"iv"`
	IvRank1m  float64 `json:"ivRank1m"`
	IvPct1m   float64 `json:"ivPct1m"`
	IvRank1y  float64 `json:"ivRank1y"`
	IvPct1y   float64 `json:"ivPct1y"`
}
