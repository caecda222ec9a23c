package data

import "time"

// Summary is one row of the SMV summaries resource: dividend and
// borrow indicators, interpolated and ex-earnings implied volatility
// term structures, delta surfaces and forward volatilities.
type Summary struct {
	Ticker     string  `json:"ticker"`
	TradeDate  Date    `json:"tradeDate"`
	StockPrice float64 `json:"stockPrice"`

	AnnActDiv      float64 `json:"annActDiv"`
	AnnIdiv        float64 `json:"annIdiv"`
	NextDiv        float64 `json:"nextDiv"`
	ImpliedNextDiv float64 `json:"impliedNextDiv"`
	Borrow30       float64 `json:"borrow30"`
	Borrow2y       float64 `json:"borrow2y"`
	Confidence     float64 `json:"confidence"`

	ExErnIv10d float64 `json:"exErnIv10d"`
	ExErnIv20d float64 `json:"exErnIv20d"`
	ExErnIv30d float64 `json:"exErnIv30d"`
	ExErnIv60d float64 `json:"exErnIv60d"`
	ExErnIv90d float64 `json:"exErnIv90d"`
	ExErnIv6m  float64 `json:"exErnIv6m"`
	ExErnIv1y  float64 `json:"exErnIv1y"`

	IeeEarnEffect       float64 `json:"ieeEarnEffect"`
	ImpliedMove         float64 `json:"impliedMove"`
	ImpliedEarningsMove float64 `json:"impliedEarningsMove"`

	Iv10d float64 `json:"iv10d"`
	Iv20d float64 `json:"iv20d"`
	Iv30d float64 `json:"iv30d"`
	Iv60d float64 `json:"iv60d"`
	Iv90d float64 `json:"iv90d"`
	Iv6m  float64 `json:"iv6m"`
	Iv1y  float64 `json:"iv1y"`

	MwAdj30        float64 `json:"mwAdj30"`
	MwAdj2y        float64 `json:"mwAdj2y"`
	RDrv30         float64 `json:"rDrv30"`
	RDrv2y         float64 `json:"rDrv2y"`
	RSlp30         float64 `json:"rSlp30"`
	RSlp2y         float64 `json:"rSlp2y"`
	RVol30         float64 `json:"rVol30"`
	RVol2y         float64 `json:"rVol2y"`
	Rip            float64 `json:"rip"`
	RiskFree30     float64 `json:"riskFree30"`
	RiskFree2y     float64 `json:"riskFree2y"`
	Skewing        float64 `json:"skewing"`
	Contango       float64 `json:"contango"`
	TotalErrorConf float64 `json:"totalErrorConf"`

	Dlt5Iv10d float64 `json:"dlt5Iv10d"`
	Dlt5Iv20d float64 `json:"dlt5Iv20d"`
	Dlt5Iv30d float64 `json:"dlt5Iv30d"`
	Dlt5Iv60d float64 `json:"dlt5Iv60d"`
	Dlt5Iv90d float64 `json:"dlt5Iv90d"`
	Dlt5Iv6m  float64 `json:"dlt5Iv6m"`
	Dlt5Iv1y  float64 `json:"dlt5Iv1y"`

	ExErnDlt5Iv10d float64 `json:"exErnDlt5Iv10d"`
	ExErnDlt5Iv20d float64 `json:"exErnDlt5Iv20d"`
	ExErnDlt5Iv30d float64 `json:"exErnDlt5Iv30d"`
	ExErnDlt5Iv60d float64 `json:"exErnDlt5Iv60d"`
	ExErnDlt5Iv90d float64 `json:"exErnDlt5Iv90d"`
	ExErnDlt5Iv6m  float64 `json:"exErnDlt5Iv6m"`
	ExErnDlt5Iv1y  float64 `json:"exErnDlt5Iv1y"`

	Dlt25Iv10d float64 `json:"dlt25Iv10d"`
	Dlt25Iv20d float64 `json:"dlt25Iv20d"`
	Dlt25Iv30d float64 `json:"dlt25Iv30d"`
	Dlt25Iv60d float64 `json:"dlt25Iv60d"`
	Dlt25Iv90d float64 `json:"dlt25Iv90d"`
	Dlt25Iv6m  float64 `json:"dlt25Iv6m"`
	Dlt25Iv1y  float64 `json:"dlt25Iv1y"`

	ExErnDlt25Iv10d float64 `json:"exErnDlt25Iv10d"`
	ExErnDlt25Iv20d float64 `json:"exErnDlt25Iv20d"`
	ExErnDlt25Iv30d float64 `json:"exErnDlt25Iv30d"`
	ExErnDlt25Iv60d float64 `json:"exErnDlt25Iv60d"`
	ExErnDlt25Iv90d float64 `json:"exErnDlt25Iv90d"`
	ExErnDlt25Iv6m  float64 `json:"exErnDlt25Iv6m"`
	ExErnDlt25Iv1y  float64 `json:"exErnDlt25Iv1y"`

	Dlt75Iv10d float64 `json:"dlt75Iv10d"`
	Dlt75Iv20d float64 `json:"dlt75Iv20d"`
	Dlt75Iv30d float64 `json:"dlt75Iv30d"`
	Dlt75Iv60d float64 `json:"dlt75Iv60d"`
	Dlt75Iv90d float64 `json:"dlt75Iv90d"`
	Dlt75Iv6m  float64 `json:"dlt75Iv6m"`
	Dlt75Iv1y  float64 `json:"dlt75Iv1y"`

	ExErnDlt75Iv10d float64 `json:"exErnDlt75Iv10d"`
	ExErnDlt75Iv20d float64 `json:"exErnDlt75Iv20d"`
	ExErnDlt75Iv30d float64 `json:"exErnDlt75Iv30d"`
	ExErnDlt75Iv60d float64 `json:"exErnDlt75Iv60d"`
	ExErnDlt75Iv90d float64 `json:"exErnDlt75Iv90d"`
	ExErnDlt75Iv6m  float64 `json:"exErnDlt75Iv6m"`
	ExErnDlt75Iv1y  float64 `json:"exErnDlt75Iv1y"`

	Dlt95Iv10d float64 `json:"dlt95Iv10d"`
	Dlt95Iv20d float64 `json:"dlt95Iv20d"`
	Dlt95Iv30d float64 `json:"dlt95Iv30d"`
	Dlt95Iv60d float64 `json:"dlt95Iv60d"`
	Dlt95Iv90d float64 `json:"dlt95Iv90d"`
	Dlt95Iv6m  float64 `json:"dlt95Iv6m"`
	Dlt95Iv1y  float64 `json:"dlt95Iv1y"`

	ExErnDlt95Iv10d float64 `json:"exErnDlt95Iv10d"`
	ExErnDlt95Iv20d float64 `json:"exErnDlt95Iv20d"`
	ExErnDlt95Iv30d float64 `json:"exErnDlt95Iv30d"`
	ExErnDlt95Iv60d float64 `json:"exErnDlt95Iv60d"`
	ExErnDlt95Iv90d float64 `json:"exErnDlt95Iv90d"`
	ExErnDlt95Iv6m  float64 `json:"exErnDlt95Iv6m"`
	ExErnDlt95Iv1y  float64 `json:"exErnDlt95Iv1y"`

	Fwd30_20  float64 `json:"fwd30_20"`
	Fwd60_30  float64 `json:"fwd60_30"`
	Fwd90_60  float64 `json:"fwd90_60"`
	Fwd180_90 float64 `json:"fwd180_90"`
	Fwd90_30  float64 `json:"fwd90_30"`

	FexErn30_20  float64 `json:"fexErn30_20"`
	FexErn60_30  float64 `json:"fexErn60_30"`
	FexErn90_60  float64 `json:"fexErn90_60"`
	FexErn180_90 float64 `json:"fexErn180_90"`
	FexErn90_30  float64 `json:"fexErn90_30"`

	Ffwd30_20  float64 `json:"ffwd30_20"`
	Ffwd60_30  float64 `json:"ffwd60_30"`
	Ffwd90_60  float64 `json:"ffwd90_60"`
	Ffwd180_90 float64 `json:"ffwd180_90"`
	Ffwd90_30  float64 `json:"ffwd90_30"`

	FfexErn30_20  float64 `json:"ffexErn30_20"`
	FfexErn60_30  float64 `json:"ffexErn60_30"`
	FfexErn90_60  float64 `json:"ffexErn90_60"`
	FfexErn180_90 float64 `json:"ffexErn180_90"`
	FfexErn90_30  float64 `json:"ffexErn90_30"`

	Fbfwd30_20  float64 `json:"fbfwd30_20"`
	Fbfwd60_30  float64 `json:"fbfwd60_30"`
	Fbfwd90_60  float64 `json:"fbfwd90_60"`
	Fbfwd180_90 float64 `json:"fbfwd180_90"`
	Fbfwd90_30  float64 `json:"fbfwd90_30"`

	FbfexErn30_20  float64 `json:"fbfexErn30_20"`
	FbfexErn60_30  float64 `json:"fbfexErn60_30"`
	FbfexErn90_60  float64 `json:"fbfexErn90_60"`
	FbfexErn180_90 float64 `json:"fbfexErn180_90"`
	FbfexErn90_30  float64 `json:"fbfexErn90_30"`

	UpdatedAt time.Time `json:"updatedAt"`
}
