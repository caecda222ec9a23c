package data

import "time"

// Ticker reports the duration of available data for one symbol.
type Ticker struct {
	Ticker  string `json:"ticker"`
	MinDate Date   `json:"min"`
	MaxDate Date   `json:"max"`
}

// Strike is one row of the strikes resource: quotes, values and
// greeks for a call/put pair at a single strike.
type Strike struct {
	Ticker           string    `json:"ticker"`
	TradeDate        Date      `json:"tradeDate"`
	ExpirDate        Date      `json:"expirDate"`
	DTE              int       `json:"dte"`
	Strike           float64   `json:"strike"`
	SpotPrice        float64   `json:"spotPrice"`
	StockPrice       float64   `json:"stockPrice"`
	SmvVol           float64   `json:"smvVol"`
	ExtSmvVol        float64   `json:"extSmvVol"`
	CallVolume       int       `json:"callVolume"`
	CallOpenInterest int       `json:"callOpenInterest"`
	CallBidSize      int       `json:"callBidSize"`
	CallAskSize      int       `json:"callAskSize"`
	CallBidPrice     float64   `json:"callBidPrice"`
	CallAskPrice     float64   `json:"callAskPrice"`
	CallValue        float64   `json:"callValue"`
	CallBidIv        float64   `json:"callBidIv"`
	CallMidIv        float64   `json:"callMidIv"`
	CallAskIv        float64   `json:"callAskIv"`
	ExtCallValue     float64   `json:"extCallValue"`
	PutVolume        int       `json:"putVolume"`
	PutOpenInterest  int       `json:"putOpenInterest"`
	PutBidSize       int       `json:"putBidSize"`
	PutAskSize       int       `json:"putAskSize"`
	PutBidPrice      float64   `json:"putBidPrice"`
	PutAskPrice      float64   `json:"putAskPrice"`
	PutValue         float64   `json:"putValue"`
	ExtPutValue      float64   `json:"extPutValue"`
	PutBidIv         float64   `json:"putBidIv"`
	PutMidIv         float64   `json:"putMidIv"`
	PutAskIv         float64   `json:"putAskIv"`
	ResidualRate     float64   `json:"residualRate"`
	Delta            float64   `json:"delta"`
	Gamma            float64   `json:"gamma"`
	Theta            float64   `json:"theta"`
	Vega             float64   `json:"vega"`
	Rho              float64   `json:"rho"`
	Phi              float64   `json:"phi"`
	DriftlessTheta   float64   `json:"driftlessTheta"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Money carries the volatility surface fields shared by the implied
// and forecast monies resources.
type Money struct {
	Ticker       string    `json:"ticker"`
	TradeDate    Date      `json:"tradeDate"`
	ExpirDate    Date      `json:"expirDate"`
	StockPrice   float64   `json:"stockPrice"`
	RiskFreeRate float64   `json:"riskFreeRate"`
	Vol100       float64   `json:"vol100"`
	Vol95        float64   `json:"vol95"`
	Vol90        float64   `json:"vol90"`
	Vol85        float64   `json:"vol85"`
	Vol80        float64   `json:"vol80"`
	Vol75        float64   `json:"vol75"`
	Vol70        float64   `json:"vol70"`
	Vol65        float64   `json:"vol65"`
	Vol60        float64   `json:"vol60"`
	Vol55        float64   `json:"vol55"`
	Vol50        float64   `json:"vol50"`
	Vol45        float64   `json:"vol45"`
	Vol40        float64   `json:"vol40"`
	Vol35        float64   `json:"vol35"`
	Vol30        float64   `json:"vol30"`
	Vol25        float64   `json:"vol25"`
	Vol20        float64   `json:"vol20"`
	Vol15        float64   `json:"vol15"`
	Vol10        float64   `json:"vol10"`
	Vol5         float64   `json:"vol5"`
	Vol0         float64   `json:"vol0"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MoneyImplied is one row of the monies/implied resource.
type MoneyImplied struct {
	Money
	SpotPrice         float64 `json:"spotPrice"`
	YieldRate         float64 `json:"yieldRate"`
	ResidualYieldRate float64 `json:"residualYieldRate"`
	ResidualRateSlp   float64 `json:"residualRateSlp"`
	ResidualR2        float64 `json:"residualR2"`
	Confidence        float64 `json:"confidence"`
	MwVol             float64 `json:"mwVol"`
	AtmIv             float64 `json:"atmiv"`
	Slope             float64 `json:"slope"`
	Deriv             float64 `json:"deriv"`
	Fit               float64 `json:"fit"`
	CalVol            float64 `json:"calVol"`
	UnadjVol          float64 `json:"unadjVol"`
	EarnEffect        float64 `json:"earnEffect"`
}

// MoneyForecast is one row of the monies/forecast resource. It shares
// the surface fields without the implied-only extras.
type MoneyForecast struct {
	Money
}

// DailyPrice is one row of the end of day stock price resource.
type DailyPrice struct {
	Ticker           string    `json:"ticker"`
	TradeDate        Date      `json:"tradeDate"`
	Open             float64   `json:"open"`
	HiPx             float64   `json:"hiPx"`
	LoPx             float64   `json:"loPx"`
	ClsPx            float64   `json:"clsPx"`
	StockVolume      int64     `json:"stockVolume"`
	UnadjOpen        float64   `json:"unadjOpen"`
	UnadjHiPx        float64   `json:"unadjHiPx"`
	UnadjLoPx        float64   `json:"unadjLoPx"`
	UnadjClsPx       float64   `json:"unadjClsPx"`
	UnadjStockVolume int64     `json:"unadjStockVolume"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// HistoricalVolatility is one row of the hvs resource: realized
// volatilities over standard lookback periods, intraday and close to
// close, with and without earnings.
type HistoricalVolatility struct {
	Ticker    string `json:"ticker"`
	TradeDate Date   `json:"tradeDate"`

	OrHv1d    float64 `json:"orHv1d"`
	OrHv5d    float64 `json:"orHv5d"`
	OrHv10d   float64 `json:"orHv10d"`
	OrHv20d   float64 `json:"orHv20d"`
	OrHv30d   float64 `json:"orHv30d"`
	OrHv60d   float64 `json:"orHv60d"`
	OrHv90d   float64 `json:"orHv90d"`
	OrHv100d  float64 `json:"orHv100d"`
	OrHv120d  float64 `json:"orHv120d"`
	OrHv252d  float64 `json:"orHv252d"`
	OrHv500d  float64 `json:"orHv500d"`
	OrHv1000d float64 `json:"orHv1000d"`

	ClsHv5d    float64 `json:"clsHv5d"`
	ClsHv10d   float64 `json:"clsHv10d"`
	ClsHv20d   float64 `json:"clsHv20d"`
	ClsHv30d   float64 `json:"clsHv30d"`
	ClsHv60d   float64 `json:"clsHv60d"`
	ClsHv90d   float64 `json:"clsHv90d"`
	ClsHv100d  float64 `json:"clsHv100d"`
	ClsHv120d  float64 `json:"clsHv120d"`
	ClsHv252d  float64 `json:"clsHv252d"`
	ClsHv500d  float64 `json:"clsHv500d"`
	ClsHv1000d float64 `json:"clsHv1000d"`

	OrHvXern5d    float64 `json:"orHvXern5d"`
	OrHvXern10d   float64 `json:"orHvXern10d"`
	OrHvXern20d   float64 `json:"orHvXern20d"`
	OrHvXern30d   float64 `json:"orHvXern30d"`
	OrHvXern60d   float64 `json:"orHvXern60d"`
	OrHvXern90d   float64 `json:"orHvXern90d"`
	OrHvXern100d  float64 `json:"orHvXern100d"`
	OrHvXern120d  float64 `json:"orHvXern120d"`
	OrHvXern252d  float64 `json:"orHvXern252d"`
	OrHvXern500d  float64 `json:"orHvXern500d"`
	OrHvXern1000d float64 `json:"orHvXern1000d"`

	ClsHvXern5d    float64 `json:"clsHvXern5d"`
	ClsHvXern10d   float64 `json:"clsHvXern10d"`
	ClsHvXern20d   float64 `json:"clsHvXern20d"`
	ClsHvXern30d   float64 `json:"clsHvXern30d"`
	ClsHvXern60d   float64 `json:"clsHvXern60d"`
	ClsHvXern90d   float64 `json:"clsHvXern90d"`
	ClsHvXern100d  float64 `json:"clsHvXern100d"`
	ClsHvXern120d  float64 `json:"clsHvXern120d"`
	ClsHvXern252d  float64 `json:"clsHvXern252d"`
	ClsHvXern500d  float64 `json:"clsHvXern500d"`
	ClsHvXern1000d float64 `json:"clsHvXern1000d"`
}

// DividendHistory is one row of the divs resource.
type DividendHistory struct {
	Ticker       string  `json:"ticker"`
	ExDate       Date    `json:"exDate"`
	DivAmt       float64 `json:"divAmt"`
	DivFreq      int     `json:"divFreq"`
	DeclaredDate Date    `json:"declaredDate"`
}

// EarningsHistory is one row of the earnings resource.
type EarningsHistory struct {
	Ticker    string    `json:"ticker"`
	EarnDate  Date      `json:"earnDate"`
	AnncTod   int       `json:"anncTod"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockSplitHistory is one row of the splits resource.
type StockSplitHistory struct {
	Ticker    string  `json:"ticker"`
	SplitDate Date    `json:"splitDate"`
	Divisor   float64 `json:"divisor"`
}

// IvRank is one row of the ivrank resource.
type IvRank struct {
	Ticker    string    `json:"ticker"`
	TradeDate Date      `json:"tradeDate"`
	Iv        float64   `json:"iv"`
	IvRank1m  float64   `json:"ivRank1m"`
	IvPct1m   float64   `json:"ivPct1m"`
	IvRank1y  float64   `json:"ivRank1y"`
	IvPct1y   float64   `json:"ivPct1y"`
	UpdatedAt time.Time `json:"updatedAt"`
}
