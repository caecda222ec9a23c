package data

import "time"

// Core is one row of the cores resource, the API's widest record:
// volatility forecasts, monthly at-the-money structure, realized
// volatility lookbacks, dividend and earnings context, and relative
// indicators against SPY and the best matching ETF.
type Core struct {
	Ticker    string  `json:"ticker"`
	TradeDate Date    `json:"tradeDate"`
	AssetType int     `json:"assetType"`
	PriorCls  float64 `json:"priorCls"`
	PxAtmIv   float64 `json:"pxAtmIv"`
	MktCap    int64   `json:"mktCap"`
	CVolu     int64   `json:"cVolu"`
	COi       int64   `json:"cOi"`
	PVolu     int64   `json:"pVolu"`
	POi       int64   `json:"pOi"`

	OrFcst20d   float64 `json:"orFcst20d"`
	OrIvFcst20d float64 `json:"orIvFcst20d"`
	OrFcstInf   float64 `json:"orFcstInf"`
	OrIvXern20d float64 `json:"orIvXern20d"`
	OrIvXernInf float64 `json:"orIvXernInf"`
	Iv200Ma     float64 `json:"iv200Ma"`

	AtmIvM1     float64 `json:"atmIvM1"`
	AtmFitIvM1  float64 `json:"atmFitIvM1"`
	AtmFcstIvM1 float64 `json:"atmFcstIvM1"`
	DtExM1      int     `json:"dtExM1"`
	AtmIvM2     float64 `json:"atmIvM2"`
	AtmFitIvM2  float64 `json:"atmFitIvM2"`
	AtmFcstIvM2 float64 `json:"atmFcstIvM2"`
	DtExM2      int     `json:"dtExM2"`
	AtmIvM3     float64 `json:"atmIvM3"`
	AtmFitIvM3  float64 `json:"atmFitIvM3"`
	AtmFcstIvM3 float64 `json:"atmFcstIvM3"`
	DtExM3      int     `json:"dtExM3"`
	AtmIvM4     float64 `json:"atmIvM4"`
	AtmFitIvM4  float64 `json:"atmFitIvM4"`
	AtmFcstIvM4 float64 `json:"atmFcstIvM4"`
	DtExM4      int     `json:"dtExM4"`

	IRate5wk       float64 `json:"iRate5wk"`
	IRateLt        float64 `json:"iRateLt"`
	Px1kGam        float64 `json:"px1kGam"`
	VolOfVol       float64 `json:"volOfVol"`
	VolOfIvol      float64 `json:"volOfIvol"`
	Slope          float64 `json:"slope"`
	SlopeInf       float64 `json:"slopeInf"`
	SlopeFcst      float64 `json:"slopeFcst"`
	SlopeFcstInf   float64 `json:"slopeFcstInf"`
	Deriv          float64 `json:"deriv"`
	DerivInf       float64 `json:"derivInf"`
	DerivFcst      float64 `json:"derivFcst"`
	DerivFcstInf   float64 `json:"derivFcstInf"`
	MktWidthVol    float64 `json:"mktWidthVol"`
	MktWidthVolInf float64 `json:"mktWidthVolInf"`
	Rip            float64 `json:"rip"`
	IvEarnReturn   float64 `json:"ivEarnReturn"`
	FcstR2         float64 `json:"fcstR2"`
	FcstR2Imp      float64 `json:"fcstR2Imp"`
	StkVolu        int64   `json:"stkVolu"`
	AvgOptVolu20d  float64 `json:"avgOptVolu20d"`
	Sector         string  `json:"sector"`

	OrHv1d    float64 `json:"orHv1d"`
	OrHv5d    float64 `json:"orHv5d"`
	OrHv10d   float64 `json:"orHv10d"`
	OrHv20d   float64 `json:"orHv20d"`
	OrHv60d   float64 `json:"orHv60d"`
	OrHv90d   float64 `json:"orHv90d"`
	OrHv120d  float64 `json:"orHv120d"`
	OrHv252d  float64 `json:"orHv252d"`
	OrHv500d  float64 `json:"orHv500d"`
	OrHv1000d float64 `json:"orHv1000d"`

	ClsHv5d    float64 `json:"clsHv5d"`
	ClsHv10d   float64 `json:"clsHv10d"`
	ClsHv20d   float64 `json:"clsHv20d"`
	ClsHv60d   float64 `json:"clsHv60d"`
	ClsHv90d   float64 `json:"clsHv90d"`
	ClsHv120d  float64 `json:"clsHv120d"`
	ClsHv252d  float64 `json:"clsHv252d"`
	ClsHv500d  float64 `json:"clsHv500d"`
	ClsHv1000d float64 `json:"clsHv1000d"`

	ClsPx1w      float64 `json:"clsPx1w"`
	StkPxChng1wk float64 `json:"stkPxChng1wk"`
	ClsPx1m      float64 `json:"clsPx1m"`
	StkPxChng1m  float64 `json:"stkPxChng1m"`
	ClsPx6m      float64 `json:"clsPx6m"`
	StkPxChng6m  float64 `json:"stkPxChng6m"`
	ClsPx1y      float64 `json:"clsPx1y"`
	StkPxChng1y  float64 `json:"stkPxChng1y"`

	DivFreq      int     `json:"divFreq"`
	DivYield     float64 `json:"divYield"`
	DivGrwth     float64 `json:"divGrwth"`
	DivDate      Date    `json:"divDate"`
	DivAmt       float64 `json:"divAmt"`
	NextErn      Date    `json:"nextErn"` // "0000-00-00" when unknown
	LastErn      Date    `json:"lastErn"`
	LastErnTod   int     `json:"lastErnTod"`
	AbsAvgErnMv  float64 `json:"absAvgErnMv"`
	ImpliedIee   float64 `json:"impliedIee"`
	TkOver       bool    `json:"tkOver"`
	EtfIncl      string  `json:"etfIncl"`
	BestEtf      string  `json:"bestEtf"`
	SectorName   string  `json:"sectorName"`
	CorrelSpy1m  float64 `json:"correlSpy1m"`
	CorrelSpy1y  float64 `json:"correlSpy1y"`
	CorrelEtf1m  float64 `json:"correlEtf1m"`
	CorrelEtf1y  float64 `json:"correlEtf1y"`
	Beta1m       float64 `json:"beta1m"`
	Beta1y       float64 `json:"beta1y"`
	IvPctile1m   int     `json:"ivPctile1m"`
	IvPctile1y   int     `json:"ivPctile1y"`
	IvPctileSpy  int     `json:"ivPctileSpy"`
	IvPctileEtf  int     `json:"ivPctileEtf"`
	IvStdvMean   float64 `json:"ivStdvMean"`
	IvStdv1y     float64 `json:"ivStdv1y"`

	IvSpyRatio          float64 `json:"ivSpyRatio"`
	IvSpyRatioAvg1m     float64 `json:"ivSpyRatioAvg1m"`
	IvSpyRatioAvg1y     float64 `json:"ivSpyRatioAvg1y"`
	IvSpyRatioStdv1y    float64 `json:"ivSpyRatioStdv1y"`
	IvEtfRatio          float64 `json:"ivEtfRatio"`
	IvEtfRatioAvg1m     float64 `json:"ivEtfRatioAvg1m"`
	IvEtfRatioAvg1y     float64 `json:"ivEtfRatioAvg1y"`
	IvEtfRatioStdv1y    float64 `json:"ivEtFratioStdv1y"`
	IvHvXernRatio       float64 `json:"ivHvXernRatio"`
	IvHvXernRatio1m     float64 `json:"ivHvXernRatio1m"`
	IvHvXernRatio1y     float64 `json:"ivHvXernRatio1y"`
	IvHvXernRatioStdv1y float64 `json:"ivHvXernRatioStdv1y"`

	EtfIvHvXernRatio       float64 `json:"etfIvHvXernRatio"`
	EtfIvHvXernRatio1m     float64 `json:"etfIvHvXernRatio1m"`
	EtfIvHvXernRatio1y     float64 `json:"etfIvHvXernRatio1y"`
	EtfIvHvXernRatioStdv1y float64 `json:"etfIvHvXernRatioStdv1y"`

	SlopePctile        float64 `json:"slopepctile"`
	SlopeAvg1m         float64 `json:"slopeavg1m"`
	SlopeAvg1y         float64 `json:"slopeavg1y"`
	SlopeStdv1y        float64 `json:"slopeStdv1y"`
	EtfSlopeRatio      float64 `json:"etfSlopeRatio"`
	EtfSlopeRatioAvg1m float64 `json:"etfSlopeRatioAvg1m"`
	EtfSlopeRatioAvg1y float64 `json:"etfSlopeRatioAvg1y"`
	EtfSlopeRatioStdv  float64 `json:"etfSlopeRatioAvgStdv1y"`

	ImpliedR2      float64 `json:"impliedR2"`
	Contango       float64 `json:"contango"`
	NextDiv        float64 `json:"nextDiv"`
	ImpliedNextDiv float64 `json:"impliedNextDiv"`
	AnnActDiv      float64 `json:"annActDiv"`
	AnnIdiv        float64 `json:"annIdiv"`
	Borrow30       float64 `json:"borrow30"`
	Borrow2yr      float64 `json:"borrow2yr"`
	Error          float64 `json:"error"`
	Confidence     float64 `json:"confidence"`
	PxCls          float64 `json:"pxCls"`
	WksNextErn     int     `json:"wksNextErn"`
	Oi             int64   `json:"oi"`

	StraPxM1       float64 `json:"straPxM1"`
	StraPxM2       float64 `json:"straPxM2"`
	SmoothStraPxM1 float64 `json:"smoothStraPxM1"`
	SmoothStrPxM2  float64 `json:"smoothStrPxM2"`
	FcstStraPxM1   float64 `json:"fcstStraPxM1"`
	FcstStraPxM2   float64 `json:"fcstStraPxM2"`
	LoStrikeM1     int     `json:"loStrikeM1"`
	HiStrikeM1     int     `json:"hiStrikeM1"`
	LoStrikeM2     int     `json:"loStrikeM2"`
	HiStrikeM2     int     `json:"hiStrikeM2"`

	// Earnings dates use the US month/day/year encoding, unlike every
	// other date field in the API.
	ErnDate1  DateUS `json:"ernDate1"`
	ErnDate2  DateUS `json:"ernDate2"`
	ErnDate3  DateUS `json:"ernDate3"`
	ErnDate4  DateUS `json:"ernDate4"`
	ErnDate5  DateUS `json:"ernDate5"`
	ErnDate6  DateUS `json:"ernDate6"`
	ErnDate7  DateUS `json:"ernDate7"`
	ErnDate8  DateUS `json:"ernDate8"`
	ErnDate9  DateUS `json:"ernDate9"`
	ErnDate10 DateUS `json:"ernDate10"`
	ErnDate11 DateUS `json:"ernDate11"`
	ErnDate12 DateUS `json:"ernDate12"`

	ErnMv1  float64 `json:"ernMv1"`
	ErnMv2  float64 `json:"ernMv2"`
	ErnMv3  float64 `json:"ernMv3"`
	ErnMv4  float64 `json:"ernMv4"`
	ErnMv5  float64 `json:"ernMv5"`
	ErnMv6  float64 `json:"ernMv6"`
	ErnMv7  float64 `json:"ernMv7"`
	ErnMv8  float64 `json:"ernMv8"`
	ErnMv9  float64 `json:"ernMv9"`
	ErnMv10 float64 `json:"ernMv10"`
	ErnMv11 float64 `json:"ernMv11"`
	ErnMv12 float64 `json:"ernMv12"`

	ErnStraPct1  float64 `json:"ernStraPct1"`
	ErnStraPct2  float64 `json:"ernStraPct2"`
	ErnStraPct3  float64 `json:"ernStraPct3"`
	ErnStraPct4  float64 `json:"ernStraPct4"`
	ErnStraPct5  float64 `json:"ernStraPct5"`
	ErnStraPct6  float64 `json:"ernStraPct6"`
	ErnStraPct7  float64 `json:"ernStraPct7"`
	ErnStraPct8  float64 `json:"ernStraPct8"`
	ErnStraPct9  float64 `json:"ernStraPct9"`
	ErnStraPct10 float64 `json:"ernStraPct10"`
	ErnStraPct11 float64 `json:"ernStraPct11"`
	ErnStraPct12 float64 `json:"ernStraPct12"`

	ErnEffct1  float64 `json:"ernEffct1"`
	ErnEffct2  float64 `json:"ernEffct2"`
	ErnEffct3  float64 `json:"ernEffct3"`
	ErnEffct4  float64 `json:"ernEffct4"`
	ErnEffct5  float64 `json:"ernEffct5"`
	ErnEffct6  float64 `json:"ernEffct6"`
	ErnEffct7  float64 `json:"ernEffct7"`
	ErnEffct8  float64 `json:"ernEffct8"`
	ErnEffct9  float64 `json:"ernEffct9"`
	ErnEffct10 float64 `json:"ernEffct10"`
	ErnEffct11 float64 `json:"ernEffct11"`
	ErnEffct12 float64 `json:"ernEffct12"`

	OrHvXern5d    float64 `json:"orHvXern5d"`
	OrHvXern10d   float64 `json:"orHvXern10d"`
	OrHvXern20d   float64 `json:"orHvXern20d"`
	OrHvXern60d   float64 `json:"orHvXern60d"`
	OrHvXern90d   float64 `json:"orHvXern90d"`
	OrHvXern120d  float64 `json:"orHvXern120d"`
	OrHvXern252d  float64 `json:"orHvXern252d"`
	OrHvXern500d  float64 `json:"orHvXern500d"`
	OrHvXern1000d float64 `json:"orHvXern1000d"`

	ClsHvXern5d    float64 `json:"clsHvXern5d"`
	ClsHvXern10d   float64 `json:"clsHvXern10d"`
	ClsHvXern20d   float64 `json:"clsHvXern20d"`
	ClsHvXern60d   float64 `json:"clsHvXern60d"`
	ClsHvXern90d   float64 `json:"clsHvXern90d"`
	ClsHvXern120d  float64 `json:"clsHvXern120d"`
	ClsHvXern252d  float64 `json:"clsHvXern252d"`
	ClsHvXern500d  float64 `json:"clsHvXern500d"`
	ClsHvXern1000d float64 `json:"clsHvXern1000d"`

	Iv10d float64 `json:"iv10d"`
	Iv20d float64 `json:"iv20d"`
	Iv30d float64 `json:"iv30d"`
	Iv60d float64 `json:"iv60d"`
	Iv90d float64 `json:"iv90d"`
	Iv6m  float64 `json:"iv6m"`
	Iv1yr float64 `json:"iv1yr"`

	FcstSlope    float64 `json:"fcstSlope"`
	FcstErnEffct float64 `json:"fcstErnEffct"`
	ErnMvStdv    float64 `json:"ernMvStdv"`
	ImpliedEe    float64 `json:"impliedEe"`
	ImpErnMv     float64 `json:"impErnMv"`
	ImpMth2ErnMv float64 `json:"impMth2ErnMv"`

	FairVol90d         float64 `json:"fairVol90d"`
	FairXieeVol90d     float64 `json:"fairXieeVol90d"`
	FairMth2XieeVol90d float64 `json:"fairMth2XieeVol90d"`
	ImpErnMv90d        float64 `json:"impErnMv90d"`
	ImpErnMvMth290d    float64 `json:"impErnMvMth290d"`

	ExErnIv10d float64 `json:"exErnIv10d"`
	ExErnIv20d float64 `json:"exErnIv20d"`
	ExErnIv30d float64 `json:"exErnIv30d"`
	ExErnIv60d float64 `json:"exErnIv60d"`
	ExErnIv90d float64 `json:"exErnIv90d"`
	ExErnIv6m  float64 `json:"exErnIv6m"`
	ExErnIv1yr float64 `json:"exErnIv1yr"`

	UpdatedAt time.Time `json:"updatedAt"`
}
