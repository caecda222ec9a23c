package data

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate backs the declarative request checks. Cross-field rules
// that tags cannot express live in each request's validate method.
var validate = validator.New(validator.WithRequiredStructEnabled())

// apiRequest is the contract every request type fulfils: it can check
// itself, serialize to query parameters, and report whether it targets
// the historical variant of its resource.
type apiRequest interface {
	validate() error
	encodeQuery() url.Values
	historical() bool
}

// checkStruct runs the declarative validator tags and converts the
// first failure into a ValidationError naming the field.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if errors.As(err, &ferrs) && len(ferrs) > 0 {
		fe := ferrs[0]
		return &ValidationError{
			Field:  fe.Field(),
			Reason: fmt.Sprintf("failed %q constraint", fe.Tag()),
		}
	}
	return err
}

// checkTradeDate rejects trade dates in the future.
func checkTradeDate(td Date) error {
	if !td.IsZero() && td.Time.After(Today().Time) {
		return &ValidationError{Field: "tradeDate", Reason: "must not be in the future"}
	}
	return nil
}

// checkTickersOrTradeDate enforces the dependency rule shared by the
// history-capable multi-ticker requests.
func checkTickersOrTradeDate(tickers []string, td Date) error {
	if len(tickers) == 0 && td.IsZero() {
		return &ValidationError{Field: "tradeDate", Reason: "one of tickers or tradeDate is required"}
	}
	for _, t := range tickers {
		if t == "" {
			return &ValidationError{Field: "ticker", Reason: "ticker symbols must be non-empty"}
		}
	}
	return checkTradeDate(td)
}

// Range filters a numeric field to an interval. A nil side leaves
// that bound open. The API encodes ranges as comma separated pairs:
// "30,45", "30," (lower bound only), ",45" (upper bound only).
type Range struct {
	Min *float64
	Max *float64
}

// Bound is a convenience for building Range literals.
func Bound(v float64) *float64 { return &v }

func (r *Range) validate(field string) error {
	if r == nil {
		return nil
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return &ValidationError{Field: field, Reason: "lower bound exceeds upper bound"}
	}
	return nil
}

func (r *Range) encode() string {
	var lo, hi string
	if r.Min != nil {
		lo = strconv.FormatFloat(*r.Min, 'f', -1, 64)
	}
	if r.Max != nil {
		hi = strconv.FormatFloat(*r.Max, 'f', -1, 64)
	}
	return lo + "," + hi
}

// setMulti writes the query parameters shared by the multi-ticker
// requests. Absent values are omitted entirely.
func setMulti(q url.Values, tickers, fields []string, td Date) {
	if len(tickers) > 0 {
		q.Set("ticker", strings.Join(tickers, ","))
	}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	if !td.IsZero() {
		q.Set("tradeDate", td.String())
	}
}

// splitList undoes the comma-joined list encoding. It is the inverse
// of the strings.Join used by setMulti.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// TickersRequest asks for the duration of available data for one
// underlying, or for every symbol when Ticker is empty at the API
// level; this client requires an explicit symbol.
type TickersRequest struct {
	Ticker string `validate:"required"`
}

func (r TickersRequest) validate() error { return checkStruct(r) }
func (r TickersRequest) historical() bool {
	return false
}
func (r TickersRequest) encodeQuery() url.Values {
	q := url.Values{}
	q.Set("ticker", r.Ticker)
	return q
}

// StrikesRequest retrieves strikes data for the given assets,
// optionally filtered by days to expiration and delta.
type StrikesRequest struct {
	Tickers         []string
	Fields          []string
	TradeDate       Date
	ExpirationRange *Range // days to expiration
	DeltaRange      *Range
}

func (r StrikesRequest) validate() error {
	if err := checkTickersOrTradeDate(r.Tickers, r.TradeDate); err != nil {
		return err
	}
	if err := r.ExpirationRange.validate("dte"); err != nil {
		return err
	}
	return r.DeltaRange.validate("delta")
}

func (r StrikesRequest) historical() bool { return !r.TradeDate.IsZero() }

func (r StrikesRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	if r.ExpirationRange != nil {
		q.Set("dte", r.ExpirationRange.encode())
	}
	if r.DeltaRange != nil {
		q.Set("delta", r.DeltaRange.encode())
	}
	return q
}

// StrikesByOptionsRequest retrieves strikes data for one option,
// identified by ticker, expiry and strike price.
type StrikesByOptionsRequest struct {
	Ticker         string  `json:"ticker" validate:"required"`
	ExpirationDate Date    `json:"expirDate"`
	Strike         float64 `json:"strike" validate:"required,gt=0"`
}

func (r StrikesByOptionsRequest) validate() error {
	if err := checkStruct(r); err != nil {
		return err
	}
	if r.ExpirationDate.IsZero() {
		return &ValidationError{Field: "expirDate", Reason: "expiration date is required"}
	}
	return nil
}

func (r StrikesByOptionsRequest) historical() bool { return false }

func (r StrikesByOptionsRequest) encodeQuery() url.Values {
	q := url.Values{}
	q.Set("ticker", r.Ticker)
	q.Set("expirDate", r.ExpirationDate.String())
	q.Set("strike", strconv.FormatFloat(r.Strike, 'f', -1, 64))
	return q
}

// MoniesRequest retrieves monthly implied or forecast monies. Unlike
// the other multi-ticker requests, at least one ticker is always
// required.
type MoniesRequest struct {
	Tickers   []string `validate:"required,min=1,dive,required"`
	Fields    []string
	TradeDate Date
}

func (r MoniesRequest) validate() error {
	if err := checkStruct(r); err != nil {
		return err
	}
	return checkTradeDate(r.TradeDate)
}

func (r MoniesRequest) historical() bool { return !r.TradeDate.IsZero() }

func (r MoniesRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	return q
}

// SummariesRequest retrieves SMV summary data.
type SummariesRequest struct {
	Tickers   []string
	Fields    []string
	TradeDate Date
}

func (r SummariesRequest) validate() error {
	return checkTickersOrTradeDate(r.Tickers, r.TradeDate)
}
func (r SummariesRequest) historical() bool { return !r.TradeDate.IsZero() }
func (r SummariesRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	return q
}

// CoreDataRequest retrieves core data.
type CoreDataRequest struct {
	Tickers   []string
	Fields    []string
	TradeDate Date
}

func (r CoreDataRequest) validate() error {
	return checkTickersOrTradeDate(r.Tickers, r.TradeDate)
}
func (r CoreDataRequest) historical() bool { return !r.TradeDate.IsZero() }
func (r CoreDataRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	return q
}

// DailyPriceRequest retrieves end of day stock price data.
type DailyPriceRequest struct {
	Tickers   []string
	Fields    []string
	TradeDate Date
}

func (r DailyPriceRequest) validate() error {
	return checkTickersOrTradeDate(r.Tickers, r.TradeDate)
}
func (r DailyPriceRequest) historical() bool { return !r.TradeDate.IsZero() }
func (r DailyPriceRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	return q
}

// HistoricalVolatilityRequest retrieves historical volatility data.
type HistoricalVolatilityRequest struct {
	Tickers   []string
	Fields    []string
	TradeDate Date
}

func (r HistoricalVolatilityRequest) validate() error {
	return checkTickersOrTradeDate(r.Tickers, r.TradeDate)
}
func (r HistoricalVolatilityRequest) historical() bool { return !r.TradeDate.IsZero() }
func (r HistoricalVolatilityRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	return q
}

// DividendHistoryRequest retrieves dividend history for one asset.
type DividendHistoryRequest struct {
	Ticker string `validate:"required"`
}

func (r DividendHistoryRequest) validate() error  { return checkStruct(r) }
func (r DividendHistoryRequest) historical() bool { return false }
func (r DividendHistoryRequest) encodeQuery() url.Values {
	q := url.Values{}
	q.Set("ticker", r.Ticker)
	return q
}

// EarningsHistoryRequest retrieves earnings history for one asset.
type EarningsHistoryRequest struct {
	Ticker string `validate:"required"`
}

func (r EarningsHistoryRequest) validate() error  { return checkStruct(r) }
func (r EarningsHistoryRequest) historical() bool { return false }
func (r EarningsHistoryRequest) encodeQuery() url.Values {
	q := url.Values{}
	q.Set("ticker", r.Ticker)
	return q
}

// StockSplitHistoryRequest retrieves stock split history for one asset.
type StockSplitHistoryRequest struct {
	Ticker string `validate:"required"`
}

func (r StockSplitHistoryRequest) validate() error  { return checkStruct(r) }
func (r StockSplitHistoryRequest) historical() bool { return false }
func (r StockSplitHistoryRequest) encodeQuery() url.Values {
	q := url.Values{}
	q.Set("ticker", r.Ticker)
	return q
}

// IvRankRequest retrieves IV rank data.
type IvRankRequest struct {
	Tickers   []string
	Fields    []string
	TradeDate Date
}

func (r IvRankRequest) validate() error {
	return checkTickersOrTradeDate(r.Tickers, r.TradeDate)
}
func (r IvRankRequest) historical() bool { return !r.TradeDate.IsZero() }
func (r IvRankRequest) encodeQuery() url.Values {
	q := url.Values{}
	setMulti(q, r.Tickers, r.Fields, r.TradeDate)
	return q
}
