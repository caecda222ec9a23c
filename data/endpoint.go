package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// envelope is the wrapper every Data API resource responds with. A
// populated error or message field marks a failed call even when the
// HTTP status is a success.
type envelope[T any] struct {
	Data    []T     `json:"data"`
	Message *string `json:"message"`
	Error   *string `json:"error"`
}

// resourceURL resolves the target path for a resource. Historical
// calls share the live resource's construct and differ only in the
// "hist/" path prefix.
func (c *Client) resourceURL(resource string, historical bool) string {
	if historical {
		resource = "hist/" + resource
	}
	return c.baseURL + "/" + resource
}

// fetch validates the request, routes it to the live or historical
// path, and decodes the typed records out of the response envelope.
func fetch[T any](ctx context.Context, c *Client, resource string, histOnly bool, req apiRequest) ([]T, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	q := req.encodeQuery()
	q.Set("token", c.token)
	u := c.resourceURL(resource, histOnly || req.historical()) + "?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	return do[T](c, resource, httpReq)
}

// do executes the prepared request and maps transport, status and
// envelope failures to the client's error kinds.
func do[T any](c *Client, resource string, req *http.Request) ([]T, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orats: %s request: %w", resource, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 400 {
		return nil, statusError(res.StatusCode)
	}

	var env envelope[T]
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, &ParseError{Resource: resource, Err: err}
	}
	if env.Error != nil {
		return nil, &APIError{Message: *env.Error}
	}
	if env.Message != nil {
		return nil, &APIError{Message: *env.Message}
	}
	return env.Data, nil
}

// Tickers retrieves the duration of available data for an asset.
func (c *Client) Tickers(ctx context.Context, req TickersRequest) ([]Ticker, error) {
	return fetch[Ticker](ctx, c, "tickers", false, req)
}

// Strikes retrieves strikes data for the given assets. A request with
// a trade date is routed to the strikes history resource.
func (c *Client) Strikes(ctx context.Context, req StrikesRequest) ([]Strike, error) {
	return fetch[Strike](ctx, c, "strikes", false, req)
}

// StrikesByOptions retrieves strikes data by ticker, expiry and
// strike. A single request uses GET; passing several batches them
// into one POST call.
func (c *Client) StrikesByOptions(ctx context.Context, reqs ...StrikesByOptionsRequest) ([]Strike, error) {
	if len(reqs) == 0 {
		return nil, &ValidationError{Field: "requests", Reason: "at least one request is required"}
	}
	if len(reqs) == 1 {
		return fetch[Strike](ctx, c, "strikes/options", false, reqs[0])
	}
	for _, r := range reqs {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(reqs)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("token", c.token)
	u := c.resourceURL("strikes/options", false) + "?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	return do[Strike](c, "strikes/options", httpReq)
}

// MoniesImplied retrieves monthly implied data for monies.
func (c *Client) MoniesImplied(ctx context.Context, req MoniesRequest) ([]MoneyImplied, error) {
	return fetch[MoneyImplied](ctx, c, "monies/implied", false, req)
}

// MoniesForecast retrieves monthly forecast data for monies.
func (c *Client) MoniesForecast(ctx context.Context, req MoniesRequest) ([]MoneyForecast, error) {
	return fetch[MoneyForecast](ctx, c, "monies/forecast", false, req)
}

// Summaries retrieves SMV summary data.
func (c *Client) Summaries(ctx context.Context, req SummariesRequest) ([]Summary, error) {
	return fetch[Summary](ctx, c, "summaries", false, req)
}

// CoreData retrieves core data.
func (c *Client) CoreData(ctx context.Context, req CoreDataRequest) ([]Core, error) {
	return fetch[Core](ctx, c, "cores", false, req)
}

// DailyPrice retrieves end of day stock price data. The resource only
// exists in a historical variant.
func (c *Client) DailyPrice(ctx context.Context, req DailyPriceRequest) ([]DailyPrice, error) {
	return fetch[DailyPrice](ctx, c, "dailies", true, req)
}

// HistoricalVolatility retrieves historical volatility data. The
// resource only exists in a historical variant.
func (c *Client) HistoricalVolatility(ctx context.Context, req HistoricalVolatilityRequest) ([]HistoricalVolatility, error) {
	return fetch[HistoricalVolatility](ctx, c, "hvs", true, req)
}

// DividendHistory retrieves dividend history data.
func (c *Client) DividendHistory(ctx context.Context, req DividendHistoryRequest) ([]DividendHistory, error) {
	return fetch[DividendHistory](ctx, c, "divs", true, req)
}

// EarningsHistory retrieves earnings history data.
func (c *Client) EarningsHistory(ctx context.Context, req EarningsHistoryRequest) ([]EarningsHistory, error) {
	return fetch[EarningsHistory](ctx, c, "earnings", true, req)
}

// StockSplitHistory retrieves stock split history data.
func (c *Client) StockSplitHistory(ctx context.Context, req StockSplitHistoryRequest) ([]StockSplitHistory, error) {
	return fetch[StockSplitHistory](ctx, c, "splits", true, req)
}

// IvRank retrieves IV rank data.
func (c *Client) IvRank(ctx context.Context, req IvRankRequest) ([]IvRank, error) {
	return fetch[IvRank](ctx, c, "ivrank", false, req)
}
