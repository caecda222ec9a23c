// Package data is a typed client for the ORATS Data API.
//
// Primary features include
//
//   - historical options data
//   - historical volatilities
//   - greeks
//   - bid/ask quotes
//   - 100+ indicators
//
// Every API resource is exposed as a request/response pair: a request
// value validates its parameters before dispatch, and the matching
// client method decodes the JSON payload into typed records. A request
// that carries a trade date is transparently routed to the historical
// variant of the same resource.
//
// See https://docs.orats.io/datav2-api-guide/ for the upstream API
// reference.
package data
