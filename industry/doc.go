// Package industry builds trader-level abstractions on top of the raw
// Data API resources: underlying assets, options chains grouped by
// expiration, volatility surfaces and realized volatility histories.
//
// Everything here composes the typed client from the data package; no
// construct talks to the wire itself.
package industry
