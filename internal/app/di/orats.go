// Package di provides dependency injection factories for creating application components.
package di

import (
	"orats_data/internal/platform/externalapi/orats"
	infrahttp "orats_data/internal/platform/http"
)

// NewMarketData creates a fully configured ORATS repository with HTTP client.
func NewMarketData() *orats.Repository {
	cfg := orats.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return orats.NewRepository(cfg, httpClient)
}
