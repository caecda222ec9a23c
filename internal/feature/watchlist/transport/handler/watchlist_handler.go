// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"orats_data/internal/feature/watchlist/domain/entity"
	"orats_data/internal/feature/watchlist/transport/http/dto"
)

// WatchlistUsecase defines the usecase interface for watchlist queries.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type WatchlistUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List returns the active watchlist entries as JSON.
func (h *WatchlistHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.WatchlistItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.WatchlistItem{Ticker: s.Ticker, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}
