// Package handler provides the HTTP handlers for the dailies feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orats_data/internal/feature/dailies/domain/entity"
	"orats_data/internal/feature/dailies/transport/http/dto"
)

// DailiesUsecase defines the usecase interface for daily bar queries.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type DailiesUsecase interface {
	GetDailyBars(ctx context.Context, ticker string, outputsize int) ([]entity.DailyBar, error)
}

// DailiesHandler handles HTTP requests for end-of-day bars.
type DailiesHandler struct {
	uc DailiesUsecase
}

// NewDailiesHandler creates a new DailiesHandler with the given usecase.
func NewDailiesHandler(uc DailiesUsecase) *DailiesHandler {
	return &DailiesHandler{uc: uc}
}

// GetDailyBarsHandler returns end-of-day bars for one ticker as JSON.
//
// Example:
// GET /dailies/:ticker?outputsize=200
func (h *DailiesHandler) GetDailyBarsHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	outputsize, _ := strconv.Atoi(c.DefaultQuery("outputsize", "200"))

	bars, err := h.uc.GetDailyBars(c.Request.Context(), ticker, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.DailyBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.DailyBarResponse{
			TradeDate: b.TradeDate.UTC().Format("2006-01-02"),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}
