// Package handler provides the HTTP handlers for the ivrank feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orats_data/internal/feature/ivrank/domain/entity"
	"orats_data/internal/feature/ivrank/transport/http/dto"
)

// IvRankUsecase defines the usecase interface for IV rank queries.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type IvRankUsecase interface {
	GetIvRanks(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error)
}

// IvRankHandler handles HTTP requests for IV rank snapshots.
type IvRankHandler struct {
	uc IvRankUsecase
}

// NewIvRankHandler creates a new IvRankHandler with the given usecase.
func NewIvRankHandler(uc IvRankUsecase) *IvRankHandler {
	return &IvRankHandler{uc: uc}
}

// GetIvRanksHandler returns IV rank snapshots for one ticker as JSON.
//
// Example:
// GET /ivrank/:ticker?outputsize=30
func (h *IvRankHandler) GetIvRanksHandler(c *gin.Context) {
	ticker := c.Param("ticker")
	outputsize, _ := strconv.Atoi(c.DefaultQuery("outputsize", "30"))

	snaps, err := h.uc.GetIvRanks(c.Request.Context(), ticker, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.IvRankResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, dto.IvRankResponse{
			TradeDate: s.TradeDate.UTC().Format("2006-01-02"),
			Iv:        s.Iv,
			IvRank1m:  s.IvRank1m,
			IvPct1m:   s.IvPct1m,
			IvRank1y:  s.IvRank1y,
			IvPct1y:   s.IvPct1y,
		})
	}

	c.JSON(http.StatusOK, out)
}
