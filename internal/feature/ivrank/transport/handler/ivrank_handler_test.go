package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"orats_data/internal/feature/ivrank/domain/entity"
	"orats_data/internal/feature/ivrank/transport/handler"
)

// mockIvRankUsecase is a mock implementation of the IvRankUsecase interface.
type mockIvRankUsecase struct {
	GetIvRanksFunc func(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error)
}

func (m *mockIvRankUsecase) GetIvRanks(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error) {
	return m.GetIvRanksFunc(ctx, ticker, outputsize)
}

func TestIvRankHandler_GetIvRanksHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDate := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGetIvRanks func(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: all parameters specified",
			url:  "/ivrank/AAPL?outputsize=5",
			mockGetIvRanks: func(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error) {
				assert.Equal(t, "AAPL", ticker)
				assert.Equal(t, 5, outputsize)
				return []entity.IvRankSnapshot{
					{Ticker: "AAPL", TradeDate: testDate, Iv: 0.28, IvRank1m: 40.5, IvPct1m: 60, IvRank1y: 52.1, IvPct1y: 73},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"tradeDate":"2023-01-03","iv":0.28,"ivRank1m":40.5,"ivPct1m":60,"ivRank1y":52.1,"ivPct1y":73}]`,
		},
		{
			name: "success: default parameter values",
			url:  "/ivrank/AAPL",
			mockGetIvRanks: func(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error) {
				assert.Equal(t, "AAPL", ticker)
				assert.Equal(t, 30, outputsize) // default
				return []entity.IvRankSnapshot{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: usecase returns error",
			url:  "/ivrank/NOPE",
			mockGetIvRanks: func(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error) {
				return nil, errors.New("upstream unavailable")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"upstream unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockIvRankUsecase{
				GetIvRanksFunc: tt.mockGetIvRanks,
			}

			h := handler.NewIvRankHandler(mockUC)

			router := gin.New()
			router.GET("/ivrank/:ticker", h.GetIvRanksHandler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
