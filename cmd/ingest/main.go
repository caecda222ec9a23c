package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"orats_data/internal/app/di"
	dailiesadapters "orats_data/internal/feature/dailies/adapters"
	dailiesusecase "orats_data/internal/feature/dailies/usecase"
	ivrankadapters "orats_data/internal/feature/ivrank/adapters"
	ivrankusecase "orats_data/internal/feature/ivrank/usecase"
	watchlistadapters "orats_data/internal/feature/watchlist/adapters"
	infradb "orats_data/internal/platform/db"
	"orats_data/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()
	marketRepo := di.NewMarketData()
	barRepo := dailiesadapters.NewDailyBarRepository(db)
	ivRankRepo := ivrankadapters.NewIvRankRepository(db)
	symbolRepo := watchlistadapters.NewSymbolRepository(db)

	// One history call per ticker, so keep under the upstream per-minute quota
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)
	dailiesUC := dailiesusecase.NewIngestUsecase(marketRepo, barRepo, limiter)
	ivRankUC := ivrankusecase.NewIngestUsecase(marketRepo, ivRankRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	tickers, err := symbolRepo.ListActiveTickers(ctx)
	if err != nil {
		log.Fatal("failed to load watchlist:", err)
	}

	if err := dailiesUC.IngestAll(ctx, tickers); err != nil {
		log.Fatal(err)
	}
	if err := ivRankUC.IngestAll(ctx, tickers); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
