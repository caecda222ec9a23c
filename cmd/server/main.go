package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"orats_data/internal/app/di"
	"orats_data/internal/app/router"
	authadapters "orats_data/internal/feature/auth/adapters"
	authhandler "orats_data/internal/feature/auth/transport/handler"
	authusecase "orats_data/internal/feature/auth/usecase"
	dailiesadapters "orats_data/internal/feature/dailies/adapters"
	dailieshandler "orats_data/internal/feature/dailies/transport/handler"
	dailiesusecase "orats_data/internal/feature/dailies/usecase"
	ivrankadapters "orats_data/internal/feature/ivrank/adapters"
	ivrankhandler "orats_data/internal/feature/ivrank/transport/handler"
	ivrankusecase "orats_data/internal/feature/ivrank/usecase"
	watchlistadapters "orats_data/internal/feature/watchlist/adapters"
	watchlisthandler "orats_data/internal/feature/watchlist/transport/handler"
	watchlistusecase "orats_data/internal/feature/watchlist/usecase"
	"orats_data/internal/platform/cache"
	infradb "orats_data/internal/platform/db"
	jwtmw "orats_data/internal/platform/jwt"
	infraredis "orats_data/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	symbolRepo := watchlistadapters.NewSymbolRepository(db)
	barRepo := dailiesadapters.NewDailyBarRepository(db)
	ivRankRepo := ivrankadapters.NewIvRankRepository(db)

	// End-of-day bars are stable until the next refresh, cache accordingly
	ttl := cache.TimeUntilNextRefresh()
	cachedBarRepo := cache.NewCachingDailyBarRepository(rdb, ttl, barRepo, "dailies")

	// JWT
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), time.Hour)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	dailiesUC := dailiesusecase.NewDailiesUsecase(cachedBarRepo)
	ivRankUC := ivrankusecase.NewIvRankUsecase(ivRankRepo)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(symbolRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	dailiesH := dailieshandler.NewDailiesHandler(dailiesUC)
	ivRankH := ivrankhandler.NewIvRankHandler(ivRankUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	r := router.NewRouter(authH, dailiesH, ivRankH, watchlistH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
