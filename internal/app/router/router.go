// Package router assembles the HTTP routes for the API server.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "orats_data/internal/feature/auth/transport/handler"
	dailieshandler "orats_data/internal/feature/dailies/transport/handler"
	ivrankhandler "orats_data/internal/feature/ivrank/transport/handler"
	watchlisthandler "orats_data/internal/feature/watchlist/transport/handler"
	"orats_data/internal/platform/http/handler"
	jwtmw "orats_data/internal/platform/jwt"
)

// NewRouter wires the handlers into a Gin engine.
func NewRouter(authHandler *authhandler.AuthHandler, dailies *dailieshandler.DailiesHandler,
	ivrank *ivrankhandler.IvRankHandler, watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.Refresh)
	r.POST("/logout", authHandler.Logout)

	// Authenticated routes: requests need a bearer JWT
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/dailies/:ticker", dailies.GetDailyBarsHandler)
		auth.GET("/ivrank/:ticker", ivrank.GetIvRanksHandler)
		auth.GET("/watchlist", watchlist.List)
	}

	return r
}
