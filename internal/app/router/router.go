// Package router wires HTTP routes to their handlers.
package router

import (
	authhandler "tse_backend/internal/feature/auth/transport/handler"
	backtesthandler "tse_backend/internal/feature/backtest/transport/handler"
	candlehandler "tse_backend/internal/feature/candles/transport/handler"
	indicatorhandler "tse_backend/internal/feature/indicators/transport/handler"
	markethandler "tse_backend/internal/feature/quotes/transport/handler"
	smartmoneyhandler "tse_backend/internal/feature/smartmoney/transport/handler"
	symbolhandler "tse_backend/internal/feature/symbols/transport/handler"
	"tse_backend/internal/platform/http/handler"
	jwtmw "tse_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Symbols    *symbolhandler.SymbolHandler
	Market     *markethandler.MarketHandler
	Candles    *candlehandler.CandlesHandler
	Indicators *indicatorhandler.IndicatorHandler
	SmartMoney *smartmoneyhandler.SmartMoneyHandler
	Backtest   *backtesthandler.BacktestHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// no authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.POST("/refresh", h.Auth.Refresh)
	r.POST("/logout", h.Auth.Logout)

	// everything below requires a JWT in the Authorization header
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/symbols", h.Symbols.List)
		auth.GET("/symbols/search", h.Symbols.Search)
		auth.GET("/symbols/:code", h.Market.SymbolInfo)

		auth.GET("/market/watch", h.Market.Watch)
		auth.GET("/market/summary", h.Market.Summary)
		auth.GET("/market/index", h.Market.Index)
		auth.GET("/market/smart-money", h.SmartMoney.Scan)
		auth.GET("/market/smart-money/telegram", h.SmartMoney.Telegram)

		auth.GET("/candles/:code", h.Candles.GetCandlesHandler)
		auth.GET("/indicators/:code", h.Indicators.GetIndicator)
		auth.POST("/backtest", h.Backtest.Run)

		auth.GET("/cache/stats", h.Market.CacheStats)
	}

	return r
}
