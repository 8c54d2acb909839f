package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"tse_backend/internal/app/di"
	"tse_backend/internal/app/router"
	authadapters "tse_backend/internal/feature/auth/adapters"
	authhandler "tse_backend/internal/feature/auth/transport/handler"
	authusecase "tse_backend/internal/feature/auth/usecase"
	backtesthandler "tse_backend/internal/feature/backtest/transport/handler"
	backtestusecase "tse_backend/internal/feature/backtest/usecase"
	candleadapters "tse_backend/internal/feature/candles/adapters"
	candlehandler "tse_backend/internal/feature/candles/transport/handler"
	candleusecase "tse_backend/internal/feature/candles/usecase"
	indicatorhandler "tse_backend/internal/feature/indicators/transport/handler"
	indicatorusecase "tse_backend/internal/feature/indicators/usecase"
	markethandler "tse_backend/internal/feature/quotes/transport/handler"
	marketusecase "tse_backend/internal/feature/quotes/usecase"
	smartmoneyhandler "tse_backend/internal/feature/smartmoney/transport/handler"
	smartmoneyusecase "tse_backend/internal/feature/smartmoney/usecase"
	symboladapters "tse_backend/internal/feature/symbols/adapters"
	symbolhandler "tse_backend/internal/feature/symbols/transport/handler"
	symbolusecase "tse_backend/internal/feature/symbols/usecase"
	infradb "tse_backend/internal/platform/db"
	jwtmw "tse_backend/internal/platform/jwt"
	infraredis "tse_backend/internal/platform/redis"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
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

	// BrsApi market client
	market, err := di.NewMarket()
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	symbolRepo := symboladapters.NewSymbolRepository(db)
	candleRepo := candleadapters.NewCandleRepository(db)

	// Redis cache wrappers
	quoteRepo, quoteStats := di.NewQuoteRepository(rdb, market)
	cachedCandleRepo := di.NewCandleRepository(rdb, candleRepo)

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, accessTokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen)
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo, market)
	marketUC := marketusecase.NewMarketUsecase(quoteRepo)
	smartMoneyUC := smartmoneyusecase.NewSmartMoneyUsecase(quoteRepo)
	candlesUC := candleusecase.NewCandlesUsecase(cachedCandleRepo)
	indicatorUC := indicatorusecase.NewIndicatorUsecase(cachedCandleRepo)
	backtestUC := backtestusecase.NewBacktestUsecase(cachedCandleRepo)

	// Handler
	var statsProvider markethandler.CacheStatsProvider
	if quoteStats != nil {
		statsProvider = quoteStats
	}
	handlers := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Symbols:    symbolhandler.NewSymbolHandler(symbolUC),
		Market:     markethandler.NewMarketHandler(marketUC, statsProvider),
		Candles:    candlehandler.NewCandlesHandler(candlesUC),
		Indicators: indicatorhandler.NewIndicatorHandler(indicatorUC),
		SmartMoney: smartmoneyhandler.NewSmartMoneyHandler(smartMoneyUC),
		Backtest:   backtesthandler.NewBacktestHandler(backtestUC),
	}

	r := router.NewRouter(handlers)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
