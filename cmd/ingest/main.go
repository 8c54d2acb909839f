package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"tse_backend/internal/app/di"
	candleadapters "tse_backend/internal/feature/candles/adapters"
	candleusecase "tse_backend/internal/feature/candles/usecase"
	symboladapters "tse_backend/internal/feature/symbols/adapters"
	symbolusecase "tse_backend/internal/feature/symbols/usecase"
	infradb "tse_backend/internal/platform/db"
	"tse_backend/internal/shared/ratelimiter"
)

// the free BrsApi tier allows roughly one request per second
const (
	requestsPerInterval = 1
	requestInterval     = time.Second
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := infradb.OpenDB()
	market, err := di.NewMarket()
	if err != nil {
		log.Fatal(err)
	}
	candleRepo := candleadapters.NewCandleRepository(db)
	symbolRepo := symboladapters.NewSymbolRepository(db)

	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo, market)
	limiter := ratelimiter.NewRateLimiter(requestsPerInterval, requestInterval)
	ingestUC := candleusecase.NewIngestUsecase(market, candleRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	synced, err := symbolUC.SyncSymbols(ctx)
	if err != nil {
		log.Fatal("failed to sync symbols:", err)
	}
	log.Println("symbols synced:", synced)

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load symbols:", err)
	}

	if err := ingestUC.IngestAll(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
