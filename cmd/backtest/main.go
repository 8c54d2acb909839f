package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	backtestcharts "tse_backend/internal/feature/backtest/charts"
	backtestusecase "tse_backend/internal/feature/backtest/usecase"
	candleadapters "tse_backend/internal/feature/candles/adapters"
	infradb "tse_backend/internal/platform/db"
)

func main() {
	symbol := flag.String("symbol", "", "ticker code, e.g. فولاد")
	interval := flag.String("interval", "1day", "candle interval")
	strategy := flag.String("strategy", "sma_cross", "sma_cross or bollinger_reversion")
	fast := flag.Int("fast", 0, "fast SMA window (sma_cross)")
	slow := flag.Int("slow", 0, "slow SMA window (sma_cross)")
	period := flag.Int("period", 0, "band period (bollinger_reversion)")
	capital := flag.Float64("capital", 0, "initial capital in rial")
	commission := flag.Float64("commission", 0, "commission rate per fill")
	out := flag.String("out", "backtest.html", "chart output path, empty to skip")
	flag.Parse()

	if *symbol == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := infradb.OpenDB()
	candleRepo := candleadapters.NewCandleRepository(db)
	uc := backtestusecase.NewBacktestUsecase(candleRepo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := uc.Run(ctx, backtestusecase.Request{
		Symbol:         *symbol,
		Interval:       *interval,
		Strategy:       *strategy,
		Fast:           *fast,
		Slow:           *slow,
		Period:         *period,
		InitialCapital: *capital,
		CommissionRate: *commission,
	})
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		return
	}

	// the chart needs the same series the engine replayed, oldest first
	candles, err := candleRepo.Find(ctx, *symbol, *interval, backtestusecase.FetchSize)
	if err != nil {
		log.Fatal(err)
	}
	for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
		candles[i], candles[j] = candles[j], candles[i]
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := backtestcharts.RenderReport(f, candles, report); err != nil {
		log.Fatal(err)
	}
	log.Println("chart written to", *out)
}
