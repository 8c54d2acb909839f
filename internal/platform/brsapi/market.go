package brsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	candleentity "tse_backend/internal/feature/candles/domain/entity"
	candleusecase "tse_backend/internal/feature/candles/usecase"
	quoteentity "tse_backend/internal/feature/quotes/domain/entity"
	quoteusecase "tse_backend/internal/feature/quotes/usecase"
	symbolentity "tse_backend/internal/feature/symbols/domain/entity"
	symbolusecase "tse_backend/internal/feature/symbols/usecase"
	"tse_backend/internal/platform/brsapi/dto"
	"tse_backend/internal/shared/persian"
)

// Compile-time checks: BrsAPIMarket serves every market-facing usecase.
var (
	_ symbolusecase.SymbolProvider   = (*BrsAPIMarket)(nil)
	_ quoteusecase.QuoteRepository   = (*BrsAPIMarket)(nil)
	_ candleusecase.MarketRepository = (*BrsAPIMarket)(nil)
)

// AllSymbols returns the full symbol directory from the AllSymbols endpoint.
func (b *BrsAPIMarket) AllSymbols(ctx context.Context) ([]symbolentity.Symbol, error) {
	var rows []dto.SymbolRow
	if err := b.getJSON(ctx, "AllSymbols.php", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]symbolentity.Symbol, 0, len(rows))
	for _, r := range rows {
		out = append(out, symbolentity.Symbol{
			Code:     persian.NormalizeSymbol(r.Symbol),
			Name:     r.Name,
			Market:   r.Market,
			Industry: r.Industry,
		})
	}
	return out, nil
}

// SearchSymbols queries the Search endpoint.
func (b *BrsAPIMarket) SearchSymbols(ctx context.Context, query string) ([]symbolentity.Symbol, error) {
	params := url.Values{}
	params.Set("q", query)
	var rows []dto.SymbolRow
	if err := b.getJSON(ctx, "Search.php", params, &rows); err != nil {
		return nil, err
	}
	out := make([]symbolentity.Symbol, 0, len(rows))
	for _, r := range rows {
		out = append(out, symbolentity.Symbol{
			Code:     persian.NormalizeSymbol(r.Symbol),
			Name:     r.Name,
			Market:   r.Market,
			Industry: r.Industry,
		})
	}
	return out, nil
}

// MarketWatch returns the live snapshot of all symbols.
func (b *BrsAPIMarket) MarketWatch(ctx context.Context) ([]quoteentity.Quote, error) {
	var rows []dto.SymbolRow
	if err := b.getJSON(ctx, "MarketWatch.php", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]quoteentity.Quote, 0, len(rows))
	for _, r := range rows {
		q, err := quoteFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("market watch row %q: %w", r.Symbol, err)
		}
		out = append(out, q)
	}
	return out, nil
}

// SymbolInfo returns the live quote of one symbol from the SymbolInfo
// endpoint. The provider answers unknown symbols with a not_found envelope
// and HTTP 200, so the body is inspected rather than the status code.
func (b *BrsAPIMarket) SymbolInfo(ctx context.Context, symbol string) (*quoteentity.Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var body struct {
		dto.ErrorResponse
		dto.SymbolRow
	}
	if err := b.getJSON(ctx, "SymbolInfo.php", params, &body); err != nil {
		return nil, err
	}
	if body.Status == "not_found" || body.SymbolRow.Symbol == "" {
		return nil, quoteusecase.ErrSymbolNotFound
	}

	q, err := quoteFromRow(body.SymbolRow)
	if err != nil {
		return nil, fmt.Errorf("symbol info %q: %w", symbol, err)
	}
	return &q, nil
}

// Index returns a market index snapshot from the Index endpoint.
func (b *BrsAPIMarket) Index(ctx context.Context, name string) (*quoteentity.IndexQuote, error) {
	params := url.Values{}
	params.Set("index", name)

	var body dto.IndexResponse
	if err := b.getJSON(ctx, "Index.php", params, &body); err != nil {
		return nil, err
	}

	value, err := persian.ParseNumber(body.Value)
	if err != nil {
		return nil, fmt.Errorf("parse index value %q: %w", body.Value, err)
	}
	change, err := persian.ParseNumber(body.Change)
	if err != nil {
		return nil, fmt.Errorf("parse index change %q: %w", body.Change, err)
	}
	changePct, err := persian.ParseNumber(body.ChangePercent)
	if err != nil {
		return nil, fmt.Errorf("parse index change_percent %q: %w", body.ChangePercent, err)
	}

	return &quoteentity.IndexQuote{
		Name:          body.Name,
		Value:         value,
		Change:        change,
		ChangePercent: changePct,
		Time:          parseTimestamp(body.Time),
	}, nil
}

// GetHistory returns daily candles for a symbol covering the last `days` days.
func (b *BrsAPIMarket) GetHistory(ctx context.Context, symbol string, days int) ([]candleentity.Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("days", strconv.Itoa(days))

	var rows []dto.HistoryRow
	if err := b.getJSON(ctx, "History.php", params, &rows); err != nil {
		return nil, err
	}

	candles := make([]candleentity.Candle, 0, len(rows))
	for _, r := range rows {
		tm, err := time.Parse("2006-01-02", persian.NormalizeDigits(r.Date))
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", r.Date, err)
		}
		o, err := persian.ParseNumber(r.Open)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", r.Open, err)
		}
		h, err := persian.ParseNumber(r.High)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", r.High, err)
		}
		l, err := persian.ParseNumber(r.Low)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", r.Low, err)
		}
		c, err := persian.ParseNumber(r.Close)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", r.Close, err)
		}
		vol, err := persian.ParseNumber(r.Volume)
		if err != nil {
			return nil, fmt.Errorf("parse volume %q: %w", r.Volume, err)
		}

		candles = append(candles, candleentity.Candle{
			Time:   tm,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(vol),
		})
	}
	return candles, nil
}

// quoteFromRow converts a wire row into a domain quote, normalizing Persian
// digits in every numeric field.
func quoteFromRow(r dto.SymbolRow) (quoteentity.Quote, error) {
	var q quoteentity.Quote
	var err error

	q.Symbol = persian.NormalizeSymbol(r.Symbol)
	q.Name = r.Name

	if q.Last, err = persian.ParseNumber(r.LastPrice); err != nil {
		return q, fmt.Errorf("parse last_price %q: %w", r.LastPrice, err)
	}
	if q.Close, err = persian.ParseNumber(r.ClosePrice); err != nil {
		return q, fmt.Errorf("parse close_price %q: %w", r.ClosePrice, err)
	}
	if q.PrevClose, err = persian.ParseNumber(r.PreviousClose); err != nil {
		return q, fmt.Errorf("parse previous_close %q: %w", r.PreviousClose, err)
	}
	if q.ChangePercent, err = persian.ParseNumber(r.ChangePercent); err != nil {
		return q, fmt.Errorf("parse change_percent %q: %w", r.ChangePercent, err)
	}

	vol, err := persian.ParseNumber(r.Volume)
	if err != nil {
		return q, fmt.Errorf("parse volume %q: %w", r.Volume, err)
	}
	q.Volume = int64(vol)

	if q.Value, err = persian.ParseNumber(r.Value); err != nil {
		return q, fmt.Errorf("parse value %q: %w", r.Value, err)
	}
	trades, err := persian.ParseNumber(r.Trades)
	if err != nil {
		return q, fmt.Errorf("parse trades %q: %w", r.Trades, err)
	}
	q.Trades = int64(trades)

	if q.AvgVolume5D, err = persian.ParseNumber(r.AvgVolume5D); err != nil {
		return q, fmt.Errorf("parse avg_volume_5d %q: %w", r.AvgVolume5D, err)
	}

	if q.IndividualBuyVolume, err = persian.ParseNumber(r.IndividualBuyVolume); err != nil {
		return q, fmt.Errorf("parse individual_buy_volume %q: %w", r.IndividualBuyVolume, err)
	}
	buyCount, err := persian.ParseNumber(r.IndividualBuyCount)
	if err != nil {
		return q, fmt.Errorf("parse individual_buy_count %q: %w", r.IndividualBuyCount, err)
	}
	q.IndividualBuyCount = int64(buyCount)

	if q.IndividualSellVolume, err = persian.ParseNumber(r.IndividualSellVolume); err != nil {
		return q, fmt.Errorf("parse individual_sell_volume %q: %w", r.IndividualSellVolume, err)
	}
	sellCount, err := persian.ParseNumber(r.IndividualSellCount)
	if err != nil {
		return q, fmt.Errorf("parse individual_sell_count %q: %w", r.IndividualSellCount, err)
	}
	q.IndividualSellCount = int64(sellCount)

	q.Time = parseTimestamp(r.Time)
	return q, nil
}

// parseTimestamp parses provider timestamps; an empty or unparseable value
// yields the zero time rather than an error.
func parseTimestamp(s string) time.Time {
	s = persian.NormalizeDigits(s)
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if tm, err := time.Parse(layout, s); err == nil {
			return tm
		}
	}
	return time.Time{}
}
