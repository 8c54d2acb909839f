package usecase

import (
	"context"
	"math"

	"tse_backend/internal/feature/quotes/domain/entity"
	"tse_backend/internal/shared/persian"
)

// DefaultIndex is the index returned when no name is given.
const DefaultIndex = "TEDPIX"

// maxSymbolLen bounds symbol codes; TSE tickers never exceed this.
const maxSymbolLen = 20

// QuoteRepository abstracts the market-watch data source (external API,
// possibly wrapped in a cache). Following Go convention: interfaces are
// defined by the consumer (usecase), not the provider (platform/brsapi).
type QuoteRepository interface {
	// MarketWatch returns the full live snapshot of the market.
	MarketWatch(ctx context.Context) ([]entity.Quote, error)

	// SymbolInfo returns the live quote for one symbol.
	// Returns ErrSymbolNotFound when the provider has no such symbol.
	SymbolInfo(ctx context.Context, symbol string) (*entity.Quote, error)

	// Index returns a market index snapshot (e.g. TEDPIX).
	Index(ctx context.Context, name string) (*entity.IndexQuote, error)
}

// QuoteFilter selects quotes from a market-watch snapshot.
// Zero values disable the corresponding condition.
type QuoteFilter struct {
	MinVolume      int64
	MinPrice       float64
	PositiveChange bool
}

// Match reports whether a quote passes every enabled condition.
func (f QuoteFilter) Match(q entity.Quote) bool {
	if f.MinVolume > 0 && q.Volume < f.MinVolume {
		return false
	}
	if f.MinPrice > 0 && q.Last < f.MinPrice {
		return false
	}
	if f.PositiveChange && q.ChangePercent <= 0 {
		return false
	}
	return true
}

// MarketUsecase provides business logic for market-watch operations.
type MarketUsecase struct {
	quotes QuoteRepository
}

// NewMarketUsecase creates a new MarketUsecase with the given repository.
func NewMarketUsecase(quotes QuoteRepository) *MarketUsecase {
	return &MarketUsecase{quotes: quotes}
}

// GetMarketWatch returns the full market-watch snapshot.
func (u *MarketUsecase) GetMarketWatch(ctx context.Context) ([]entity.Quote, error) {
	return u.quotes.MarketWatch(ctx)
}

// GetSymbolInfo returns the live quote for one symbol. The symbol is
// normalized first so Arabic-keyboard variants of Persian tickers resolve.
func (u *MarketUsecase) GetSymbolInfo(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = persian.NormalizeSymbol(symbol)
	if symbol == "" || len([]rune(symbol)) > maxSymbolLen {
		return nil, ErrInvalidSymbol
	}
	return u.quotes.SymbolInfo(ctx, symbol)
}

// FilterMarketWatch returns the quotes of the current snapshot that pass
// the given filter.
func (u *MarketUsecase) FilterMarketWatch(ctx context.Context, f QuoteFilter) ([]entity.Quote, error) {
	all, err := u.quotes.MarketWatch(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Quote, 0, len(all))
	for _, q := range all {
		if f.Match(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// GetMarketSummary aggregates the current snapshot into headline figures.
func (u *MarketUsecase) GetMarketSummary(ctx context.Context) (*entity.MarketSummary, error) {
	all, err := u.quotes.MarketWatch(ctx)
	if err != nil {
		return nil, err
	}

	s := &entity.MarketSummary{TotalSymbols: len(all)}
	for _, q := range all {
		switch {
		case q.ChangePercent > 0:
			s.PositiveSymbols++
		case q.ChangePercent < 0:
			s.NegativeSymbols++
		default:
			s.NeutralSymbols++
		}
		s.TotalVolume += q.Volume
		s.TotalValue += q.Value
	}
	if s.TotalSymbols > 0 {
		ratio := float64(s.PositiveSymbols) / float64(s.TotalSymbols) * 100
		s.PositiveRatio = math.Round(ratio*100) / 100
	}
	return s, nil
}

// GetIndex returns a market index snapshot, defaulting to TEDPIX.
func (u *MarketUsecase) GetIndex(ctx context.Context, name string) (*entity.IndexQuote, error) {
	if name == "" {
		name = DefaultIndex
	}
	return u.quotes.Index(ctx, name)
}
