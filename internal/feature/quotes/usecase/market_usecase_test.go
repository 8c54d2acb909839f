package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tse_backend/internal/feature/quotes/domain/entity"
)

// mockQuoteRepository is a mock implementation of the QuoteRepository interface.
type mockQuoteRepository struct {
	MarketWatchFunc func(ctx context.Context) ([]entity.Quote, error)
	SymbolInfoFunc  func(ctx context.Context, symbol string) (*entity.Quote, error)
	IndexFunc       func(ctx context.Context, name string) (*entity.IndexQuote, error)
}

func (m *mockQuoteRepository) MarketWatch(ctx context.Context) ([]entity.Quote, error) {
	if m.MarketWatchFunc != nil {
		return m.MarketWatchFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuoteRepository) SymbolInfo(ctx context.Context, symbol string) (*entity.Quote, error) {
	if m.SymbolInfoFunc != nil {
		return m.SymbolInfoFunc(ctx, symbol)
	}
	return nil, ErrSymbolNotFound
}

func (m *mockQuoteRepository) Index(ctx context.Context, name string) (*entity.IndexQuote, error) {
	if m.IndexFunc != nil {
		return m.IndexFunc(ctx, name)
	}
	return nil, nil
}

func watchSnapshot() []entity.Quote {
	return []entity.Quote{
		{Symbol: "فولاد", Last: 5230, ChangePercent: 2.5, Volume: 15_000_000, Value: 78_450_000_000},
		{Symbol: "خودرو", Last: 2810, ChangePercent: -1.2, Volume: 45_000_000, Value: 126_450_000_000},
		{Symbol: "شستا", Last: 1150, ChangePercent: 0, Volume: 8_000_000, Value: 9_200_000_000},
	}
}

func TestQuoteFilter_Match(t *testing.T) {
	t.Parallel()

	quote := entity.Quote{Symbol: "فولاد", Last: 5230, ChangePercent: 2.5, Volume: 15_000_000}

	tests := []struct {
		name   string
		filter QuoteFilter
		want   bool
	}{
		{name: "zero filter matches everything", filter: QuoteFilter{}, want: true},
		{name: "min volume below quote volume", filter: QuoteFilter{MinVolume: 10_000_000}, want: true},
		{name: "min volume above quote volume", filter: QuoteFilter{MinVolume: 20_000_000}, want: false},
		{name: "min price below last", filter: QuoteFilter{MinPrice: 5000}, want: true},
		{name: "min price above last", filter: QuoteFilter{MinPrice: 6000}, want: false},
		{name: "positive change required and present", filter: QuoteFilter{PositiveChange: true}, want: true},
		{name: "all conditions combined", filter: QuoteFilter{MinVolume: 10_000_000, MinPrice: 5000, PositiveChange: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filter.Match(quote))
		})
	}

	t.Run("positive change required but flat", func(t *testing.T) {
		t.Parallel()
		flat := entity.Quote{Symbol: "شستا", ChangePercent: 0}
		assert.False(t, QuoteFilter{PositiveChange: true}.Match(flat))
	})
}

func TestMarketUsecase_GetSymbolInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		symbol         string
		expectedSymbol string
		wantErr        error
	}{
		{name: "success: plain symbol", symbol: "فولاد", expectedSymbol: "فولاد"},
		{name: "success: Arabic yeh normalized", symbol: "فملي", expectedSymbol: "فملی"},
		{name: "success: surrounding spaces trimmed", symbol: " وبملت ", expectedSymbol: "وبملت"},
		{name: "failure: empty symbol", symbol: "", wantErr: ErrInvalidSymbol},
		{name: "failure: oversized symbol", symbol: "نمادیکهخیلیخیلیطولانیاست", wantErr: ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotSymbol string
			repo := &mockQuoteRepository{
				SymbolInfoFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
					gotSymbol = symbol
					return &entity.Quote{Symbol: symbol}, nil
				},
			}
			uc := NewMarketUsecase(repo)

			quote, err := uc.GetSymbolInfo(context.Background(), tt.symbol)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, quote)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSymbol, gotSymbol)
		})
	}
}

func TestMarketUsecase_FilterMarketWatch(t *testing.T) {
	t.Parallel()

	repo := &mockQuoteRepository{
		MarketWatchFunc: func(ctx context.Context) ([]entity.Quote, error) {
			return watchSnapshot(), nil
		},
	}
	uc := NewMarketUsecase(repo)

	t.Run("zero filter returns everything", func(t *testing.T) {
		t.Parallel()

		quotes, err := uc.FilterMarketWatch(context.Background(), QuoteFilter{})
		require.NoError(t, err)
		assert.Len(t, quotes, 3)
	})

	t.Run("filter narrows the snapshot", func(t *testing.T) {
		t.Parallel()

		quotes, err := uc.FilterMarketWatch(context.Background(), QuoteFilter{PositiveChange: true})
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "فولاد", quotes[0].Symbol)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		t.Parallel()

		failing := &mockQuoteRepository{
			MarketWatchFunc: func(ctx context.Context) ([]entity.Quote, error) {
				return nil, errors.New("upstream timeout")
			},
		}
		quotes, err := NewMarketUsecase(failing).FilterMarketWatch(context.Background(), QuoteFilter{})
		assert.Error(t, err)
		assert.Nil(t, quotes)
	})
}

func TestMarketUsecase_GetMarketSummary(t *testing.T) {
	t.Parallel()

	t.Run("aggregates snapshot figures", func(t *testing.T) {
		t.Parallel()

		repo := &mockQuoteRepository{
			MarketWatchFunc: func(ctx context.Context) ([]entity.Quote, error) {
				return watchSnapshot(), nil
			},
		}
		uc := NewMarketUsecase(repo)

		summary, err := uc.GetMarketSummary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalSymbols)
		assert.Equal(t, 1, summary.PositiveSymbols)
		assert.Equal(t, 1, summary.NegativeSymbols)
		assert.Equal(t, 1, summary.NeutralSymbols)
		assert.Equal(t, int64(68_000_000), summary.TotalVolume)
		assert.InDelta(t, 214_100_000_000, summary.TotalValue, 1)
		assert.Equal(t, 33.33, summary.PositiveRatio)
	})

	t.Run("empty market yields zero ratio", func(t *testing.T) {
		t.Parallel()

		repo := &mockQuoteRepository{
			MarketWatchFunc: func(ctx context.Context) ([]entity.Quote, error) {
				return nil, nil
			},
		}
		summary, err := NewMarketUsecase(repo).GetMarketSummary(context.Background())

		require.NoError(t, err)
		assert.Zero(t, summary.TotalSymbols)
		assert.Zero(t, summary.PositiveRatio)
	})
}

func TestMarketUsecase_GetIndex(t *testing.T) {
	t.Parallel()

	var gotName string
	repo := &mockQuoteRepository{
		IndexFunc: func(ctx context.Context, name string) (*entity.IndexQuote, error) {
			gotName = name
			return &entity.IndexQuote{Name: name}, nil
		},
	}
	uc := NewMarketUsecase(repo)

	_, err := uc.GetIndex(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultIndex, gotName, "empty name should default to TEDPIX")

	_, err = uc.GetIndex(context.Background(), "IRX6XTPI0026")
	require.NoError(t, err)
	assert.Equal(t, "IRX6XTPI0026", gotName)
}
