package usecase

import (
	"context"

	"tse_backend/internal/feature/symbols/domain/entity"
	"tse_backend/internal/shared/persian"
)

// SymbolRepository abstracts the persistence layer for the symbol directory.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	UpsertBatch(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolProvider abstracts the external source of the symbol directory.
type SymbolProvider interface {
	AllSymbols(ctx context.Context) ([]entity.Symbol, error)
	SearchSymbols(ctx context.Context, query string) ([]entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol directory operations.
type SymbolUsecase struct {
	repo     SymbolRepository
	provider SymbolProvider
}

// NewSymbolUsecase creates a new SymbolUsecase.
func NewSymbolUsecase(repo SymbolRepository, provider SymbolProvider) *SymbolUsecase {
	return &SymbolUsecase{repo: repo, provider: provider}
}

// ListActiveSymbols returns all active symbols from the local directory.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// SearchSymbols queries the provider for symbols matching the given text.
func (u *SymbolUsecase) SearchSymbols(ctx context.Context, query string) ([]entity.Symbol, error) {
	query = persian.NormalizeSymbol(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return u.provider.SearchSymbols(ctx, query)
}

// SyncSymbols refreshes the local directory from the provider's AllSymbols
// listing and returns the number of symbols written.
func (u *SymbolUsecase) SyncSymbols(ctx context.Context) (int, error) {
	symbols, err := u.provider.AllSymbols(ctx)
	if err != nil {
		return 0, err
	}
	for i := range symbols {
		symbols[i].Code = persian.NormalizeSymbol(symbols[i].Code)
		symbols[i].IsActive = true
		symbols[i].SortKey = i
	}
	if err := u.repo.UpsertBatch(ctx, symbols); err != nil {
		return 0, err
	}
	return len(symbols), nil
}
