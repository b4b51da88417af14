package interfaces

import (
	"context"

	"github.com/google/uuid"

	types "calckit/internal/domain/types"
)

// Registry resolves calculators by slug.
type Registry interface {
	Lookup(slug types.Slug) (types.Calculator, bool)
	All() []types.Calculator
}

// HistoryStore persists saved computations.
type HistoryStore interface {
	// SaveEntry inserts e, or refreshes the existing entry with the same
	// fingerprint, and returns the stored entry.
	SaveEntry(ctx context.Context, e types.HistoryEntry) (types.HistoryEntry, error)
	ListEntries(ctx context.Context, f types.HistoryFilter) ([]types.HistoryEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (types.HistoryEntry, bool, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	ClearEntries(ctx context.Context) error
}
