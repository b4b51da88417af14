package interfaces

import (
	"context"

	types "calckit/internal/domain/types"
)

// CalculatorService lists calculators and runs them. It is implemented both
// by the local service and by the calcweb HTTP client.
type CalculatorService interface {
	List(ctx context.Context, category types.Category) ([]types.Calculator, error)
	Describe(ctx context.Context, slug types.Slug) (types.Calculator, error)
	Run(ctx context.Context, slug types.Slug, in types.Inputs) (types.Result, error)
}

// HistoryReader lists saved computations.
type HistoryReader interface {
	History(ctx context.Context, f types.HistoryFilter) ([]types.HistoryEntry, error)
}

// HistoryService records and manages saved computations.
type HistoryService interface {
	HistoryReader
	Record(ctx context.Context, slug types.Slug, in types.Inputs, res types.Result) (types.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}
