package calculator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"calckit/internal/catalog"
	"calckit/internal/digest"
	"calckit/internal/domain"
)

// DefaultHistoryLimit bounds History listings that do not set a limit.
const DefaultHistoryLimit = 50

// Service looks calculators up in a registry, runs them and optionally
// persists each run to a history store.
type Service struct {
	registry domain.Registry
	history  domain.HistoryStore
	limit    int
	logger   *slog.Logger
	now      func() time.Time
}

// Compile-time assertions.
var (
	_ domain.CalculatorService = (*Service)(nil)
	_ domain.HistoryService    = (*Service)(nil)
)

// Option configures a Service.
type Option func(*Service)

// WithHistory enables history with the given store. A nil store leaves
// history disabled.
func WithHistory(store domain.HistoryStore) Option {
	return func(s *Service) { s.history = store }
}

// WithHistoryLimit sets the default number of entries History returns.
func WithHistoryLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = logger
	}
}

// WithClock overrides the time source used for new history entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs a Service over registry.
func New(registry domain.Registry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		limit:    DefaultHistoryLimit,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns calculators in display order, restricted to category when it
// is not empty.
func (s *Service) List(_ context.Context, category domain.Category) ([]domain.Calculator, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	all := s.registry.All()
	if category == "" {
		return all, nil
	}
	out := make([]domain.Calculator, 0, len(all))
	for _, c := range all {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

// Describe returns the calculator registered under slug.
func (s *Service) Describe(_ context.Context, slug domain.Slug) (domain.Calculator, error) {
	c, ok := s.registry.Lookup(slug)
	if !ok {
		return domain.Calculator{}, fmt.Errorf("%w: %s", domain.ErrUnknownCalculator, slug)
	}
	return c, nil
}

// Run computes the calculator registered under slug. Validation failures
// come back as *domain.ValidationError.
func (s *Service) Run(ctx context.Context, slug domain.Slug, in domain.Inputs) (domain.Result, error) {
	c, err := s.Describe(ctx, slug)
	if err != nil {
		return domain.Result{}, err
	}
	start := time.Now()
	res, err := catalog.Run(c, in)
	if err != nil {
		s.logger.InfoContext(ctx, "calculation rejected", "slug", slug, "err", err)
		return domain.Result{}, err
	}
	s.logger.DebugContext(ctx, "calculation",
		"slug", slug,
		"fingerprint", digest.Fingerprint(slug, in),
		"took", time.Since(start),
	)
	return res, nil
}

// Record saves a completed computation to history.
func (s *Service) Record(ctx context.Context, slug domain.Slug, in domain.Inputs, res domain.Result) (domain.HistoryEntry, error) {
	if s.history == nil {
		return domain.HistoryEntry{}, domain.ErrHistoryDisabled
	}
	if _, ok := s.registry.Lookup(slug); !ok {
		return domain.HistoryEntry{}, fmt.Errorf("%w: %s", domain.ErrUnknownCalculator, slug)
	}
	entry, err := s.history.SaveEntry(ctx, domain.HistoryEntry{
		Slug:      slug,
		Inputs:    in,
		Summary:   res.Summary,
		CreatedAt: s.now(),
	})
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("recording %s: %w", slug, err)
	}
	s.logger.DebugContext(ctx, "history saved", "slug", slug, "id", entry.ID)
	return entry, nil
}

// History lists saved computations newest first. A zero limit uses the
// configured default.
func (s *Service) History(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if f.Limit <= 0 {
		f.Limit = s.limit
	}
	return s.history.ListEntries(ctx, f)
}

// ClearHistory removes every saved computation.
func (s *Service) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return domain.ErrHistoryDisabled
	}
	if err := s.history.ClearEntries(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	s.logger.InfoContext(ctx, "history cleared")
	return nil
}

// HistoryEnabled reports whether a store is configured.
func (s *Service) HistoryEnabled() bool { return s.history != nil }
