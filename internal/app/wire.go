package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"calckit/internal/catalog"
	"calckit/internal/client"
	"calckit/internal/domain"
	"calckit/internal/services/calculator"
	"calckit/internal/store"
)

// Wire bundles the registry, store and services for the CLI and server.
type Wire struct {
	Config      Config
	Logger      *slog.Logger
	Registry    *catalog.Registry
	Store       domain.HistoryStore // nil when history is off or remote
	Calculators domain.CalculatorService
	History     domain.HistoryService
	HTTP        *http.Client

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg. With cfg.Remote set the
// services are HTTP clients of that calcweb server and no store is opened.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	w := &Wire{
		Config:   cfg,
		Logger:   logger,
		Registry: catalog.Default(),
		HTTP:     httpClient,
	}

	if cfg.Remote != "" {
		rc := client.NewHTTP(cfg.Remote, httpClient)
		w.Calculators = rc
		w.History = rc
		logger.Debug("using remote calculators", "url", cfg.Remote)
		return w, nil
	}

	if cfg.History.Enabled {
		switch cfg.History.Path {
		case MemoryPath, "":
			w.Store = store.NewMemory()
		default:
			db, err := store.OpenSQLite(cfg.History.Path)
			if err != nil {
				return nil, fmt.Errorf("opening history: %w", err)
			}
			w.Store = db
			w.closers = append(w.closers, db)
		}
	}

	svc := calculator.New(w.Registry,
		calculator.WithHistory(w.Store),
		calculator.WithHistoryLimit(cfg.History.Limit),
		calculator.WithLogger(logger),
	)
	w.Calculators = svc
	w.History = svc
	return w, nil
}

// Close releases the history database, if any.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	w.closers = nil
	return errors.Join(errs...)
}
