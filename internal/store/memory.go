package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"calckit/internal/domain"
)

// Memory is an in-process HistoryStore. Its zero value is not usable; call
// NewMemory.
type Memory struct {
	mu      sync.Mutex
	entries map[uuid.UUID]domain.HistoryEntry
	byPrint map[string]uuid.UUID
}

// Compile-time assertion that Memory implements domain.HistoryStore.
var _ domain.HistoryStore = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[uuid.UUID]domain.HistoryEntry),
		byPrint: make(map[string]uuid.UUID),
	}
}

// SaveEntry inserts e or refreshes the entry with the same fingerprint.
func (m *Memory) SaveEntry(_ context.Context, e domain.HistoryEntry) (domain.HistoryEntry, error) {
	e, err := prepare(e)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	e.Inputs = copyInputs(e.Inputs)

	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byPrint[e.Fingerprint]; ok {
		existing := m.entries[id]
		existing.Summary = e.Summary
		existing.Inputs = e.Inputs
		existing.CreatedAt = e.CreatedAt
		m.entries[id] = existing
		return existing, nil
	}
	m.entries[e.ID] = e
	m.byPrint[e.Fingerprint] = e.ID
	return e, nil
}

// ListEntries returns entries newest first, optionally filtered by slug.
func (m *Memory) ListEntries(_ context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	out := make([]domain.HistoryEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if f.Slug != "" && e.Slug != f.Slug {
			continue
		}
		out = append(out, e)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// GetEntry returns the entry with id and whether it exists.
func (m *Memory) GetEntry(_ context.Context, id uuid.UUID) (domain.HistoryEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	return e, ok, nil
}

// DeleteEntry removes the entry with id.
func (m *Memory) DeleteEntry(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		delete(m.byPrint, e.Fingerprint)
		delete(m.entries, id)
	}
	return nil
}

// ClearEntries removes every entry.
func (m *Memory) ClearEntries(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[uuid.UUID]domain.HistoryEntry)
	m.byPrint = make(map[string]uuid.UUID)
	return nil
}

func copyInputs(in domain.Inputs) domain.Inputs {
	out := make(domain.Inputs, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
