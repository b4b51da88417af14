package types

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one saved computation.
type HistoryEntry struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Slug        Slug      `json:"slug" yaml:"slug"`
	Inputs      Inputs    `json:"inputs" yaml:"inputs"`
	Summary     string    `json:"summary" yaml:"summary"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// HistoryFilter narrows a history listing. A zero Limit means no limit.
type HistoryFilter struct {
	Slug  Slug
	Limit int
}
