package store

import (
	"errors"

	"github.com/taskmaster/taskmaster-api/internal/models"
)

var (
	// ErrTaskNotFound is returned when an operation targets an id that does
	// not exist (or no longer exists) in the store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrStoreUnavailable is returned by every operation when the hosted
	// store could not be reached at startup. It deliberately carries no
	// detail about the endpoint.
	ErrStoreUnavailable = errors.New("task store is not available")
)

// Gateway mediates all task reads and writes. Both backend variants implement
// identical semantics: backend-assigned ids and timestamps on Create, rows
// ordered created_at descending on List, and ErrTaskNotFound whenever zero
// rows matched.
type Gateway interface {
	// Create inserts a new task and returns it fully materialized.
	Create(draft models.Draft) (*models.Task, error)

	// List returns tasks matching the conjunction of the filters, newest
	// first, with offset pagination applied.
	List(filter Filter) ([]models.Task, error)

	// GetByID returns exactly one task or ErrTaskNotFound.
	GetByID(id string) (*models.Task, error)

	// Update overwrites title, description and priority and refreshes
	// updated_at.
	Update(id string, patch models.Patch) (*models.Task, error)

	// MarkComplete sets is_completed and refreshes updated_at.
	MarkComplete(id string) (*models.Task, error)

	// Delete hard-deletes the task. No tombstone, no recovery.
	Delete(id string) error

	// Ping probes store connectivity for the readiness endpoint.
	Ping() error
}

// Filter holds the listing options. Nil fields mean "no constraint"; with no
// constraints the full set across all owners is returned.
type Filter struct {
	UserID    *string
	Completed *bool
	Skip      int
	Limit     int
}
