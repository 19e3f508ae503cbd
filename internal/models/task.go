package models

import (
	"errors"
	"time"
)

const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// ErrPriorityOutOfRange is the only business validation in the system. The
// message is part of the API contract and is surfaced verbatim to clients.
var ErrPriorityOutOfRange = errors.New("Priority must be between 1 and 5")

// Task is the wire representation of a task. ID is a uuid string when the
// hosted backend is active and an integer when the embedded backend is active;
// each store owns its own row model and fills this in.
type Task struct {
	ID          any       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    int       `json:"priority"`
	UserID      string    `json:"user_id"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Draft is a validated new task before the backend has assigned its id and
// timestamps.
type Draft struct {
	Title       string
	Description *string
	Priority    int
	UserID      string
}

// Patch is a validated full overwrite of the mutable fields. Ownership and
// completion state cannot travel through this path.
type Patch struct {
	Title       string
	Description *string
	Priority    int
}

// NewDraft applies the priority default and range check. Defaults live here,
// and only here, so the embedded schema's DDL defaults and the request-mapping
// defaults cannot drift apart.
func NewDraft(title string, description *string, priority *int, userID string) (Draft, error) {
	p, err := resolvePriority(priority)
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		Title:       title,
		Description: description,
		Priority:    p,
		UserID:      userID,
	}, nil
}

// NewPatch validates an update payload the same way NewDraft validates a
// create payload.
func NewPatch(title string, description *string, priority *int) (Patch, error) {
	p, err := resolvePriority(priority)
	if err != nil {
		return Patch{}, err
	}
	return Patch{
		Title:       title,
		Description: description,
		Priority:    p,
	}, nil
}

func resolvePriority(priority *int) (int, error) {
	if priority == nil {
		return DefaultPriority, nil
	}
	if *priority < MinPriority || *priority > MaxPriority {
		return 0, ErrPriorityOutOfRange
	}
	return *priority, nil
}
