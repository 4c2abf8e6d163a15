package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority maps user input to a Priority, accepting the common
// short forms. The bool reports whether the input was recognized.
func ParsePriority(raw string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "h":
		return PriorityHigh, true
	case "medium", "med", "m":
		return PriorityMedium, true
	case "low", "l":
		return PriorityLow, true
	default:
		return "", false
	}
}

// Filter selects which completion states are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// ParseFilter maps user input to a Filter.
func ParseFilter(raw string) (Filter, bool) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", false
	}
	return f, true
}

type Task struct {
	ID        string
	Text      string
	Priority  Priority
	Completed bool
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}
