// Package store holds the in-memory task list and its derived views.
// Every mutator is total: unknown ids and blank text are silently
// ignored, so callers never branch on failure.
package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/listd/internal/model"
)

// Store is the single task-list state machine. It is owned by one
// event loop; no locking.
type Store struct {
	tasks  []model.Task
	filter model.Filter
	search string

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides task id allocation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func New(opts ...Option) *Store {
	s := &Store{
		filter: model.FilterAll,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a task from text and prepends it to the list. Text is
// trimmed; a blank result creates nothing. The bool reports whether a
// task was created.
func (s *Store) Add(text string, p model.Priority) (model.Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, false
	}
	if !p.IsValid() {
		p = model.PriorityMedium
	}
	task := model.Task{
		ID:        s.newID(),
		Text:      trimmed,
		Priority:  p,
		CreatedAt: s.now(),
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	return task, true
}

// Toggle flips the completed flag of the task with the given id.
func (s *Store) Toggle(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// Delete removes the task with the given id, preserving the order of
// the rest.
func (s *Store) Delete(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// EditText replaces the task's text with the trimmed input. A blank
// result discards the edit and leaves the task unchanged; an empty
// edit is not a delete.
func (s *Store) EditText(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Text = trimmed
			return true
		}
	}
	return false
}

// ClearCompleted removes every completed task in one step and returns
// how many were removed. Confirmation belongs to the caller.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0:0]
	removed := 0
	for _, task := range s.tasks {
		if task.Completed {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	return removed
}

// SetFilter switches the active filter. Invalid filters are ignored.
func (s *Store) SetFilter(f model.Filter) {
	if !f.IsValid() {
		return
	}
	s.filter = f
}

// SetSearch replaces the search query. Empty means no search.
func (s *Store) SetSearch(query string) {
	s.search = strings.TrimSpace(query)
}

// Tasks returns the full ordered list, newest first.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Filter() model.Filter { return s.filter }

func (s *Store) Search() string { return s.search }

// View returns the tasks visible under the current filter and search.
func (s *Store) View() []model.Task {
	return DeriveView(s.tasks, s.filter, s.search)
}

// Progress returns the completion counts for the full list.
func (s *Store) Progress() Progress {
	return DeriveProgress(s.tasks)
}
