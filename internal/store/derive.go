package store

import (
	"strings"

	"github.com/sandeepkv93/listd/internal/model"
)

// Progress describes how much of the list is done.
type Progress struct {
	Total              int
	Remaining          int
	CompletionFraction float64
}

// DeriveView applies the filter stage and then the search stage to the
// task list. Both stages preserve the source order; search matches
// case-insensitively on a substring of the task text.
func DeriveView(tasks []model.Task, filter model.Filter, search string) []model.Task {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesFilter(task, filter) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(task.Text), needle) {
			continue
		}
		out = append(out, task)
	}
	return out
}

func matchesFilter(task model.Task, filter model.Filter) bool {
	switch filter {
	case model.FilterActive:
		return !task.Completed
	case model.FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

// DeriveProgress counts remaining tasks and the completed fraction.
// An empty list is zero progress, not a division by zero.
func DeriveProgress(tasks []model.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, task := range tasks {
		if !task.Completed {
			p.Remaining++
		}
	}
	if p.Total > 0 {
		p.CompletionFraction = float64(p.Total-p.Remaining) / float64(p.Total)
	}
	return p
}
