package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/listd/internal/model"
)

func sampleTasks() []model.Task {
	created := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: "1", Text: "Buy milk", Priority: model.PriorityMedium, CreatedAt: created},
		{ID: "2", Text: "Walk dog", Priority: model.PriorityLow, Completed: true, CreatedAt: created},
		{ID: "3", Text: "Write weekly report", Priority: model.PriorityHigh, CreatedAt: created},
	}
}

func TestDeriveViewFilterStages(t *testing.T) {
	tasks := sampleTasks()

	all := DeriveView(tasks, model.FilterAll, "")
	if len(all) != 3 {
		t.Fatalf("expected all 3 tasks, got %d", len(all))
	}

	active := DeriveView(tasks, model.FilterActive, "")
	if len(active) != 2 || active[0].ID != "1" || active[1].ID != "3" {
		t.Fatalf("unexpected active view: %+v", active)
	}

	completed := DeriveView(tasks, model.FilterCompleted, "")
	if len(completed) != 1 || completed[0].ID != "2" {
		t.Fatalf("unexpected completed view: %+v", completed)
	}
}

func TestDeriveViewCompletedFilterOnIncompleteList(t *testing.T) {
	tasks := []model.Task{{ID: "1", Text: "Buy milk"}}
	view := DeriveView(tasks, model.FilterCompleted, "")
	if len(view) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestDeriveViewSearchIsCaseInsensitiveSubstring(t *testing.T) {
	tasks := sampleTasks()

	view := DeriveView(tasks, model.FilterAll, "dog")
	if len(view) != 1 || view[0].ID != "2" {
		t.Fatalf("expected dog task, got %+v", view)
	}

	view = DeriveView(tasks, model.FilterAll, "WEEKLY")
	if len(view) != 1 || view[0].ID != "3" {
		t.Fatalf("expected report task, got %+v", view)
	}

	view = DeriveView(tasks, model.FilterAll, "nothing here")
	if len(view) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestDeriveViewStagesAreConjunctive(t *testing.T) {
	tasks := sampleTasks()
	// "dog" matches only a completed task; the active filter must still
	// exclude it.
	view := DeriveView(tasks, model.FilterActive, "dog")
	if len(view) != 0 {
		t.Fatalf("expected conjunctive stages to yield empty view, got %+v", view)
	}
}

func TestDeriveViewIsPure(t *testing.T) {
	tasks := sampleTasks()
	first := DeriveView(tasks, model.FilterActive, "w")
	second := DeriveView(tasks, model.FilterActive, "w")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestDeriveProgressEmptyList(t *testing.T) {
	p := DeriveProgress(nil)
	if p.Total != 0 || p.Remaining != 0 || p.CompletionFraction != 0 {
		t.Fatalf("expected zero progress on empty list, got %+v", p)
	}
}

func TestDeriveProgressCounts(t *testing.T) {
	p := DeriveProgress(sampleTasks())
	if p.Total != 3 || p.Remaining != 2 {
		t.Fatalf("unexpected counts: %+v", p)
	}
	want := 1.0 / 3.0
	if diff := p.CompletionFraction - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected fraction %v, got %v", want, p.CompletionFraction)
	}
}
