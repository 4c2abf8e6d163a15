package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/model"
)

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Palette:
		m.Mode = ModePalette
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case m.Keys.Add:
		m.enterCaptureMode()
	case m.Keys.Search:
		m.Mode = ModeSearch
		m.searchInput.SetValue(m.Store.Search())
		m.searchInput.Focus()
		m.Status = StatusBar{Text: "search mode", IsError: false}
	case m.Keys.Edit:
		m.enterEditMode()
	case m.Keys.Delete:
		if task, ok := m.selectedTask(); ok {
			m.Store.Delete(task.ID)
			m.syncSelectionToCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Text), IsError: false}
		}
	case m.Keys.Toggle:
		if task, ok := m.selectedTask(); ok {
			m.Store.Toggle(task.ID)
			m.syncSelectionToCursor()
		}
	case m.Keys.Clear:
		return m.requestClearCompleted()
	case m.Keys.FilterAll:
		m.applyFilter(model.FilterAll)
	case m.Keys.FilterAct:
		m.applyFilter(model.FilterActive)
	case m.Keys.FilterCmp:
		m.applyFilter(model.FilterCompleted)
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.syncSelectionToCursor()
	case "down", "j":
		if m.Cursor < len(m.Store.View())-1 {
			m.Cursor++
		}
		m.syncSelectionToCursor()
	case "esc":
		if m.Store.Search() != "" {
			m.Store.SetSearch("")
			m.syncSelectionToCursor()
			m.Status = StatusBar{Text: "search cleared", IsError: false}
		}
	}
	return m, nil
}

func (m *Model) enterCaptureMode() {
	m.Mode = ModeCapture
	m.Capture.Input = ""
	m.quickAddInput.SetValue("")
	m.quickAddInput.Focus()
	m.Status = StatusBar{Text: "capture mode", IsError: false}
}

func (m *Model) enterEditMode() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.Mode = ModeEdit
	m.Edit = EditState{TaskID: task.ID, Draft: task.Text, open: true}
	m.editInput.SetValue(task.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.Status = StatusBar{Text: "editing task", IsError: false}
}

func (m *Model) applyFilter(f model.Filter) {
	m.Store.SetFilter(f)
	m.Cursor = 0
	m.syncSelectionToCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", f), IsError: false}
}

func (m Model) requestClearCompleted() (tea.Model, tea.Cmd) {
	progress := m.Store.Progress()
	if progress.Total-progress.Remaining == 0 {
		m.Status = StatusBar{Text: "no completed tasks to clear", IsError: false}
		return m, nil
	}
	if !m.cfg.ConfirmClear {
		removed := m.Store.ClearCompleted()
		m.syncSelectionToCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d completed task(s)", removed), IsError: false}
		return m, nil
	}
	m.Mode = ModeConfirm
	m.Status = StatusBar{Text: "confirm clear completed", IsError: false}
	return m, nil
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.Capture.Input = ""
		m.quickAddInput.Blur()
		m.Status = StatusBar{Text: "capture cancelled", IsError: false}
		return m
	case "tab":
		m.Capture.Priority = nextPriority(m.Capture.Priority)
		return m
	case "enter":
		// The pending input clears in the same step as the add.
		task, ok := m.Store.Add(m.quickAddInput.Value(), m.Capture.Priority)
		m.Capture.Input = ""
		m.quickAddInput.SetValue("")
		if ok {
			m.Cursor = 0
			m.syncSelectionToCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Text), IsError: false}
		}
		return m
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	_ = cmd
	m.Capture.Input = m.quickAddInput.Value()
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.searchInput.Blur()
		m.Store.SetSearch("")
		m.syncSelectionToCursor()
		m.Status = StatusBar{Text: "search cleared", IsError: false}
		return m
	case "enter":
		m.Mode = ModeBrowse
		m.searchInput.Blur()
		return m
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	_ = cmd
	m.Store.SetSearch(m.searchInput.Value())
	m.Cursor = 0
	m.syncSelectionToCursor()
	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Edit.open = false
		m.Mode = ModeBrowse
		m.editInput.Blur()
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
		return m
	case "enter":
		m.Edit.Draft = m.editInput.Value()
		m.commitEdit()
		m.Mode = ModeBrowse
		m.editInput.Blur()
		return m
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	_ = cmd
	m.Edit.Draft = m.editInput.Value()
	return m
}

// commitEdit closes the edit session and applies it once. Calling it
// again after the session closed does nothing.
func (m *Model) commitEdit() bool {
	if !m.Edit.open {
		return false
	}
	m.Edit.open = false
	if m.Store.EditText(m.Edit.TaskID, m.Edit.Draft) {
		m.Status = StatusBar{Text: "task updated", IsError: false}
		return true
	}
	m.Status = StatusBar{Text: "edit discarded", IsError: false}
	return false
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "enter":
		removed := m.Store.ClearCompleted()
		m.Mode = ModeBrowse
		m.syncSelectionToCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d completed task(s)", removed), IsError: false}
	case "n", "esc":
		m.Mode = ModeBrowse
		m.Status = StatusBar{Text: "clear cancelled", IsError: false}
	}
	return m
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return model.PriorityHigh
	}
}
