package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch m.Mode {
		case ModePalette:
			return m.handlePaletteKey(typed), nil
		case ModeCapture:
			return m.handleCaptureKey(typed), nil
		case ModeSearch:
			return m.handleSearchKey(typed), nil
		case ModeEdit:
			return m.handleEditKey(typed), nil
		case ModeConfirm:
			return m.handleConfirmKey(typed), nil
		}
		return m.handleBrowseKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case AddTaskMsg:
		if task, ok := m.Store.Add(typed.Text, typed.Priority); ok {
			m.Cursor = 0
			m.syncSelectionToCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Text), IsError: false}
		}
		return m, nil
	case SetFilterMsg:
		m.Store.SetFilter(typed.Filter)
		m.Cursor = 0
		m.syncSelectionToCursor()
		return m, nil
	case SetSearchMsg:
		m.Store.SetSearch(typed.Query)
		m.Cursor = 0
		m.syncSelectionToCursor()
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()

	progress := m.Store.Progress()
	view := m.Store.View()

	rows := make([]views.TaskRowData, 0, len(view))
	for _, task := range view {
		rows = append(rows, views.TaskRowData{
			ID:        task.ID,
			Text:      task.Text,
			Priority:  string(task.Priority),
			Completed: task.Completed,
		})
	}

	captureView := ""
	captureState := ""
	if m.Mode == ModeCapture {
		captureView = m.quickAddInput.View()
		captureState = string(m.Capture.Priority)
	}
	searchView := ""
	if m.Mode == ModeSearch {
		searchView = m.searchInput.View()
	}

	body := views.RenderTaskPanel(views.TaskPanelData{
		Rows:         rows,
		ListView:     m.taskList.View(),
		SelectedID:   m.SelectedTaskID,
		Filter:       string(m.Store.Filter()),
		Search:       m.Store.Search(),
		CaptureView:  captureView,
		CaptureState: captureState,
		SearchView:   searchView,
		EditView:     m.editInput.View(),
		EditActive:   m.Mode == ModeEdit,
	})
	body += "\n" + views.RenderProgressLine(views.ProgressData{
		Remaining: progress.Remaining,
		Total:     progress.Total,
		Percent:   int(progress.CompletionFraction * 100),
		BarView:   m.doneProgress.ViewAs(progress.CompletionFraction),
	})

	sidebar := ""
	if m.Mode == ModePalette {
		sidebar = views.RenderCommandPalette(true, m.Palette.Input)
	}
	if m.Mode == ModeConfirm {
		sidebar += views.RenderConfirmPrompt(views.ConfirmData{
			Active:         true,
			CompletedCount: progress.Total - progress.Remaining,
		})
	}
	if m.HelpVisible {
		sidebar += m.renderHelpView()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("listd | filter: %s | %d left", m.Store.Filter(), progress.Remaining),
		Body:       body,
		Sidebar:    sidebar,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s add | %s search | %s edit | %s delete | space toggle | 1/2/3 filter | %s clear done | / cmd | %s help | %s quit",
			m.Keys.Add, m.Keys.Search, m.Keys.Edit, m.Keys.Delete, m.Keys.Clear, m.Keys.Help, m.Keys.Quit),
	})
}
