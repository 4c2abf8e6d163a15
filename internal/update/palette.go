package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Mode = ModeBrowse
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, ok := m.Store.Add(a.Text, a.Priority)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires task text"}
			}
			m.Cursor = 0
			m.syncSelectionToCursor()
			return commands.Result{Message: fmt.Sprintf("added: %s", task.Text)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.Store.SetFilter(f.Filter)
			m.Cursor = 0
			m.syncSelectionToCursor()
			return commands.Result{Message: fmt.Sprintf("filter: %s", f.Filter)}, nil
		},
		Search: func(s commands.SearchArgs) (commands.Result, error) {
			m.Store.SetSearch(s.Query)
			m.Cursor = 0
			m.syncSelectionToCursor()
			if s.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("search: %s", s.Query)}, nil
		},
		Clear: func() (commands.Result, error) {
			progress := m.Store.Progress()
			completed := progress.Total - progress.Remaining
			if completed == 0 {
				return commands.Result{Message: "no completed tasks to clear"}, nil
			}
			if m.cfg.ConfirmClear {
				m.Mode = ModeConfirm
				return commands.Result{Message: "confirm clear completed"}, nil
			}
			removed := m.Store.ClearCompleted()
			m.syncSelectionToCursor()
			return commands.Result{Message: fmt.Sprintf("cleared %d completed task(s)", removed)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	if m.Mode == ModePalette {
		m.Mode = ModeBrowse
	}
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
