package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID        string
	Text      string
	Priority  string
	Completed bool
}

type TaskPanelData struct {
	Rows         []TaskRowData
	ListView     string
	SelectedID   string
	Filter       string
	Search       string
	CaptureView  string
	SearchView   string
	EditView     string
	EditActive   bool
	CaptureState string
}

type ProgressData struct {
	Remaining int
	Total     int
	Percent   int
	BarView   string
}

type ConfirmData struct {
	Active         bool
	CompletedCount int
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	PageView string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(fmt.Sprintf("filter: %s", data.Filter))
	if data.Search != "" {
		b.WriteString(fmt.Sprintf(" | search: %q", data.Search))
	}
	b.WriteString("\n")

	if data.CaptureView != "" {
		b.WriteString(data.CaptureView + "\n")
		if data.CaptureState != "" {
			b.WriteString(fmt.Sprintf("priority: %s (tab to cycle)\n", data.CaptureState))
		}
	}
	if data.SearchView != "" {
		b.WriteString(data.SearchView + "\n")
	}
	if data.ListView != "" {
		b.WriteString(data.ListView + "\n")
	}

	if len(data.Rows) == 0 {
		b.WriteString("(no tasks match)")
		return strings.TrimSpace(b.String())
	}

	for _, row := range data.Rows {
		cursor := " "
		if row.ID == data.SelectedID {
			cursor = cursorStyle.Render(">")
		}
		check := "[ ]"
		text := row.Text
		if row.Completed {
			check = "[x]"
			text = doneStyle.Render(text)
		}
		tag := PriorityStyle(row.Priority).Render(fmt.Sprintf("(%s)", row.Priority))
		line := fmt.Sprintf("%s %s %s %s", cursor, check, tag, text)
		if data.EditActive && row.ID == data.SelectedID {
			line = fmt.Sprintf("%s %s edit> %s", cursor, check, data.EditView)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderProgressLine(data ProgressData) string {
	if data.Total == 0 {
		return "progress: no tasks yet"
	}
	return fmt.Sprintf("progress: %d of %d left %s %d%%", data.Remaining, data.Total, data.BarView, data.Percent)
}

func RenderConfirmPrompt(data ConfirmData) string {
	if !data.Active {
		return ""
	}
	return fmt.Sprintf("confirm: delete %d completed task(s)? [y]es [n]o", data.CompletedCount)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	if data.PageView != "" {
		b.WriteString("\n" + data.PageView)
	}
	return strings.TrimSpace(b.String())
}
