package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	Sidebar    string
	StatusLine string
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func RenderApp(data AppData) string {
	body := panelStyle.Width(58).Render(data.Body)
	row := body
	if data.Sidebar != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, body, panelStyle.Width(42).Render(data.Sidebar))
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// PriorityStyle returns the fixed color style for a priority tag.
func PriorityStyle(priority string) lipgloss.Style {
	switch strings.ToLower(priority) {
	case "high":
		return highStyle
	case "low":
		return lowStyle
	default:
		return mediumStyle
	}
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
