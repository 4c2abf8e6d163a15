package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/listd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const helpPage = `# listd

One screen, one list.

- *add* opens capture mode; **tab** cycles the pending priority
- *1/2/3* switch the all/active/completed filter
- */clear* and **C** remove completed tasks after confirmation
- the search box matches anywhere in the task text, case-insensitively
`

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.keyBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
		PageView: views.RenderMarkdown(helpPage),
	})
}

func (m Model) keyBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Add, Action: "add task"},
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle complete"},
		{Key: m.Keys.Edit, Action: "edit task"},
		{Key: m.Keys.Delete, Action: "delete task"},
		{Key: "1/2/3", Action: "filter all/active/completed"},
		{Key: m.Keys.Search, Action: "search"},
		{Key: m.Keys.Clear, Action: "clear completed"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.keyBindings()))
	for _, kb := range m.keyBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
