package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/listd/internal/model"
	"github.com/sandeepkv93/listd/internal/store"
)

// Mode is the single active input mode of the screen.
type Mode string

const (
	ModeBrowse  Mode = "browse"
	ModeCapture Mode = "capture"
	ModeSearch  Mode = "search"
	ModeEdit    Mode = "edit"
	ModeConfirm Mode = "confirm"
	ModePalette Mode = "palette"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add       string
	Search    string
	Edit      string
	Delete    string
	Toggle    string
	Clear     string
	Palette   string
	FilterAll string
	FilterAct string
	FilterCmp string
	Help      string
	Quit      string
}

// EditState is the transient inline-edit session. It lives here, not in
// the store: the store never learns which task is open for editing.
type EditState struct {
	TaskID string
	Draft  string
	// open guards the commit: closing the session commits at most once.
	open bool
}

type CaptureState struct {
	Input    string
	Priority model.Priority
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Store          *store.Store
	Mode           Mode
	Cursor         int
	SelectedTaskID string
	Edit           EditState
	Capture        CaptureState
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	// Bubble components used for rich TUI controls
	taskList      list.Model
	quickAddInput textinput.Model
	searchInput   textinput.Model
	editInput     textinput.Model
	commandInput  textinput.Model
	doneProgress  progress.Model
	helpModel     help.Model
	cfg           RuntimeConfig
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Text     string
	Priority model.Priority
}

type SetFilterMsg struct {
	Filter model.Filter
}

type SetSearchMsg struct {
	Query string
}

func NewModel() Model {
	return NewModelWithConfig(store.New(), DefaultRuntimeConfig())
}

func NewModelWithConfig(s *store.Store, cfg RuntimeConfig) Model {
	if s == nil {
		s = store.New()
	}
	m := Model{
		Store: s,
		Mode:  ModeBrowse,
		Capture: CaptureState{
			Priority: cfg.DefaultPriority,
		},
		Keys: GlobalKeyMap{
			Add:       "a",
			Search:    "s",
			Edit:      "e",
			Delete:    "d",
			Toggle:    " ",
			Clear:     "C",
			Palette:   "/",
			FilterAll: "1",
			FilterAct: "2",
			FilterCmp: "3",
			Help:      "?",
			Quit:      "q",
		},
		cfg: cfg,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	m.syncSelectionToCursor()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, m.cfg.ListHeight)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 42

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = 256
	m.editInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.doneProgress = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	view := m.Store.View()
	items := make([]list.Item, 0, len(view))
	for _, task := range view {
		desc := string(task.Priority)
		if task.Completed {
			desc += " | done"
		}
		items = append(items, listItem{title: task.Text, description: desc})
	}
	m.taskList.SetItems(items)
	if len(items) > 0 && m.Cursor < len(items) {
		m.taskList.Select(m.Cursor)
	}

	m.quickAddInput.SetValue(m.Capture.Input)
	m.searchInput.SetValue(m.Store.Search())
	m.commandInput.SetValue(m.Palette.Input)
	m.editInput.SetValue(m.Edit.Draft)
}

// syncSelectionToCursor clamps the cursor to the derived view and
// records the selected task id.
func (m *Model) syncSelectionToCursor() {
	view := m.Store.View()
	if len(view) == 0 {
		m.Cursor = 0
		m.SelectedTaskID = ""
		return
	}
	if m.Cursor >= len(view) {
		m.Cursor = len(view) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.SelectedTaskID = view[m.Cursor].ID
}

func (m Model) selectedTask() (model.Task, bool) {
	view := m.Store.View()
	if len(view) == 0 || m.Cursor < 0 || m.Cursor >= len(view) {
		return model.Task{}, false
	}
	return view[m.Cursor], true
}
