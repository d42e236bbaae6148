package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vfstree/internal/config"
	"vfstree/internal/state"
)

type Model struct {
	state      *state.State
	keys       KeyMap
	showHelp   bool
	status     string
	width      int
	height     int
	viewTop    int
	inputMode  string
	inputValue string
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

func NewModel(browseState *state.State) Model {
	return Model{
		state:  browseState,
		keys:   DefaultKeyMap(),
		status: "Ready - / locates a name, ? shows help",
		width:  100,
		height: 30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) ConfigSnapshot() config.Config {
	return config.Config{
		SortMode: model.state.Prefs.SortMode,
		Theme:    model.state.Prefs.Theme,
	}
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.ensureCursorVisible()
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit
	case model.inputMode != "":
		return model.handleInput(msg)
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Up):
		model.state.MoveCursor(-1)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Down):
		model.state.MoveCursor(1)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Top):
		model.state.Cursor = 0
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Bottom):
		model.state.Cursor = len(model.state.VisibleNodes()) - 1
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Enter):
		row := model.state.CurrentRow()
		if row == nil || !row.Node.IsDir() {
			return model, nil
		}
		model.state.ToggleExpanded(row.Path)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.ExpandAll):
		model.state.ExpandAll()
		model.status = "Expanded all directories"
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.CollapseAll):
		model.state.CollapseAll()
		model.status = "Collapsed to root"
		model.viewTop = 0
		return model, nil
	case key.Matches(msg, model.keys.Sort):
		mode := model.state.ToggleSortMode()
		model.status = fmt.Sprintf("Order: %s", mode)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Locate):
		model.inputMode = "locate"
		model.inputValue = ""
		model.status = "Locate: "
		return model, nil
	case key.Matches(msg, model.keys.Filter):
		model.inputMode = "filter"
		model.inputValue = model.state.Query
		model.status = fmt.Sprintf("Filter: %s", model.inputValue)
		return model, nil
	case key.Matches(msg, model.keys.ClearFilter):
		model.state.ClearQuery()
		model.status = "Filter cleared"
		model.ensureCursorVisible()
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		model.inputMode = ""
		model.inputValue = ""
		model.status = "Cancelled"
		return model, nil
	case tea.KeyEnter:
		mode := model.inputMode
		value := strings.TrimSpace(model.inputValue)
		model.inputMode = ""
		switch mode {
		case "locate":
			model.state.ClearQuery()
			if model.state.Locate(value) {
				model.status = fmt.Sprintf("Found %q", value)
			} else {
				model.status = fmt.Sprintf("No directory contains %q", value)
			}
		case "filter":
			model.state.Query = value
			model.state.Cursor = 0
			model.status = "Filter applied"
		}
		model.ensureCursorVisible()
		return model, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if len(model.inputValue) > 0 {
			model.inputValue = model.inputValue[:len(model.inputValue)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			model.inputValue += string(msg.Runes)
		}
	}
	model.status = fmt.Sprintf("%s: %s", inputLabel(model.inputMode), model.inputValue)
	return model, nil
}

func inputLabel(mode string) string {
	if mode == "filter" {
		return "Filter"
	}
	return "Locate"
}

func (model *Model) ensureCursorVisible() {
	rows := model.state.VisibleNodes()
	if len(rows) == 0 {
		model.state.Cursor = 0
		model.viewTop = 0
		return
	}
	if model.state.Cursor >= len(rows) {
		model.state.Cursor = len(rows) - 1
	}
	if model.state.Cursor < 0 {
		model.state.Cursor = 0
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+listHeight {
		model.viewTop = model.state.Cursor - listHeight + 1
	}
	maxTop := len(rows) - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	return model.height - 5
}
