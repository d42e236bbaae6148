package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"vfstree/internal/config"
	"vfstree/internal/domain"
	"vfstree/internal/fixture"
	"vfstree/internal/state"
	"vfstree/internal/ui"
)

func Run() {
	base := config.DefaultConfig()
	loaded, loadErr := config.LoadConfig()
	if loadErr == nil {
		base = loaded
	}
	cfg := config.ParseFlags(base)

	var root domain.Node
	warning := ""
	if cfg.TreePath != "" {
		var err error
		root, err = fixture.Load(cfg.TreePath)
		if err != nil {
			warning = fmt.Sprintf("Tree load warning: %v - using demo tree", err)
			root = fixture.Demo()
		}
	} else {
		root = fixture.Demo()
	}

	browseState := state.NewState(root, cfg)
	model := ui.NewModel(browseState)
	if loadErr != nil {
		model = model.WithStatus("Config warning: using defaults")
	}
	if warning != "" {
		model = model.WithStatus(warning)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		fmt.Println("vfstree error:", err)
		return
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		saved := provider.ConfigSnapshot()
		saved.TreePath = cfg.TreePath
		if err := config.SaveConfig(saved); err != nil {
			fmt.Println("vfstree config save error:", err)
		}
	}
}
