package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"re-savior/rsave"
	"re-savior/rsave/rhash"
)

func Start(savegame *rsave.Savegame, registry *rhash.Registry) error {
	browser := CreateBrowser(savegame, registry)
	return tea.NewProgram(browser).Start()
}
