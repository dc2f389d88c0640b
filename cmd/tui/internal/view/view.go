// Package view holds the screens of the gillpay terminal UI. Every screen is a
// bubbletea model that returns Back when the user leaves it.
package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) setSize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

// BackMsg returns control to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// ChangedMsg reports that a view wrote to the ledger or the category registry.
type ChangedMsg struct{}

func changed() tea.Msg {
	return ChangedMsg{}
}
