package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// resultMsg delivers a finished explorer operation to the view.
type resultMsg struct {
	title string
	body  string
	err   error
}

var _ tea.Msg = resultMsg{}
