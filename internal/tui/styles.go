package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorSubtle  = lipgloss.Color("241")
	colorMuted   = lipgloss.Color("238")
	colorText    = lipgloss.Color("252")
	colorMessage = lipgloss.Color("236")
)

type styleID int

const (
	styleDesktop styleID = iota
	styleWindow
	styleActiveWindow
	styleTitle
	styleActiveTitle
	styleMessage
	styleCursor
	styleStatus
)

var styles = map[styleID]lipgloss.Style{
	styleDesktop:      lipgloss.NewStyle().Foreground(colorMuted),
	styleWindow:       lipgloss.NewStyle().Foreground(colorSubtle),
	styleActiveWindow: lipgloss.NewStyle().Foreground(colorPrimary),
	styleTitle:        lipgloss.NewStyle().Foreground(colorText),
	styleActiveTitle:  lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
	styleMessage:      lipgloss.NewStyle().Foreground(colorText).Background(colorMessage),
	styleCursor:       lipgloss.NewStyle().Reverse(true),
	styleStatus:       lipgloss.NewStyle().Foreground(colorSubtle).Italic(true),
}

var (
	windowBorder  = lipgloss.NormalBorder()
	activeBorder  = lipgloss.ThickBorder()
	messageBorder = lipgloss.RoundedBorder()
)

const statusLine = "ctrl+n new client · alt+w/s cycle · alt+q close · F1 hello · alt+esc quit"
