// Package tui: lipgloss styles shared by the views.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	logHdrStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	startStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	endStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pathStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	closedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("61"))
	costStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	plainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)
