package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table styles shared by ls output.
var (
	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Align(lipgloss.Center)

	TableBorderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
)

// NewListingTable creates a table styled for ls output: a rounded border
// in the muted color, sized to width (GetWidth() for a TTY, 80 otherwise).
func NewListingTable(width int) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Width(width)
}
