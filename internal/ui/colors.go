package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every styled helper in this package.
var (
	ColorAccent = lipgloss.Color("39")  // blue, headers and highlighted paths
	ColorPass   = lipgloss.Color("42")  // green, success markers
	ColorWarn   = lipgloss.Color("214") // amber, non-fatal warnings
	ColorFail   = lipgloss.Color("203") // red, failures
	ColorMuted  = lipgloss.Color("244") // grey, borders and hints
)
