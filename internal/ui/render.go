package ui

import "github.com/charmbracelet/lipgloss"

// RenderPass styles s as a success marker, when color is enabled.
func RenderPass(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorPass).Render(s)
}

// RenderWarn styles s as a warning, when color is enabled.
func RenderWarn(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorWarn).Render(s)
}

// RenderFail styles s as a failure, when color is enabled.
func RenderFail(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorFail).Bold(true).Render(s)
}

// RenderAccent styles s as an accent (a path, a directory name), when color
// is enabled.
func RenderAccent(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorAccent).Render(s)
}

// RenderMuted styles s as de-emphasized (a prompt decoration), when color
// is enabled.
func RenderMuted(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(s)
}
