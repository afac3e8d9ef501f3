// Package views provides the individual views for the unified TUI.
package views

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("#FF6B6B")
	colorSecondary = lipgloss.Color("#4ecdc4")
	colorAccent    = lipgloss.Color("#ffe66d")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#a8e6cf")
	colorText      = lipgloss.Color("#f1faee")
	colorLabel     = lipgloss.Color("#a8dadc")
	colorBg        = lipgloss.Color("#1a1a2e")
	colorBgAlt     = lipgloss.Color("#2d3436")
	colorBorder    = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(colorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	bigGlyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	glyphBoxStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorBgAlt).
			Padding(1, 4).
			Align(lipgloss.Center)

	controlGlyphStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Italic(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	rowSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				Background(colorBgAlt)

	hexStyle = lipgloss.NewStyle().
			Foreground(colorLabel)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
