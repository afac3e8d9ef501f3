package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/unilookup/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive [query...]",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for exploring Unicode characters.

Features:
  - Type a code point, a character or part of a name
  - Browse the results with a detail pane and a large glyph
  - Copy the character or its U+ notation to the clipboard
  - Table of the ASCII control characters

Controls:
  Enter   Resolve query
  ?       Help
  Esc     Sidebar, then quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := newEngine(cfg, true)
	app := tui.NewAppWithQuery(engine, cfg, strings.Join(args, " "))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
