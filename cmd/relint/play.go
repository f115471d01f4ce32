package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"relint/internal/ui"
)

var playCmd = &cobra.Command{
	Use:          "play",
	Short:        "Open an interactive lint playground",
	Long:         `play opens a terminal buffer wired to the builtin checkers so you can watch relint schedule, debounce and publish findings as you type`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("play requires a terminal")
	}
	settings, err := settingsFromFlags(cmd)
	if err != nil {
		return err
	}

	model := ui.NewPlayground(settings)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("playground: %w", err)
	}
	return nil
}
