package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"relint/internal/config"
	"relint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "relint",
	Short: "Editor-integrated lint orchestrator",
	Long:  `relint schedules code checkers for editor buffers with debounced, staleness-safe scheduling`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to the relint settings file (TOML)")
	rootCmd.PersistentFlags().Bool("trace", false, "log scheduling decisions")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// settingsFromFlags builds the settings provider from the --config flag
// and performs the initial load.
func settingsFromFlags(cmd *cobra.Command) (*config.Provider, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	provider := config.NewProvider(path)
	if err := provider.Load(); err != nil {
		return nil, err
	}
	return provider, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
