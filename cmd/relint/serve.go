package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relint/internal/checker"
	"relint/internal/prof"
	"relint/internal/rpc"
)

var (
	serveSyntaxes   []string
	serveCPUProfile string
	serveMemProfile string
)

func init() {
	serveCmd.Flags().StringSliceVar(&serveSyntaxes, "syntax", []string{"plain"},
		"syntaxes to bind the builtin checkers to")
	serveCmd.Flags().StringVar(&serveCPUProfile, "cpuprofile", "", "write a CPU profile to this path")
	serveCmd.Flags().StringVar(&serveMemProfile, "memprofile", "", "write a heap profile to this path on exit")
}

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Run the relint server over stdio",
	SilenceUsage: true,
	RunE:         runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := settingsFromFlags(cmd)
	if err != nil {
		return err
	}
	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return err
	}

	if serveCPUProfile != "" {
		if err := prof.StartCPU(serveCPUProfile); err != nil {
			return err
		}
		defer prof.StopCPU()
	}
	if serveMemProfile != "" {
		defer func() {
			if err := prof.WriteMem(serveMemProfile); err != nil {
				fmt.Fprintf(os.Stderr, "relint: write heap profile: %v\n", err)
			}
		}()
	}

	registry := checker.NewRegistry()
	checker.RegisterBuiltins(registry, serveSyntaxes)

	server := rpc.NewServer(os.Stdin, os.Stdout, rpc.ServerOptions{
		Registry:  registry,
		Settings:  settings,
		Trace:     trace,
		LogWriter: os.Stderr,
	})
	return server.Run(cmd.Context())
}
