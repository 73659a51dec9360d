// Package main provides the entry point for the forge CLI application.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalSeed    int64
	globalVerbose bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "Procedural character lore generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(globalVerbose))
		},
	}

	rootCmd.PersistentFlags().Int64Var(&globalSeed, "seed", 0, "Seed for reproducible output (0 draws a fresh one)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newGenerateCmd(),
		newBatchCmd(),
		newDemoCmd(),
		newCatalogCmd(),
		newPresetsCmd(),
		newArchiveCmd(),
		newExportCmd(),
		newIndexCmd(),
		newSimilarCmd(),
		newMCPCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// newLogger logs to stderr so stdout stays clean for command output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
