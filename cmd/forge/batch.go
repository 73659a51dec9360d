package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
)

type batchFlags struct {
	count     int
	archetype string
	origin    string
	output    string
	workers   int
	archive   bool
	params    paramFlags
}

func newBatchCmd() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many characters into one document",
		Long: `Generates a batch of characters and writes them as one markdown collection.

Character i is generated from seed+i, so a batch is reproducible with --seed
and any single character can be regenerated on its own.`,
		Example: `  forge batch --count 50 --preset mysterious
  forge batch --seed 1000 -o - | less`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, &flags)
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "c", DefaultBatchCount, "Number of characters to generate")
	cmd.Flags().StringVarP(&flags.archetype, "archetype", "a", "", "Archetype for every character (random when empty)")
	cmd.Flags().StringVarP(&flags.origin, "origin", "g", "", "Origin for every character (random when empty)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", DefaultBatchOutput, "Output file (- for stdout)")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Concurrent workers (default: config, then one per CPU)")
	cmd.Flags().BoolVar(&flags.archive, "archive", false, "Store every character in the archive")
	flags.params.register(cmd)

	return cmd
}

func runBatch(cmd *cobra.Command, flags *batchFlags) error {
	ctx := cmd.Context()
	with := withDeps
	if flags.archive {
		with = withArchive
	}

	return with(ctx, func(d *Deps) error {
		params, err := handlers.ResolveParameters(d.parameterSource(flags.params.source(cmd)))
		if err != nil {
			return err
		}

		workers := flags.workers
		if workers == 0 {
			workers = d.Config.Generation.Workers
		}

		result, err := d.BatchHandler.Handle(ctx, handlers.BatchCommand{
			Count:      flags.count,
			Archetype:  flags.archetype,
			Origin:     flags.origin,
			Parameters: params,
			Seed:       globalSeed,
			Workers:    workers,
			Archive:    flags.archive,
		})
		if err != nil {
			return err
		}

		output := flags.output
		if output == "-" {
			output = ""
		}
		err = writeOutput(output, func(w io.Writer) error {
			_, err := io.WriteString(w, result.Document)
			return err
		})
		if err != nil {
			return fmt.Errorf("writing collection: %w", err)
		}

		if output != "" {
			fmt.Printf("Generated %s characters (seed %d) in %s\n",
				humanize.Comma(int64(len(result.Items))), result.Seed, result.Duration.Round(time.Millisecond))
			fmt.Printf("Wrote %s (%s)\n", output, humanize.Bytes(uint64(len(result.Document))))
		}
		if len(result.ArchiveIDs) > 0 {
			fmt.Printf("Archived %d characters\n", len(result.ArchiveIDs))
		}
		return nil
	})
}
