package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var (
		archetype, origin string
		reset             bool
	)

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index archived characters for similarity search",
		Long:  "Embeds the narrative of every archived character and stores the vectors in Qdrant. Re-indexing replaces existing vectors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSimilarity(ctx, func(d *Deps) error {
				if reset {
					if err := d.resetIndex(ctx); err != nil {
						return err
					}
					d.Logger.Info("similarity index reset", "vector_size", d.vectorSize)
				}

				result, err := d.SimilarityHandler.Index(ctx, archetype, origin)
				if err != nil {
					if result != nil && result.Indexed > 0 {
						return fmt.Errorf("indexed %d characters before failing: %w", result.Indexed, err)
					}
					return err
				}

				fmt.Printf("Indexed %s characters (%s in index)\n",
					humanize.Comma(int64(result.Indexed)), humanize.Comma(int64(result.Total)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&archetype, "archetype", "a", "", "Only index this archetype")
	cmd.Flags().StringVarP(&origin, "origin", "g", "", "Only index this origin")
	cmd.Flags().BoolVar(&reset, "reset", false, "Drop and recreate the collection first")

	return cmd
}

func newSimilarCmd() *cobra.Command {
	var (
		archetype string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "similar DESCRIPTION",
		Short: "Find archived characters resembling a description",
		Example: `  forge similar "an exiled scholar who betrayed their mentor"
  forge similar --archetype Villain "cold and patient"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")

			return withSimilarity(ctx, func(d *Deps) error {
				hits, err := d.SimilarityHandler.Search(ctx, query, archetype, limit)
				if err != nil {
					return err
				}
				if len(hits) == 0 {
					fmt.Println("No similar characters found.")
					return nil
				}

				for i, h := range hits {
					fmt.Printf("%d. %s (%.3f)\n", i+1, h.Name, h.Score)
					fmt.Printf("   %d, %s of %s origin  [%s]\n", h.Age, h.Archetype, h.Origin, h.ID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&archetype, "archetype", "a", "", "Only match this archetype")
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultSearchLimit, "Maximum number of results")

	return cmd
}
