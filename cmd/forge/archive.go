package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/entities"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse and prune archived characters",
		Long:  "Characters generated with --archive are kept in a SQLite archive along with the seed and parameters that produced them.",
	}

	cmd.AddCommand(
		newArchiveListCmd(),
		newArchiveShowCmd(),
		newArchiveSearchCmd(),
		newArchiveDeleteCmd(),
		newArchiveHistoryCmd(),
	)

	return cmd
}

func newArchiveListCmd() *cobra.Command {
	var q handlers.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived characters, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withArchive(ctx, func(d *Deps) error {
				result, err := d.ArchiveHandler.List(ctx, q)
				if err != nil {
					return err
				}
				if len(result.Characters) == 0 {
					fmt.Println("No characters found.")
					return nil
				}

				fmt.Printf("Showing %d of %d characters:\n\n", len(result.Characters), result.Total)
				for _, c := range result.Characters {
					displayCharacter(c)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&q.Archetype, "archetype", "a", "", "Filter by archetype")
	cmd.Flags().StringVarP(&q.Origin, "origin", "g", "", "Filter by origin")
	cmd.Flags().IntVarP(&q.Limit, "limit", "l", DefaultListLimit, "Maximum number of characters to display")
	cmd.Flags().IntVar(&q.Offset, "offset", 0, "Number of characters to skip")

	return cmd
}

func newArchiveShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print an archived character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withArchive(ctx, func(d *Deps) error {
				c, err := d.ArchiveHandler.Show(ctx, args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(os.Stdout, c)
				}
				fmt.Printf("<!-- id %s, seed %d, archived %s -->\n", c.ID, c.Seed, c.CreatedAt.Format("2006-01-02 15:04"))
				fmt.Print(c.Narrative)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the archived record as JSON")

	return cmd
}

func newArchiveSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find archived characters by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withArchive(ctx, func(d *Deps) error {
				chars, err := d.ArchiveHandler.Search(ctx, strings.Join(args, " "), limit)
				if err != nil {
					return err
				}
				if len(chars) == 0 {
					fmt.Println("No characters found.")
					return nil
				}
				for _, c := range chars {
					displayCharacter(c)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of results")

	return cmd
}

func newArchiveDeleteCmd() *cobra.Command {
	var force, unindex bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an archived character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			with := withArchive
			if unindex {
				with = withSimilarity
			}

			return with(ctx, func(d *Deps) error {
				c, err := d.ArchiveHandler.Show(ctx, args[0])
				if err != nil {
					return err
				}
				if !force && !confirmAction(fmt.Sprintf("Delete %s (%s)?", c.Name(), c.ID)) {
					fmt.Println("Cancelled.")
					return nil
				}
				if err := d.ArchiveHandler.Delete(ctx, c.ID); err != nil {
					return err
				}
				fmt.Printf("Deleted character: %s\n", c.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&unindex, "unindex", false, "Also remove the character from the similarity index")

	return cmd
}

func newArchiveHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [ID]",
		Short: "Show the archive audit log",
		Long:  "Shows audit entries for one character, or for the whole archive when no ID is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) > 0 {
				id = args[0]
			}

			ctx := cmd.Context()
			return withArchive(ctx, func(d *Deps) error {
				entries, err := d.ArchiveHandler.History(ctx, id, limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No history.")
					return nil
				}
				for _, e := range entries {
					displayAuditEntry(e)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of entries")

	return cmd
}

func displayCharacter(c *entities.ArchivedCharacter) {
	fmt.Printf("ID: %s\n", c.ID)
	fmt.Printf("  %s, %d, %s of %s origin\n", c.Name(), c.Lore.Identity.Age, c.Lore.Identity.Archetype, c.Lore.Background.Origin)
	fmt.Printf("  Seed: %d  Archived: %s\n", c.Seed, humanize.Time(c.CreatedAt))
	fmt.Println()
}

func displayAuditEntry(e entities.AuditEntry) {
	line := fmt.Sprintf("%-8s %-36s %s", e.Action, e.CharacterID, humanize.Time(e.CreatedAt))
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Details[k]))
		}
		line += "  " + strings.Join(parts, " ")
	}
	fmt.Println(line)
}

func confirmAction(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
