package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
	"github.com/ersonp/lore-forge/internal/infrastructure/parsers"
)

func newCatalogCmd() *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the content catalog in use",
		Long:  "Reports the size of every catalog pool, including any override file set in config or FORGE_CATALOG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configuredCatalog()
			if err != nil {
				return err
			}
			return showCatalog(path, asJSON)
		},
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "check FILE",
		Short: "Validate a catalog override file",
		Long:  "Parses a YAML, JSON or CSV catalog file, merges it over the built-in catalog and reports the result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCatalog(args[0], asJSON)
		},
	})

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Write the catalog in use as YAML",
		Long:  "Writes the merged catalog as YAML. The output is a valid override file to start editing from.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configuredCatalog()
			if err != nil {
				return err
			}
			c, err := handlers.LoadCatalog(path)
			if err != nil {
				return err
			}
			return writeOutput(output, func(w io.Writer) error {
				return parsers.EncodeYAML(w, c.Tables())
			})
		},
	}
	dump.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.AddCommand(dump)

	return cmd
}

// configuredCatalog returns the override path from config or FORGE_CATALOG,
// or "" for the built-in catalog.
func configuredCatalog() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return cfg.CatalogPath(cwd), nil
}

func showCatalog(path string, asJSON bool) error {
	report, err := handlers.CheckCatalog(path)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(os.Stdout, report)
	}

	fmt.Printf("Catalog: %s\n\n", report.Source)
	for _, s := range report.Stats {
		pool := s.Pool
		if s.Key != "" {
			pool += " / " + s.Key
		}
		fmt.Printf("  %-36s %4d\n", pool, s.Count)
	}
	fmt.Printf("\nDistinct defining moments: %d\n", report.Moments)
	fmt.Printf("Relationship roles: %d\n", report.Roles)
	if report.Override {
		fmt.Println("Catalog OK.")
	}
	return nil
}
