package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/ports"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
	embedder "github.com/ersonp/lore-forge/internal/infrastructure/embedder/openai"
	"github.com/ersonp/lore-forge/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/lore-forge/internal/infrastructure/vectordb/qdrant"
)

func newInitCmd() *cobra.Command {
	var withIndex bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a forge project",
		Long:  "Creates a .forge directory with default configuration and the character archive, and optionally the Qdrant collection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, withIndex)
		},
	}
	cmd.Flags().BoolVar(&withIndex, "with-index", false, "Also create the Qdrant collection for similarity search")

	return cmd
}

func runInit(cmd *cobra.Command, withIndex bool) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("forge already initialized in %s", cwd)
	}

	// Nothing is on disk yet, so this is the defaults plus environment.
	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	archive, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.ArchivePath(cwd)})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer archive.Close()

	var collections ports.CollectionManager
	if withIndex {
		repo, err := qdrant.NewRepository(cfg.Qdrant)
		if err != nil {
			return fmt.Errorf("connecting to qdrant: %w", err)
		}
		defer repo.Close()
		collections = repo
	}

	initHandler := handlers.NewInitHandler(archive, collections, embedder.VectorSizeFor(cfg.Embedder.Model))
	result, err := initHandler.Handle(ctx, cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Created archive: %s\n", result.ArchivePath)
	if result.CollectionName != "" {
		fmt.Printf("Created Qdrant collection: %s\n", result.CollectionName)
	}
	fmt.Println("Forge initialized successfully!")

	return nil
}
