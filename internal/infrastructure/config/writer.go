package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Forge Configuration

generation:
  preset: default
  # parameters_file: params.yaml
  # workers: 4

# catalog:
#   path: catalog.yaml (or set FORGE_CATALOG env var)

archive:
  path: .forge/archive.db

embedder:
  provider: openai
  model: text-embedding-3-small
  # api_key: your-api-key (or set OPENAI_API_KEY env var)

qdrant:
  host: localhost
  port: 6334
  collection: forge_characters
  # api_key: your-api-key (for Qdrant Cloud)
`

// WriteDefault creates the .forge directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
