// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for forge configuration.
	DefaultConfigDir = ".forge"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultArchiveFile is the archive database file name inside the config dir.
	DefaultArchiveFile = "archive.db"
)

// ErrNotInitialized is returned by Load when no config file exists.
var ErrNotInitialized = errors.New("forge is not initialized")

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Generation GenerationConfig `yaml:"generation,omitempty"`
	Catalog    CatalogConfig    `yaml:"catalog,omitempty"`
	Archive    SQLiteConfig     `yaml:"archive,omitempty"`
	Embedder   EmbedderConfig   `yaml:"embedder,omitempty"`
	Qdrant     QdrantConfig     `yaml:"qdrant,omitempty"`
}

// GenerationConfig holds defaults for generate and batch.
type GenerationConfig struct {
	// Preset names the parameter preset used when no flags override it.
	Preset string `yaml:"preset,omitempty"`
	// ParametersFile is a YAML or JSON parameters document applied over the preset.
	ParametersFile string `yaml:"parameters_file,omitempty"`
	// Workers bounds batch concurrency; zero means one per CPU.
	Workers int `yaml:"workers,omitempty"`
}

// CatalogConfig points at an optional catalog override file.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite archive.
type SQLiteConfig struct {
	// Path is the database file. Relative paths are resolved against the
	// project directory.
	Path string `yaml:"path,omitempty"`
}

// EmbedderConfig holds configuration for the embedding provider.
type EmbedderConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	// BaseURL points at an OpenAI-compatible endpoint. Empty uses OpenAI.
	BaseURL string `yaml:"base_url,omitempty"`
}

// QdrantConfig holds configuration for the Qdrant vector database.
type QdrantConfig struct {
	Host       string `yaml:"host,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
}

// envOverrides are the environment variables read on top of the file.
type envOverrides struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	QdrantAPIKey string `env:"QDRANT_API_KEY"`
	CatalogPath  string `env:"FORGE_CATALOG"`
	ArchivePath  string `env:"FORGE_ARCHIVE"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Preset: "default",
		},
		Archive: SQLiteConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultArchiveFile),
		},
		Embedder: EmbedderConfig{
			Provider: "openai",
			Model:    "text-embedding-3-small",
		},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "forge_characters",
		},
	}
}

// Load loads configuration from the .forge directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s not found (run 'forge init' first)", ErrNotInitialized, configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is Load, falling back to defaults plus environment
// overrides when the project has not been initialized.
func LoadOrDefault(basePath string) (*Config, error) {
	cfg, err := Load(basePath)
	if errors.Is(err, ErrNotInitialized) {
		cfg = Default()
		if err := cfg.applyEnvOverrides(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// applyEnvOverrides fills API keys the file left empty and lets FORGE_*
// variables replace paths.
func (c *Config) applyEnvOverrides() error {
	var vars envOverrides
	if err := env.Parse(&vars); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if vars.OpenAIAPIKey != "" && c.Embedder.APIKey == "" {
		c.Embedder.APIKey = vars.OpenAIAPIKey
	}
	if vars.QdrantAPIKey != "" && c.Qdrant.APIKey == "" {
		c.Qdrant.APIKey = vars.QdrantAPIKey
	}
	if vars.CatalogPath != "" {
		c.Catalog.Path = vars.CatalogPath
	}
	if vars.ArchivePath != "" {
		c.Archive.Path = vars.ArchivePath
	}
	return nil
}

// ArchivePath returns the archive database path resolved against basePath.
// The special path ":memory:" is returned unchanged.
func (c *Config) ArchivePath(basePath string) string {
	return resolve(basePath, c.Archive.Path)
}

// CatalogPath returns the catalog override path resolved against basePath,
// or "" when none is configured.
func (c *Config) CatalogPath(basePath string) string {
	if c.Catalog.Path == "" {
		return ""
	}
	return resolve(basePath, c.Catalog.Path)
}

// ParametersPath returns the parameters file resolved against basePath, or "".
func (c *Config) ParametersPath(basePath string) string {
	if c.Generation.ParametersFile == "" {
		return ""
	}
	return resolve(basePath, c.Generation.ParametersFile)
}

func resolve(basePath, path string) string {
	if path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}

// ConfigDir returns the path to the .forge config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a forge config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
