package main

// Default limits for CLI commands.
const (
	DefaultSearchLimit  = 10
	DefaultListLimit    = 50
	DefaultExportLimit  = 1000
	DefaultHistoryLimit = 50
	DefaultBatchCount   = 20
)

// DefaultBatchOutput is where batch writes its collection document.
const DefaultBatchOutput = "all_characters.md"

// Output formats.
var (
	generateFormats = []string{"markdown", "json"}
	exportFormats   = []string{"json", "csv", "markdown"}
)
