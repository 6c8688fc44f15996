// Package config provides configuration management for the Quarry CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	// OutputFormat selects how results are rendered (table|json)
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging
	Verbose bool `koanf:"verbose"`
	// HistoryFile is where the REPL persists its input history
	HistoryFile string `koanf:"history_file"`
	// Prompt is the REPL prompt
	Prompt string `koanf:"prompt"`
}

// Defaults.
const (
	DefaultOutput      = "table"
	DefaultHistoryFile = ".quarry_history"
	DefaultPrompt      = "quarry> "
)
