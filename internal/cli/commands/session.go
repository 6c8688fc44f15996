// Package commands implements the Quarry subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/cli/config"
)

// sessionKey stores the session in the command context.
type sessionKey struct{}

// session bundles what every command needs from the root command.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

// WithSession attaches the loaded config and logger to the context.
func WithSession(ctx context.Context, cfg *config.Config, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, sessionKey{}, &session{cfg: cfg, logger: logger})
}

// sessionFrom retrieves the session, falling back to defaults when the
// command runs outside the root (as in tests).
func sessionFrom(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionKey{}).(*session); ok {
		return s
	}
	return &session{
		cfg:    &config.Config{OutputFormat: config.DefaultOutput, Prompt: config.DefaultPrompt},
		logger: slog.New(slog.DiscardHandler),
	}
}

// readInput resolves the SQL input for parse and lex: positional args
// joined, a --file argument, or stdin when neither is given.
func readInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// outputFormat resolves the effective output format for a command.
func outputFormat(cmd *cobra.Command) string {
	return sessionFrom(cmd.Context()).cfg.OutputFormat
}
