package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/engine"
	"github.com/quarrydb/quarry/pkg/parser"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive SQL session",
		Long: `REPL starts an interactive session. Statements are parsed and applied
to an in-memory catalog, so CREATE TABLE and friends are visible to
later statements. Input spans lines until a terminating semicolon.`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	sess := sessionFrom(cmd.Context())
	exec := engine.New(engine.Config{Logger: sess.logger})

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sess.cfg.Prompt,
		HistoryFile:     sess.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Quarry SQL REPL")
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(sess.cfg.Prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands only outside a multi-line statement
		if buf.Len() == 0 && strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(cmd, exec, line)
			continue
		}

		// Accumulate multi-line SQL until semicolon
		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString(" ")
			rl.SetPrompt("   ...> ")
			continue
		}
		rl.SetPrompt(sess.cfg.Prompt)

		sql := buf.String()
		buf.Reset()

		if err := executeAndRender(cmd, exec, sql); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return nil
}

// executeAndRender parses the input, applies it to the catalog and prints
// the statement summary.
func executeAndRender(cmd *cobra.Command, exec *engine.Executor, sql string) error {
	stmts, err := parser.Parse(sql)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if err := exec.Execute(cmd.Context(), stmt); err != nil {
			return err
		}
	}
	return renderStatements(cmd.OutOrStdout(), stmts, outputFormat(cmd))
}

func handleDotCommand(cmd *cobra.Command, exec *engine.Executor, line string) {
	out := cmd.OutOrStdout()
	switch line {
	case ".help":
		_, _ = fmt.Fprintln(out, "Commands:")
		_, _ = fmt.Fprintln(out, "  .tables     List tables in the catalog")
		_, _ = fmt.Fprintln(out, "  .sequences  List sequences in the catalog")
		_, _ = fmt.Fprintln(out, "  .help       Show this help")
		_, _ = fmt.Fprintln(out, "  .quit       Exit the REPL")
	case ".tables":
		names := exec.Catalog().ListTables()
		if len(names) == 0 {
			_, _ = fmt.Fprintln(out, "(no tables)")
			return
		}
		for _, name := range names {
			_, _ = fmt.Fprintln(out, name)
		}
	case ".sequences":
		names := exec.Catalog().ListSequences()
		if len(names) == 0 {
			_, _ = fmt.Fprintln(out, "(no sequences)")
			return
		}
		for _, name := range names {
			_, _ = fmt.Fprintln(out, name)
		}
	default:
		_, _ = fmt.Fprintf(out, "Unknown command %s (try .help)\n", line)
	}
}
