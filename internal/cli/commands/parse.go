package commands

import (
	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/pkg/parser"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "parse [sql...]",
		Short: "Parse SQL and print the resulting statements",
		Long: `Parse reads SQL from the arguments, a file, or stdin, and prints a
summary of each parsed statement. With --output json the full syntax
tree is printed instead.`,
		Example: `  quarry parse "SELECT id FROM users WHERE age >= 18"
  quarry parse --file schema.sql
  echo "CREATE TABLE t (id INTEGER)" | quarry parse -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}

			stmts, err := parser.Parse(sql)
			if err != nil {
				return err
			}

			return renderStatements(cmd.OutOrStdout(), stmts, outputFormat(cmd))
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read SQL from a file")
	return cmd
}
