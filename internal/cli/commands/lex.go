package commands

import (
	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/pkg/parser"
)

// NewLexCommand creates the lex command.
func NewLexCommand() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "lex [sql...]",
		Short: "Tokenize SQL and print the token stream",
		Example: `  quarry lex "SELECT * FROM users"
  quarry lex --file schema.sql -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}

			tokens := parser.Tokenize(sql)
			return renderTokens(cmd.OutOrStdout(), tokens, outputFormat(cmd))
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read SQL from a file")
	return cmd
}
