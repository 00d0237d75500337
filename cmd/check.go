package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check if SQL files are properly formatted (alias for validate)",
	Long: `Check that SQL files are properly formatted according to the specified dialect.

This command is an alias for 'validate'. It's useful for CI/CD pipelines to
ensure code is properly formatted without rewriting any files.

Exit codes:
  0 - All files are properly formatted
  1 - One or more files need formatting
  2 - Error occurred

Examples:
  sqlfmt check file.sql                    # Check single file
  sqlfmt check --lang=postgresql *.sql     # Check all SQL files
  sqlfmt check --output=json *.sql         # JSON output mode
  sqlfmt check --diff file.sql             # Show what would change
  cat file.sql | sqlfmt check -            # Check stdin`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	registerFormatFlags(checkCmd)
	checkCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format (text or json)")
	checkCmd.Flags().BoolVar(&showDiff, "diff", false, "Show differences for files that need formatting")
}
