package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt"
)

var (
	outputFormat string
	showDiff     bool
)

// ValidationResult is the outcome of validating a single file or stdin.
type ValidationResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Diff  string `json:"diff,omitempty"`
	Error string `json:"error,omitempty"`
}

// ValidationSummary aggregates every ValidationResult from one run.
type ValidationSummary struct {
	TotalFiles   int                `json:"total_files"`
	ValidFiles   int                `json:"valid_files"`
	InvalidFiles int                `json:"invalid_files"`
	ErrorFiles   int                `json:"error_files"`
	Results      []ValidationResult `json:"results"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check if SQL files are properly formatted",
	Long: `Validate that SQL files are properly formatted according to the specified dialect.

This command checks if files would be changed by running format. It's useful for
CI/CD pipelines to ensure code is properly formatted.

Exit codes:
  0 - All files are properly formatted
  1 - One or more files need formatting
  2 - Error occurred

Examples:
  sqlfmt validate file.sql                    # Validate single file
  sqlfmt validate --lang=postgresql *.sql     # Validate all SQL files
  sqlfmt validate --output=json *.sql         # JSON output mode
  sqlfmt validate --diff file.sql             # Show what would change
  cat file.sql | sqlfmt validate -            # Validate stdin`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	registerFormatFlags(validateCmd)
	validateCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format (text or json)")
	validateCmd.Flags().BoolVar(&showDiff, "diff", false, "Show differences for files that need formatting")
}

func shouldValidateStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

func runValidate(cmd *cobra.Command, args []string) error {
	config := buildConfig(cmd)
	summary := &ValidationSummary{Results: make([]ValidationResult, 0)}

	if shouldValidateStdin(args) {
		summary.Results = append(summary.Results, validateStdinWithResult(config))
	} else {
		for _, filename := range args {
			summary.Results = append(summary.Results, validateFileWithResult(filename, config))
		}
	}

	for _, r := range summary.Results {
		summary.TotalFiles++
		switch {
		case r.Error != "":
			summary.ErrorFiles++
		case r.Valid:
			summary.ValidFiles++
		default:
			summary.InvalidFiles++
		}
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("failed to encode validation summary: %w", err)
		}
	} else {
		printValidationText(summary)
	}

	if summary.ErrorFiles > 0 {
		os.Exit(2)
	}
	if summary.InvalidFiles > 0 {
		os.Exit(1)
	}
	return nil
}

func printValidationText(summary *ValidationSummary) {
	for _, r := range summary.Results {
		switch {
		case r.Error != "":
			fmt.Printf("%s: error: %s\n", r.File, r.Error)
		case r.Valid:
			fmt.Printf("%s: ok\n", r.File)
		default:
			fmt.Printf("%s: needs formatting\n", r.File)
			if showDiff && r.Diff != "" {
				fmt.Println(r.Diff)
			}
		}
	}
	fmt.Printf("\n%d file(s): %d ok, %d need formatting, %d error(s)\n",
		summary.TotalFiles, summary.ValidFiles, summary.InvalidFiles, summary.ErrorFiles)
}

func validateStdinWithResult(config *sqlfmt.Config) ValidationResult {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ValidationResult{File: "-", Error: err.Error()}
	}
	return validateContent("-", string(input), config)
}

func validateFileWithResult(filename string, config *sqlfmt.Config) ValidationResult {
	content, err := os.ReadFile(filename)
	if err != nil {
		return ValidationResult{File: filename, Error: err.Error()}
	}
	return validateContent(filename, string(content), config)
}

func validateContent(name, content string, config *sqlfmt.Config) ValidationResult {
	formatted, err := runFormatter(content, config)
	if err != nil {
		return ValidationResult{File: name, Error: err.Error()}
	}

	if formatted == strings.TrimRight(content, "\n")+"\n" || formatted == content {
		return ValidationResult{File: name, Valid: true}
	}

	result := ValidationResult{File: name, Valid: false}
	if showDiff {
		result.Diff = formatted
	}
	return result
}
