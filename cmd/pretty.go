package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt"
)

var prettyFormatCmd = &cobra.Command{
	Use:   "pretty-format [files...]",
	Short: "Format SQL files or stdin with color formatting",
	Long: `Format SQL files or standard input with ANSI color formatting.
This is equivalent to running 'format --color'.`,
	Args: cobra.ArbitraryArgs,
	RunE: runPrettyFormat,
}

var prettyPrintCmd = &cobra.Command{
	Use:   "pretty-print [files...]",
	Short: "Format and print SQL files or stdin with color formatting",
	Long: `Format and print SQL files or standard input with ANSI color formatting.
This command always prints to stdout and cannot write to files.`,
	Args: cobra.ArbitraryArgs,
	RunE: runPrettyPrint,
}

func init() {
	rootCmd.AddCommand(prettyFormatCmd)
	rootCmd.AddCommand(prettyPrintCmd)
	registerFormatFlags(prettyFormatCmd)
	registerFormatFlags(prettyPrintCmd)
}

func runPrettyFormat(cmd *cobra.Command, args []string) error {
	color = true
	config := buildConfig(cmd)

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return prettyFormatStdin(config)
	}
	for _, filename := range args {
		if err := prettyFormatFile(filename, config); err != nil {
			return fmt.Errorf("failed to pretty format %s: %w", filename, err)
		}
	}
	return nil
}

func runPrettyPrint(cmd *cobra.Command, args []string) error {
	color = true
	config := buildConfig(cmd)

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return prettyPrintStdin(config)
	}
	for _, filename := range args {
		if err := prettyPrintFile(filename, config); err != nil {
			return fmt.Errorf("failed to pretty print %s: %w", filename, err)
		}
	}
	return nil
}

func prettyFormatStdin(config *sqlfmt.Config) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	formatted, err := sqlfmt.PrettyFormat(string(input), config)
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func prettyFormatFile(filename string, config *sqlfmt.Config) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	formatted, err := sqlfmt.PrettyFormat(string(content), config)
	if err != nil {
		return err
	}

	if write {
		if err := os.WriteFile(filename, []byte(formatted), 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("Pretty formatted %s\n", filename)
	} else {
		fmt.Print(formatted)
	}
	return nil
}

func prettyPrintStdin(config *sqlfmt.Config) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return sqlfmt.PrettyPrint(string(input), config)
}

func prettyPrintFile(filename string, config *sqlfmt.Config) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return sqlfmt.PrettyPrint(string(content), config)
}
