// Package cmd implements the sqlfmt command-line interface.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/floriwanna/prettier-sql/internal/version"
)

// log is the CLI's shared logger. Warnings (a malformed config file, an
// unrecognized --lang value) go through it instead of fmt.Fprintf so
// they're consistently leveled and parseable in CI output.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sqlfmt",
	Short: "A SQL formatter for multiple dialects",
	Long: `sqlfmt is a library and CLI tool for pretty-printing SQL queries across
multiple dialects, including Standard SQL, PostgreSQL, MySQL, T-SQL, PL/SQL,
BigQuery, Hive, Spark, Redshift, DB2, N1QL and MariaDB.

It tokenizes a query and re-renders it through a configurable indentation
and alignment engine - it does not parse SQL into an AST, validate syntax,
or execute queries.`,
	Version: "v" + version.Version,
}

// Execute runs the root command; main.go's only job is to call this.
func Execute() error {
	return rootCmd.Execute()
}

var verbose bool

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("sqlfmt version v" + version.Version + "\n")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug-level logging")

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
