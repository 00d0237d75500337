package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List supported SQL dialects",
	Long:  `List the SQL dialects sqlfmt can format, along with the --lang value that selects each one.`,
	RunE:  runDialects,
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}

var supportedDialects = []struct {
	flag string
	name string
}{
	{"sql", "Standard SQL"},
	{"postgresql", "PostgreSQL"},
	{"mysql", "MySQL"},
	{"mariadb", "MariaDB"},
	{"plsql", "Oracle PL/SQL"},
	{"db2", "IBM Db2"},
	{"n1ql", "Couchbase N1QL"},
	{"bigquery", "Google BigQuery"},
	{"hive", "Apache Hive"},
	{"redshift", "Amazon Redshift"},
	{"spark", "Spark SQL"},
	{"tsql", "Microsoft T-SQL"},
}

func runDialects(cmd *cobra.Command, args []string) error {
	fmt.Println("Supported dialects:")
	for _, d := range supportedDialects {
		fmt.Printf("  %-12s %s\n", d.flag, d.name)
	}
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sqlfmt format --lang=postgresql file.sql")
	fmt.Println("  sqlfmt format --lang=plsql file.sql")
	return nil
}
