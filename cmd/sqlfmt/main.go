// Command sqlfmt is the CLI entry point for the sqlfmt library.
package main

import (
	"os"

	"github.com/floriwanna/prettier-sql/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
