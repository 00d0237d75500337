package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFormatFlags() {
	lang = defaultSQLDialect
	indent = "  "
	write = false
	color = false
	keywordCase = "uppercase"
	keywordPosition = "standard"
	aliasAs = "select"
	commaPosition = "after"
	linesBetween = 1
	lineWidth = 50
	tabulateAlias = false
	denseOperators = false
	semicolonNewline = false
	breakBeforeBooleanOperator = true
	autoDetect = false
	alignColumnNames = false
	alignAssignments = false
	alignValues = false
}

func newFormatTestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:  "format [files...]",
		Args: cobra.ArbitraryArgs,
		RunE: runFormat,
	}
	registerFormatFlags(c)
	return c
}

func runWithStdin(t *testing.T, cmd *cobra.Command, input string, args []string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	oldStdin := os.Stdin
	stdinReader, stdinWriter, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = stdinReader

	go func() {
		defer func() { _ = stdinWriter.Close() }()
		_, _ = stdinWriter.WriteString(input)
	}()

	cmd.SetArgs(args)
	runErr := cmd.Execute()

	_ = w.Close()
	os.Stdout = oldStdout
	os.Stdin = oldStdin

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return strings.TrimSpace(buf.String()), runErr
}

func TestFormatCommand_StdinCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		args     []string
		expected string
	}{
		{
			name:  "default dialect via dash",
			input: "SELECT * FROM users WHERE id = 1",
			args:  []string{"-"},
			expected: `SELECT
  *
FROM
  users
WHERE
  id = 1`,
		},
		{
			name:  "postgresql type cast",
			input: "SELECT 'x'::text FROM users",
			args:  []string{"--lang=postgresql", "-"},
			expected: `SELECT
  'x'::text
FROM
  users`,
		},
		{
			name:  "custom indentation",
			input: "SELECT * FROM users",
			args:  []string{"--indent=    ", "-"},
			expected: `SELECT
    *
FROM
    users`,
		},
		{
			name:  "lowercase keyword case",
			input: "SELECT * FROM users",
			args:  []string{"--keyword-case=lowercase", "-"},
			expected: `select
  *
from
  users`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFormatFlags()
			cmd := newFormatTestCmd()

			output, err := runWithStdin(t, cmd, tt.input, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestFormatCommand_AutoDetectOverridesLang(t *testing.T) {
	resetFormatFlags()
	cmd := newFormatTestCmd()

	output, err := runWithStdin(t, cmd, "SELECT a::int FROM t;", []string{"--auto-detect", "-"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a::int\nFROM\n  t;", output)
}

func TestFormatFile_WritesInPlaceWithWriteFlag(t *testing.T) {
	resetFormatFlags()

	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT * FROM users;"), 0o644))

	cmd := newFormatTestCmd()
	write = true

	output, err := runWithStdin(t, cmd, "", []string{"--write", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Formatted")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  *\nFROM\n  users;", string(got))
}

func TestFormatFile_SkipsEmptyFiles(t *testing.T) {
	resetFormatFlags()

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.sql")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	cmd := newFormatTestCmd()
	write = true

	output, err := runWithStdin(t, cmd, "", []string{"--write", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Skipped")
}
