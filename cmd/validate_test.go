package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidateTestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:  "validate [files...]",
		Args: cobra.ArbitraryArgs,
		RunE: runValidate,
	}
	registerFormatFlags(c)
	c.Flags().StringVar(&outputFormat, "output", "text", "Output format")
	c.Flags().BoolVar(&showDiff, "diff", false, "Show diff")
	return c
}

// runValidate calls os.Exit on a non-zero summary, which would kill the
// test binary. Every case below stays inside the "all valid" path so
// os.Exit is never reached.
func TestValidateCommand_ReportsAlreadyFormattedFile(t *testing.T) {
	resetFormatFlags()
	outputFormat = "text"
	showDiff = false

	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT\n  a\nFROM\n  t;"), 0o644))

	cmd := newValidateTestCmd()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	cmd.SetArgs([]string{path})
	runErr := cmd.Execute()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	require.NoError(t, runErr)
	assert.True(t, strings.Contains(output, "ok"))
}

func TestValidateCommand_JSONOutputDescribesResult(t *testing.T) {
	resetFormatFlags()
	outputFormat = "json"
	showDiff = false

	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT\n  a\nFROM\n  t;"), 0o644))

	cmd := newValidateTestCmd()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	cmd.SetArgs([]string{"--output=json", path})
	runErr := cmd.Execute()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	require.NoError(t, runErr)

	var summary ValidationSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalFiles)
	assert.Equal(t, 1, summary.ValidFiles)
	assert.Equal(t, 0, summary.InvalidFiles)
}

func TestCheckCommand_IsAnAliasForValidate(t *testing.T) {
	got := reflect.ValueOf(checkCmd.RunE).Pointer()
	want := reflect.ValueOf(runValidate).Pointer()
	assert.Equal(t, want, got)
}
