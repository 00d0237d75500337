package sqlfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_DefaultsToStandardSQL(t *testing.T) {
	out, err := Format("SELECT a, b FROM t WHERE a = 1;")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a,\n  b\nFROM\n  t\nWHERE\n  a = 1;", out)
}

func TestFormat_AcceptsAConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Language = PostgreSQL
	cfg.Indent = "    "

	out, err := Format("SELECT a FROM t;", cfg)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n    a\nFROM\n    t;", out)
}

func TestFormat_PanicsOnMoreThanOneConfig(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Format("SELECT 1;", NewDefaultConfig(), NewDefaultConfig())
	})
}

func TestFormat_NilConfigFallsBackToDefault(t *testing.T) {
	out, err := Format("SELECT 1;", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  1;", out)
}

func TestPrettyFormat_WrapsTokensInANSIEscapes(t *testing.T) {
	out, err := PrettyFormat("SELECT 1;")
	require.NoError(t, err)
	assert.NotEqual(t, "SELECT\n  1;", out)
	assert.True(t, strings.Contains(out, "\x1b["))
	assert.True(t, strings.Contains(out, "SELECT"))
}

func TestMustFormat_ReturnsFormattedQuery(t *testing.T) {
	assert.Equal(t, "SELECT\n  1;", MustFormat("SELECT 1;"))
}

func TestMustFormat_PanicsOnError(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Params = NewMapParams(map[string]string{"known": "1"})

	assert.Panics(t, func() {
		MustFormat("SELECT :missing;", cfg)
	})
}

func TestDedent_StripsCommonLeadingWhitespace(t *testing.T) {
	got := Dedent("\n  SELECT a\n  FROM t\n")
	assert.Equal(t, "\nSELECT a\nFROM t\n", got)
}
