package sqlfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigFileForPath_ReadsNearestConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".sqlfmtrc"), "language: postgresql\nline_width: 100\n")

	cf, err := LoadConfigFileForPath(filepath.Join(dir, "query.sql"))
	require.NoError(t, err)
	assert.Equal(t, "postgresql", cf.Language)
	require.NotNil(t, cf.LineWidth)
	assert.Equal(t, 100, *cf.LineWidth)
}

func TestLoadConfigFileForPath_SearchesAncestorDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".sqlfmt.yaml"), "keyword_case: uppercase\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cf, err := LoadConfigFileForPath(filepath.Join(nested, "query.sql"))
	require.NoError(t, err)
	assert.Equal(t, "uppercase", cf.KeywordCase)
}

func TestLoadConfigFileForPath_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "repo", ".git"), 0o755))
	writeFile(t, filepath.Join(root, "sqlfmt.yaml"), "indent: \"    \"\n")
	nested := filepath.Join(root, "repo", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cf, err := LoadConfigFileForPath(filepath.Join(nested, "query.sql"))
	require.NoError(t, err)
	assert.Equal(t, "", cf.Indent)
}

func TestLoadConfigFileForPath_ReturnsEmptyWhenNoFileFound(t *testing.T) {
	dir := t.TempDir()
	cf, err := LoadConfigFileForPath(filepath.Join(dir, "query.sql"))
	require.NoError(t, err)
	assert.Equal(t, &ConfigFile{}, cf)
}

func TestLoadConfigFileForPath_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".sqlfmtrc"), "language: [this is not a scalar\n")

	_, err := LoadConfigFileForPath(filepath.Join(dir, "query.sql"))
	assert.Error(t, err)
}

func TestConfigFile_ApplyToConfig_OverlaysExplicitlySetFields(t *testing.T) {
	cf := &ConfigFile{
		Language:      "mysql",
		KeywordCase:   "uppercase",
		CommaPosition: "before",
	}
	cfg := NewDefaultConfig()
	cfg.Indent = "unchanged"

	require.NoError(t, cf.ApplyToConfig(cfg))
	assert.Equal(t, MySQL, cfg.Language)
	assert.Equal(t, KeywordCaseUppercase, cfg.KeywordCase)
	assert.Equal(t, CommaPositionBefore, cfg.CommaPosition)
	assert.Equal(t, "unchanged", cfg.Indent)
}

func TestConfigFile_ApplyToConfig_RejectsUnknownLanguage(t *testing.T) {
	cf := &ConfigFile{Language: "not-a-dialect"}
	err := cf.ApplyToConfig(NewDefaultConfig())
	assert.Error(t, err)
}

func TestConfigFile_ApplyToConfig_LeavesUnsetBoolFieldsAlone(t *testing.T) {
	cf := &ConfigFile{}
	cfg := NewDefaultConfig()
	cfg.DenseOperators = true

	require.NoError(t, cf.ApplyToConfig(cfg))
	assert.True(t, cfg.DenseOperators)
}

func TestConfigFile_ApplyToConfig_OverridesBoolFieldWhenExplicitlySet(t *testing.T) {
	disabled := false
	cf := &ConfigFile{DenseOperators: &disabled}
	cfg := NewDefaultConfig()
	cfg.DenseOperators = true

	require.NoError(t, cf.ApplyToConfig(cfg))
	assert.False(t, cfg.DenseOperators)
}
