package sqlfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreFile_ShouldIgnore_EmptyPatternsNeverIgnore(t *testing.T) {
	ig := &IgnoreFile{}
	assert.False(t, ig.ShouldIgnore("anything.sql"))
}

func TestIgnoreFile_ShouldIgnore_MatchesExactBasename(t *testing.T) {
	ig := &IgnoreFile{patterns: []string{"schema.sql"}}
	assert.True(t, ig.ShouldIgnore("migrations/schema.sql"))
	assert.False(t, ig.ShouldIgnore("migrations/other.sql"))
}

func TestIgnoreFile_ShouldIgnore_MatchesGlobExtension(t *testing.T) {
	ig := &IgnoreFile{patterns: []string{"*.generated.sql"}}
	assert.True(t, ig.ShouldIgnore("models/user.generated.sql"))
	assert.False(t, ig.ShouldIgnore("models/user.sql"))
}

func TestIgnoreFile_ShouldIgnore_DirectoryPrefixWithTrailingSlash(t *testing.T) {
	ig := &IgnoreFile{patterns: []string{"vendor/"}}
	assert.True(t, ig.ShouldIgnore("vendor/lib.sql"))
	assert.True(t, ig.ShouldIgnore("vendor/nested/lib.sql"))
	assert.False(t, ig.ShouldIgnore("vendored.sql"))
}

func TestIgnoreFile_ShouldIgnore_GlobstarMatchesAnyDepth(t *testing.T) {
	ig := &IgnoreFile{patterns: []string{"migrations/**/*.sql"}}
	assert.True(t, ig.ShouldIgnore("migrations/2024/01/init.sql"))
	assert.True(t, ig.ShouldIgnore("migrations/init.sql"))
	assert.False(t, ig.ShouldIgnore("seeds/init.sql"))
}

func TestIgnoreFile_ShouldIgnore_GlobstarWithoutSuffixMatchesPrefixSubtree(t *testing.T) {
	ig := &IgnoreFile{patterns: []string{"build/**"}}
	assert.True(t, ig.ShouldIgnore("build/out/report.sql"))
	assert.False(t, ig.ShouldIgnore("src/build/report.sql"))
}

func TestParseIgnorePatterns_SkipsBlankLinesAndComments(t *testing.T) {
	got := parseIgnorePatterns([]byte("# a comment\n\nvendor/\n  *.tmp.sql  \n"))
	assert.Equal(t, []string{"vendor/", "*.tmp.sql"}, got)
}
