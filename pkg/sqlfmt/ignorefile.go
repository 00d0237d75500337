package sqlfmt

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFile is a parsed .sqlfmtignore: a gitignore-style list of glob
// patterns naming paths the CLI should skip.
type IgnoreFile struct {
	patterns []string
}

// LoadIgnoreFile searches the working directory and its ancestors for a
// .sqlfmtignore file and parses it.
func LoadIgnoreFile() (*IgnoreFile, error) {
	dir, err := os.Getwd()
	if err != nil {
		return &IgnoreFile{}, nil
	}

	for {
		path := filepath.Join(dir, ".sqlfmtignore")
		if content, err := os.ReadFile(path); err == nil {
			return &IgnoreFile{patterns: parseIgnorePatterns(content)}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return &IgnoreFile{}, nil
}

func parseIgnorePatterns(content []byte) []string {
	var patterns []string
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// ShouldIgnore reports whether filePath matches one of the file's patterns.
func (ig *IgnoreFile) ShouldIgnore(filePath string) bool {
	if len(ig.patterns) == 0 {
		return false
	}

	relPath, err := filepath.Rel(".", filePath)
	if err != nil {
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range ig.patterns {
		if ig.matchPattern(relPath, pattern) {
			return true
		}
	}
	return false
}

func (ig *IgnoreFile) matchPattern(path, pattern string) bool {
	if strings.HasSuffix(pattern, "/") {
		trimmed := strings.TrimSuffix(pattern, "/")
		if path == trimmed || strings.HasPrefix(path, trimmed+"/") {
			return true
		}
	}

	if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
		return true
	}
	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "**") {
		return ig.matchGlobstar(path, pattern)
	}
	return false
}

func (ig *IgnoreFile) matchGlobstar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	if len(parts) != 2 {
		return false
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if suffix == "" {
		return prefix == "" || strings.HasPrefix(path, prefix+"/")
	}

	remaining := path
	if prefix != "" {
		remaining = strings.TrimPrefix(path, prefix+"/")
	}

	if strings.Contains(suffix, "/") {
		matched, err := filepath.Match(suffix, remaining)
		return err == nil && matched
	}
	matched, err := filepath.Match(suffix, filepath.Base(remaining))
	return err == nil && matched
}
