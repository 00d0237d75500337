package sqlfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile mirrors the subset of Config a user can set from a
// .sqlfmtrc/.sqlfmt.yaml file. Pointer fields distinguish "unset" from
// "explicitly set to the zero value" so ApplyToConfig only overrides
// what the file actually names.
type ConfigFile struct {
	Language                   string `yaml:"language,omitempty"`
	Indent                     string `yaml:"indent,omitempty"`
	KeywordCase                string `yaml:"keyword_case,omitempty"`
	KeywordPosition            string `yaml:"keyword_position,omitempty"`
	AliasAs                    string `yaml:"alias_as,omitempty"`
	CommaPosition              string `yaml:"comma_position,omitempty"`
	LineWidth                  *int   `yaml:"line_width,omitempty"`
	LinesBetweenQueries        *int   `yaml:"lines_between_queries,omitempty"`
	TabulateAlias              *bool  `yaml:"tabulate_alias,omitempty"`
	DenseOperators             *bool  `yaml:"dense_operators,omitempty"`
	SemicolonNewline           *bool  `yaml:"semicolon_newline,omitempty"`
	BreakBeforeBooleanOperator *bool  `yaml:"break_before_boolean_operator,omitempty"`
	AlignColumnNames           *bool  `yaml:"align_column_names,omitempty"`
	AlignAssignments           *bool  `yaml:"align_assignments,omitempty"`
	AlignValues                *bool  `yaml:"align_values,omitempty"`
}

// LoadConfigFile searches the working directory and its ancestors (up to
// a git root), then the user's home directory, for a sqlfmt config file.
func LoadConfigFile() (*ConfigFile, error) {
	dir, err := os.Getwd()
	if err != nil {
		return &ConfigFile{}, nil
	}
	return loadConfigFileFromSearchRoot(dir)
}

// LoadConfigFileForPath is LoadConfigFile, but searches starting from
// the directory containing filePath rather than the working directory.
func LoadConfigFileForPath(filePath string) (*ConfigFile, error) {
	return loadConfigFileFromSearchRoot(filepath.Dir(filePath))
}

func loadConfigFileFromSearchRoot(root string) (*ConfigFile, error) {
	for _, path := range configSearchPaths(root) {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cf ConfigFile
		if err := yaml.Unmarshal(content, &cf); err != nil {
			return nil, fmt.Errorf("sqlfmt: parsing config file %s: %w", path, err)
		}
		return &cf, nil
	}
	return &ConfigFile{}, nil
}

var configFileNames = []string{".sqlfmtrc", ".sqlfmt.yaml", ".sqlfmt.yml", "sqlfmt.yaml", "sqlfmt.yml"}

func configSearchPaths(root string) []string {
	var paths []string

	dir := root
	for {
		for _, name := range configFileNames {
			paths = append(paths, filepath.Join(dir, name))
		}
		parent := filepath.Dir(dir)
		if parent == dir || isGitRoot(dir) {
			break
		}
		dir = parent
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".sqlfmtrc"),
			filepath.Join(homeDir, ".sqlfmt.yaml"),
			filepath.Join(homeDir, ".sqlfmt.yml"),
		)
	}

	return paths
}

func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// ParseInlineDialectHint scans the leading comment block of content for a
// "-- sqlfmt: dialect=<name>" directive, stopping at the first
// non-comment line.
func ParseInlineDialectHint(content string) (Language, bool) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "--") {
			if line != "" {
				break
			}
			continue
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "--"))
		if !strings.HasPrefix(comment, "sqlfmt:") {
			continue
		}
		directive := strings.TrimSpace(strings.TrimPrefix(comment, "sqlfmt:"))
		if !strings.HasPrefix(directive, "dialect=") {
			continue
		}
		if lang, ok := languageFromName(strings.TrimSpace(strings.TrimPrefix(directive, "dialect="))); ok {
			return lang, true
		}
	}
	return StandardSQL, false
}

func languageFromName(name string) (Language, bool) {
	switch strings.ToLower(name) {
	case "sql", "standard", string(StandardSQL):
		return StandardSQL, true
	case "postgresql", "postgres", string(PostgreSQL):
		return PostgreSQL, true
	case "mysql", string(MySQL):
		return MySQL, true
	case "mariadb", string(MariaDB):
		return MariaDB, true
	case "plsql", "pl/sql", "oracle", string(PLSQL):
		return PLSQL, true
	case "db2", string(DB2):
		return DB2, true
	case "n1ql", string(N1QL):
		return N1QL, true
	case "bigquery", string(BigQuery):
		return BigQuery, true
	case "hive", string(Hive):
		return Hive, true
	case "redshift", string(Redshift):
		return Redshift, true
	case "spark", string(Spark):
		return Spark, true
	case "tsql", "mssql", "sqlserver", string(TSQL):
		return TSQL, true
	}
	return StandardSQL, false
}

// ApplyToConfig overlays every field the file explicitly set onto config.
func (cf *ConfigFile) ApplyToConfig(config *Config) error {
	if cf.Language != "" {
		lang, ok := languageFromName(cf.Language)
		if !ok {
			return fmt.Errorf("sqlfmt: unknown language in config: %s", cf.Language)
		}
		config.Language = lang
	}
	if cf.Indent != "" {
		config.Indent = cf.Indent
	}
	if cf.KeywordCase != "" {
		kc, ok := keywordCaseFromName(cf.KeywordCase)
		if !ok {
			return fmt.Errorf("sqlfmt: unknown keyword_case in config: %s", cf.KeywordCase)
		}
		config.KeywordCase = kc
	}
	if cf.KeywordPosition != "" {
		kp, ok := keywordPositionFromName(cf.KeywordPosition)
		if !ok {
			return fmt.Errorf("sqlfmt: unknown keyword_position in config: %s", cf.KeywordPosition)
		}
		config.KeywordPosition = kp
	}
	if cf.AliasAs != "" {
		policy, ok := aliasAsFromName(cf.AliasAs)
		if !ok {
			return fmt.Errorf("sqlfmt: unknown alias_as in config: %s", cf.AliasAs)
		}
		config.AliasAs = policy
	}
	if cf.CommaPosition != "" {
		pos, ok := commaPositionFromName(cf.CommaPosition)
		if !ok {
			return fmt.Errorf("sqlfmt: unknown comma_position in config: %s", cf.CommaPosition)
		}
		config.CommaPosition = pos
	}
	if cf.LineWidth != nil {
		config.LineWidth = *cf.LineWidth
	}
	if cf.LinesBetweenQueries != nil {
		config.LinesBetweenQueries = *cf.LinesBetweenQueries
	}
	if cf.TabulateAlias != nil {
		config.TabulateAlias = *cf.TabulateAlias
	}
	if cf.DenseOperators != nil {
		config.DenseOperators = *cf.DenseOperators
	}
	if cf.SemicolonNewline != nil {
		config.SemicolonNewline = *cf.SemicolonNewline
	}
	if cf.BreakBeforeBooleanOperator != nil {
		config.BreakBeforeBooleanOperator = *cf.BreakBeforeBooleanOperator
	}
	if cf.AlignColumnNames != nil {
		config.AlignColumnNames = *cf.AlignColumnNames
	}
	if cf.AlignAssignments != nil {
		config.AlignAssignments = *cf.AlignAssignments
	}
	if cf.AlignValues != nil {
		config.AlignValues = *cf.AlignValues
	}
	return nil
}

func keywordCaseFromName(s string) (KeywordCase, bool) {
	switch strings.ToLower(s) {
	case "preserve":
		return KeywordCasePreserve, true
	case "uppercase":
		return KeywordCaseUppercase, true
	case "lowercase":
		return KeywordCaseLowercase, true
	}
	return "", false
}

func keywordPositionFromName(s string) (KeywordPosition, bool) {
	switch strings.ToLower(s) {
	case "standard":
		return KeywordPositionStandard, true
	case "tenspaceleft", "ten_space_left":
		return KeywordPositionTenSpaceLeft, true
	case "tenspaceright", "ten_space_right":
		return KeywordPositionTenSpaceRight, true
	}
	return "", false
}

func aliasAsFromName(s string) (AliasAsPolicy, bool) {
	switch strings.ToLower(s) {
	case "always":
		return AliasAsAlways, true
	case "never":
		return AliasAsNever, true
	case "select":
		return AliasAsSelect, true
	case "explicit":
		return AliasAsExplicit, true
	}
	return "", false
}

func commaPositionFromName(s string) (CommaPosition, bool) {
	switch strings.ToLower(s) {
	case "after":
		return CommaPositionAfter, true
	case "before":
		return CommaPositionBefore, true
	case "tabular":
		return CommaPositionTabular, true
	}
	return "", false
}
