package sqlfmt

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DetectDialect attempts to automatically infer a SQL dialect from a
// file path and/or its content. It tries the file extension first, then
// falls back to content-based heuristics, and finally defaults to
// StandardSQL with ok=false when nothing matches.
func DetectDialect(filePath string, content string) (Language, bool) {
	if lang, ok := detectFromFileExtension(filePath); ok {
		return lang, true
	}
	if lang, ok := detectFromContent(content); ok {
		return lang, true
	}
	return StandardSQL, false
}

var extensionHints = map[string]Language{
	".mysql":    MySQL,
	".mariadb":  MariaDB,
	".psql":     PostgreSQL,
	".pgsql":    PostgreSQL,
	".plsql":    PLSQL,
	".ora":      PLSQL,
	".bq":       BigQuery,
	".hql":      Hive,
	".n1ql":     N1QL,
	".db2":      DB2,
	".redshift": Redshift,
	".spark":    Spark,
	".tsql":     TSQL,
}

func detectFromFileExtension(filePath string) (Language, bool) {
	base := strings.ToLower(filepath.Base(filePath))

	for suffix, lang := range extensionHints {
		if strings.HasSuffix(base, suffix+".sql") || strings.HasSuffix(base, suffix) {
			return lang, true
		}
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".psql", ".pgsql":
		return PostgreSQL, true
	case ".mysql":
		return MySQL, true
	case ".plsql":
		return PLSQL, true
	case ".hql":
		return Hive, true
	case ".n1ql":
		return N1QL, true
	}

	return StandardSQL, false
}

func detectFromContent(content string) (Language, bool) {
	content = strings.ToLower(content)

	switch {
	case hasPostgreSQLIndicators(content):
		return PostgreSQL, true
	case hasPLSQLIndicators(content):
		return PLSQL, true
	case hasTSQLIndicators(content):
		return TSQL, true
	case hasBigQueryIndicators(content):
		return BigQuery, true
	case hasHiveIndicators(content):
		return Hive, true
	case hasMySQLIndicators(content):
		return MySQL, true
	}

	return StandardSQL, false
}

func hasPostgreSQLIndicators(content string) bool {
	return matchesAnyPattern(content, []string{
		`::[a-z_][a-z0-9_]*`, `\$\$`, `\$[0-9]+`, `\breturning\b`,
		`->>`, `#>`, `@>`, `<@`, `\bjsonb?\b`, `\bserial\b`, `\bbigserial\b`,
		`\bgenerate_series\b`, `\bunnest\b`, `\blateral\b`, `\bilike\b`,
	})
}

func hasMySQLIndicators(content string) bool {
	return matchesAnyPattern(content, []string{
		"`[^`]+`", `\bon duplicate key update\b`, `\binsert ignore\b`,
		`\breplace into\b`, `\bgroup_concat\b`, `\bauto_increment\b`,
		`\bengine\s*=\s*[a-z_]+`, `\bstraight_join\b`,
	})
}

func hasPLSQLIndicators(content string) bool {
	return matchesAnyPattern(content, []string{
		`\bconnect by\b`, `\bstart with\b`, `\brownum\b`, `\bdual\b`,
		`\bexception\b.*\bwhen\b`, `\bexecute immediate\b`, `\bbulk collect\b`,
		`\bforall\b`, `\bref cursor\b`, `:=`,
	})
}

func hasTSQLIndicators(content string) bool {
	return matchesAnyPattern(content, []string{
		`\[[^\]]+\]`, `\btop\s+\d+\b`, `\boutput\b.*\binserted\b`,
		`\bidentity\s*\(`, `\bnolock\b`,
	})
}

func hasBigQueryIndicators(content string) bool {
	return matchesAnyPattern(content, []string{
		`\bunnest\s*\(`, `\bqualify\b`, `\bsafe_cast\b`, `\bgenerate_array\b`,
	})
}

func hasHiveIndicators(content string) bool {
	return matchesAnyPattern(content, []string{
		`\blateral view\b`, `\bdistribute by\b`, `\bcluster by\b`, `\btablesample\b`,
	})
}

func matchesAnyPattern(content string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := regexp.MatchString(pattern, content); matched {
			return true
		}
	}
	return false
}
