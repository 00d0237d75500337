// Package dialects provides the per-language Dialect Spec data tables and
// thin formatter wrappers the public API dispatches to. Each dialect
// formatter only configures core.TokenizerConfig and, where the
// language needs it, a tokenOverride hook; all rendering logic lives in
// package core.
package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

// Re-exported so callers never need to import pkg/sqlfmt/core directly.
type (
	Formatter       = core.Formatter
	Config          = core.Config
	Language        = core.Language
	KeywordCase     = core.KeywordCase
	TokenizerConfig = core.TokenizerConfig
	ColorConfig     = core.ColorConfig
)

const (
	StandardSQL = core.StandardSQL
	BigQuery    = core.BigQuery
	DB2         = core.DB2
	Hive        = core.Hive
	MariaDB     = core.MariaDB
	MySQL       = core.MySQL
	N1QL        = core.N1QL
	PLSQL       = core.PLSQL
	PostgreSQL  = core.PostgreSQL
	Redshift    = core.Redshift
	Spark       = core.Spark
	TSQL        = core.TSQL

	KeywordCasePreserve  = core.KeywordCasePreserve
	KeywordCaseUppercase = core.KeywordCaseUppercase
	KeywordCaseLowercase = core.KeywordCaseLowercase
)

// standardSQLReservedTopLevelWords are clause-starting keywords: each
// one resets to the query's base indent and opens a new top-level frame.
var standardSQLReservedTopLevelWords = []string{
	"SELECT", "FROM", "WHERE", "GROUP BY", "ORDER BY", "HAVING",
	"LIMIT", "OFFSET", "INSERT INTO", "INSERT", "VALUES", "UPDATE", "SET",
	"DELETE FROM", "DELETE", "CREATE TABLE", "CREATE VIEW", "CREATE OR REPLACE VIEW",
	"ALTER TABLE", "DROP TABLE", "TRUNCATE TABLE", "WITH",
}

// standardSQLReservedTopLevelWordsNoIndent start a new top-level section
// but, unlike standardSQLReservedTopLevelWords, don't open a nested frame.
var standardSQLReservedTopLevelWordsNoIndent = []string{
	"UNION", "UNION ALL", "INTERSECT", "EXCEPT", "MINUS",
}

// standardSQLReservedNewlineWords always start their own line without
// otherwise touching the indentation stack: joins and CASE branches.
var standardSQLReservedNewlineWords = []string{
	"AND", "OR",
	"WHEN", "THEN", "ELSE",
	"JOIN", "INNER JOIN", "LEFT JOIN", "LEFT OUTER JOIN",
	"RIGHT JOIN", "RIGHT OUTER JOIN", "FULL JOIN", "FULL OUTER JOIN", "CROSS JOIN",
}

// standardSQLReservedWords are reserved words rendered inline with
// ordinary spacing.
var standardSQLReservedWords = []string{
	"ALL", "ANY", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "DESC",
	"DISTINCT", "END", "EXISTS", "IN", "INTO", "IS", "LIKE", "NOT", "NULL",
	"ON", "OR", "ORDER", "OUTER", "OVER", "PARTITION BY", "PRIMARY KEY",
	"REFERENCES", "THEN", "TOP", "UNIQUE", "USING", "WHEN", "WITH",
}

var (
	standardSQLStringTypes  = []string{`""`, "''"}
	standardSQLOpenParens   = []string{"(", "CASE"}
	standardSQLCloseParens  = []string{")", "END"}
	standardSQLLineComments = []string{"--"}
)

// StandardSQLFormatter implements the fallback, dialect-agnostic
// formatter used whenever a Config's Language doesn't name one of the
// supported vendor dialects.
type StandardSQLFormatter struct {
	cfg *Config
}

func NewStandardSQLFormatter(cfg *Config) *StandardSQLFormatter {
	cfg.TokenizerConfig = NewStandardSQLTokenizerConfig()
	return &StandardSQLFormatter{cfg: cfg}
}

func NewStandardSQLTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 standardSQLReservedWords,
		ReservedTopLevelWords:         standardSQLReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   standardSQLStringTypes,
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		IndexedPlaceholderTypes:       []string{"?"},
		NamedPlaceholderTypes:         []string{":"},
		LineCommentTypes:              standardSQLLineComments,
	}
}

func (f *StandardSQLFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}

func appendWords(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
