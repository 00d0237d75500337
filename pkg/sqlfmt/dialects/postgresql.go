package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/types"
)

var (
	postgreSQLReservedWords = appendWords(standardSQLReservedWords,
		"ILIKE", "SIMILAR TO", "ON CONFLICT", "DO UPDATE", "DO NOTHING",
		"WINDOW", "OVER", "FILTER", "RANGE", "ROWS", "GROUPS",
		"UNBOUNDED", "PRECEDING", "FOLLOWING", "CURRENT ROW",
		"NULLS FIRST", "NULLS LAST", "LATERAL", "ARRAY", "UNNEST",
		"LANGUAGE", "RETURNS", "DECLARE", "BEGIN",
		"IMMUTABLE", "STABLE", "VOLATILE", "STRICT",
		"SETOF", "TRIGGER",
		"CONCURRENTLY", "IF NOT EXISTS", "IF EXISTS",
	)

	postgreSQLReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"WITH RECURSIVE", "RETURNING", "WINDOW",
		"CREATE FUNCTION", "CREATE OR REPLACE FUNCTION",
		"CREATE INDEX", "CREATE UNIQUE INDEX", "DROP INDEX",
	)

	postgreSQLReservedNewlineWords = appendWords(standardSQLReservedNewlineWords,
		"LATERAL JOIN", "LEFT LATERAL JOIN", "RIGHT LATERAL JOIN", "CROSS JOIN LATERAL",
	)
)

// PostgreSQLFormatter renders dollar-quoted strings, JSON/JSONB
// operators, CTEs and the PL/pgSQL procedural constructs idiomatic to
// PostgreSQL, and strips spaces around the "::" cast operator.
type PostgreSQLFormatter struct {
	cfg *Config
}

func NewPostgreSQLFormatter(cfg *Config) *PostgreSQLFormatter {
	cfg.TokenizerConfig = NewPostgreSQLTokenizerConfig()
	return &PostgreSQLFormatter{cfg: cfg}
}

func NewPostgreSQLTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 postgreSQLReservedWords,
		ReservedTopLevelWords:         postgreSQLReservedTopLevelWords,
		ReservedNewlineWords:          postgreSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "N''", "''", "``", "$$"},
		OpenParens:                    []string{"(", "CASE"},
		CloseParens:                   []string{")", "END"},
		IndexedPlaceholderTypes:       []string{"$"},
		NamedPlaceholderTypes:         []string{"@", ":"},
		LineCommentTypes:              []string{"--"},
	}
}

func (f *PostgreSQLFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, f.tokenOverride, query)
}

// tokenOverride renders "::" without surrounding spaces, the PostgreSQL
// cast-operator convention ("value::numeric", not "value :: numeric").
func (f *PostgreSQLFormatter) tokenOverride(tok types.Token, previousReservedWord types.Token) types.Token {
	if tok.Type == types.TokenTypeOperator && tok.Value == "::" {
		return types.Token{Type: types.TokenTypeSpecialOperator, Value: "::", Key: tok.Key}
	}
	return tok
}
