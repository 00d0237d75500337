package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	tsqlReservedWords = appendWords(standardSQLReservedWords,
		"TOP", "OUTPUT", "OFFSET FETCH", "FETCH NEXT", "ROWS ONLY",
		"IDENTITY", "NOLOCK", "MERGE", "MATCHED", "PIVOT", "UNPIVOT",
		"TRY_CAST", "OVER", "PARTITION BY",
	)

	tsqlReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"OUTPUT", "OFFSET", "MERGE", "CREATE PROCEDURE", "CREATE OR ALTER PROCEDURE",
	)
)

// TSQLFormatter targets Microsoft's T-SQL dialect: "[" "]"-bracketed
// identifiers, "@" variable placeholders, and the "+" string concatenator.
type TSQLFormatter struct {
	cfg *Config
}

func NewTSQLFormatter(cfg *Config) *TSQLFormatter {
	cfg.TokenizerConfig = NewTSQLTokenizerConfig()
	return &TSQLFormatter{cfg: cfg}
}

func NewTSQLTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 tsqlReservedWords,
		ReservedTopLevelWords:         tsqlReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "N''", "''", "[]"},
		OpenParens:                    []string{"(", "CASE"},
		CloseParens:                   []string{")", "END"},
		NamedPlaceholderTypes:         []string{"@"},
		LineCommentTypes:              []string{"--"},
	}
}

func (f *TSQLFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
