package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	bigQueryReservedWords = appendWords(standardSQLReservedWords,
		"ARRAY", "STRUCT", "UNNEST", "EXCEPT", "REPLACE", "QUALIFY",
		"SAFE_CAST", "WINDOW", "OVER", "PARTITION BY", "ROWS", "RANGE",
		"RESPECT NULLS", "IGNORE NULLS", "GENERATE_ARRAY",
	)

	bigQueryReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"WITH RECURSIVE", "QUALIFY", "WINDOW",
		"CREATE TABLE FUNCTION", "CREATE OR REPLACE TABLE FUNCTION",
	)
)

// BigQueryFormatter targets Google Standard SQL: backtick-quoted table
// paths, "@" query parameters, and no "?" positional placeholder.
type BigQueryFormatter struct {
	cfg *Config
}

func NewBigQueryFormatter(cfg *Config) *BigQueryFormatter {
	cfg.TokenizerConfig = NewBigQueryTokenizerConfig()
	return &BigQueryFormatter{cfg: cfg}
}

func NewBigQueryTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 bigQueryReservedWords,
		ReservedTopLevelWords:         bigQueryReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "''", "``", `r""`, "r''"},
		OpenParens:                    []string{"(", "CASE"},
		CloseParens:                   []string{")", "END"},
		NamedPlaceholderTypes:         []string{"@"},
		LineCommentTypes:              []string{"--", "#"},
	}
}

func (f *BigQueryFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
