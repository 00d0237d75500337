package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

// MariaDB is MySQL-compatible with a handful of its own extensions
// (RETURNING, and the EXCEPT/INTERSECT set operators).
var (
	mariaDBReservedWords = appendWords(mySQLReservedWords,
		"RETURNING", "EXCEPT", "INTERSECT",
	)
	mariaDBReservedTopLevelWords = mySQLReservedTopLevelWords
)

type MariaDBFormatter struct {
	cfg *Config
}

func NewMariaDBFormatter(cfg *Config) *MariaDBFormatter {
	cfg.TokenizerConfig = NewMariaDBTokenizerConfig()
	return &MariaDBFormatter{cfg: cfg}
}

func NewMariaDBTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 mariaDBReservedWords,
		ReservedTopLevelWords:         mariaDBReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{"''", `""`, "``"},
		OpenParens:                    []string{"(", "CASE"},
		CloseParens:                   []string{")", "END"},
		IndexedPlaceholderTypes:       []string{"?"},
		LineCommentTypes:              []string{"--", "#"},
	}
}

func (f *MariaDBFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
