package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	db2ReservedWords = appendWords(standardSQLReservedWords,
		"FETCH FIRST", "ROWS ONLY", "FOR UPDATE", "WITH UR", "WITH RS",
		"CURRENT DATE", "CURRENT TIME", "CURRENT TIMESTAMP",
		"GENERATED ALWAYS AS IDENTITY", "ORGANIZE BY",
	)

	db2ReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"FETCH FIRST", "CREATE PROCEDURE", "CREATE OR REPLACE PROCEDURE",
	)
)

// DB2Formatter targets IBM Db2's SQL dialect.
type DB2Formatter struct {
	cfg *Config
}

func NewDB2Formatter(cfg *Config) *DB2Formatter {
	cfg.TokenizerConfig = NewDB2TokenizerConfig()
	return &DB2Formatter{cfg: cfg}
}

func NewDB2TokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 db2ReservedWords,
		ReservedTopLevelWords:         db2ReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   standardSQLStringTypes,
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		NamedPlaceholderTypes:         []string{":"},
		LineCommentTypes:              []string{"--"},
	}
}

func (f *DB2Formatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
