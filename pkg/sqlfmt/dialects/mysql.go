package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	mySQLReservedWords = appendWords(standardSQLReservedWords,
		"AUTO_INCREMENT", "BINARY", "BLOB", "BOOLEAN", "ENGINE", "CHARACTER SET",
		"CHARSET", "COLLATE", "SIGNED", "UNSIGNED", "ZEROFILL",
		"IFNULL", "STRAIGHT_JOIN", "DUPLICATE KEY", "ON DUPLICATE KEY UPDATE",
	)
	mySQLReservedTopLevelWords = standardSQLReservedTopLevelWords
)

// MySQLFormatter uses backtick-quoted identifiers, "?" placeholders and
// the MySQL-specific "#" line comment in addition to "--".
type MySQLFormatter struct {
	cfg *Config
}

func NewMySQLFormatter(cfg *Config) *MySQLFormatter {
	cfg.TokenizerConfig = NewMySQLTokenizerConfig()
	return &MySQLFormatter{cfg: cfg}
}

func NewMySQLTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 mySQLReservedWords,
		ReservedTopLevelWords:         mySQLReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{"''", `""`, "``"},
		OpenParens:                    []string{"(", "CASE"},
		CloseParens:                   []string{")", "END"},
		IndexedPlaceholderTypes:       []string{"?"},
		LineCommentTypes:              []string{"--", "#"},
	}
}

func (f *MySQLFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
