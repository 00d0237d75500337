package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	n1qlReservedWords = appendWords(standardSQLReservedWords,
		"NEST", "UNNEST", "RAW", "SATISFIES", "MISSING", "VALUED",
		"FIRST", "OBJECT", "ARRAY", "LETTING", "USE KEYS", "USE INDEX",
	)

	n1qlReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"NEST", "UNNEST", "LETTING", "MERGE",
	)
)

// N1QLFormatter targets Couchbase's N1QL, JSON-native SQL dialect.
type N1QLFormatter struct {
	cfg *Config
}

func NewN1QLFormatter(cfg *Config) *N1QLFormatter {
	cfg.TokenizerConfig = NewN1QLTokenizerConfig()
	return &N1QLFormatter{cfg: cfg}
}

func NewN1QLTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 n1qlReservedWords,
		ReservedTopLevelWords:         n1qlReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "''", "``"},
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		NamedPlaceholderTypes:         []string{"$"},
		LineCommentTypes:              []string{"--"},
	}
}

func (f *N1QLFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
