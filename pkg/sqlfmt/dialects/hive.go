package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	hiveReservedWords = appendWords(standardSQLReservedWords,
		"LATERAL VIEW", "CLUSTER BY", "DISTRIBUTE BY", "SORT BY",
		"TABLESAMPLE", "MAP", "ARRAY", "STRUCT", "EXPLODE",
		"STORED AS", "ROW FORMAT", "DELIMITED FIELDS TERMINATED BY",
	)

	hiveReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"CLUSTER BY", "DISTRIBUTE BY", "SORT BY", "LATERAL VIEW",
		"CREATE EXTERNAL TABLE",
	)
)

// HiveFormatter targets Apache Hive's HiveQL dialect.
type HiveFormatter struct {
	cfg *Config
}

func NewHiveFormatter(cfg *Config) *HiveFormatter {
	cfg.TokenizerConfig = NewHiveTokenizerConfig()
	return &HiveFormatter{cfg: cfg}
}

func NewHiveTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 hiveReservedWords,
		ReservedTopLevelWords:         hiveReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "''", "``"},
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		LineCommentTypes:              []string{"--"},
	}
}

func (f *HiveFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
