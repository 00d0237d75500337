package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	sparkReservedWords = appendWords(hiveReservedWords,
		"BROADCAST", "REPARTITION", "COALESCE", "CACHE TABLE",
		"UNCACHE TABLE", "PIVOT", "TRANSFORM",
	)

	sparkReservedTopLevelWords = appendWords(hiveReservedTopLevelWords,
		"PIVOT", "TRANSFORM",
	)
)

// SparkFormatter targets Spark SQL, a HiveQL-compatible dialect with its
// own optimizer hints and DataFrame-oriented keywords.
type SparkFormatter struct {
	cfg *Config
}

func NewSparkFormatter(cfg *Config) *SparkFormatter {
	cfg.TokenizerConfig = NewSparkTokenizerConfig()
	return &SparkFormatter{cfg: cfg}
}

func NewSparkTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 sparkReservedWords,
		ReservedTopLevelWords:         sparkReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "''", "``"},
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		LineCommentTypes:              []string{"--"},
	}
}

func (f *SparkFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
