package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	redshiftReservedWords = appendWords(postgreSQLReservedWords,
		"DISTKEY", "SORTKEY", "DISTSTYLE", "ENCODE", "COMPUPDATE",
		"UNLOAD", "COPY", "IAM_ROLE",
	)

	redshiftReservedTopLevelWords = appendWords(postgreSQLReservedTopLevelWords,
		"UNLOAD", "COPY",
	)
)

// RedshiftFormatter extends the PostgreSQL dialect with Amazon Redshift's
// warehouse-specific DDL and bulk load/unload keywords.
type RedshiftFormatter struct {
	cfg *Config
}

func NewRedshiftFormatter(cfg *Config) *RedshiftFormatter {
	cfg.TokenizerConfig = NewRedshiftTokenizerConfig()
	return &RedshiftFormatter{cfg: cfg}
}

func NewRedshiftTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 redshiftReservedWords,
		ReservedTopLevelWords:         redshiftReservedTopLevelWords,
		ReservedNewlineWords:          postgreSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "''"},
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		IndexedPlaceholderTypes:       []string{"$"},
		LineCommentTypes:              []string{"--"},
	}
}

func (f *RedshiftFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
