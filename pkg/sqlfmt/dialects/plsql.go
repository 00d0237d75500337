package dialects

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

var (
	plsqlReservedWords = appendWords(standardSQLReservedWords,
		"CONNECT BY", "START WITH", "PRIOR", "ROWNUM", "DUAL",
		"MINUS", "NOCYCLE", "MERGE", "MATCHED",
		"BULK COLLECT INTO", "FORALL", "EXCEPTION", "RAISE",
	)

	plsqlReservedTopLevelWords = appendWords(standardSQLReservedTopLevelWords,
		"CONNECT BY", "START WITH", "CREATE OR REPLACE PACKAGE", "CREATE OR REPLACE PROCEDURE",
	)
)

// PLSQLFormatter targets Oracle's PL/SQL dialect: CONNECT BY hierarchical
// queries, the ":=" assignment operator, and bulk-collect cursor syntax.
type PLSQLFormatter struct {
	cfg *Config
}

func NewPLSQLFormatter(cfg *Config) *PLSQLFormatter {
	cfg.TokenizerConfig = NewPLSQLTokenizerConfig()
	return &PLSQLFormatter{cfg: cfg}
}

func NewPLSQLTokenizerConfig() *TokenizerConfig {
	return &TokenizerConfig{
		ReservedWords:                 plsqlReservedWords,
		ReservedTopLevelWords:         plsqlReservedTopLevelWords,
		ReservedNewlineWords:          standardSQLReservedNewlineWords,
		ReservedTopLevelWordsNoIndent: standardSQLReservedTopLevelWordsNoIndent,
		StringTypes:                   []string{`""`, "N''", "''"},
		OpenParens:                    standardSQLOpenParens,
		CloseParens:                   standardSQLCloseParens,
		IndexedPlaceholderTypes:       []string{":"},
		LineCommentTypes:              []string{"--"},
	}
}

func (f *PLSQLFormatter) Format(query string) (string, error) {
	return core.FormatQuery(f.cfg, nil, query)
}
