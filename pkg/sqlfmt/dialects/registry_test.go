package dialects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

func TestCreateFormatterForLanguage_DispatchesEveryDialect(t *testing.T) {
	tests := []struct {
		lang Language
		want interface{}
	}{
		{BigQuery, &BigQueryFormatter{}},
		{DB2, &DB2Formatter{}},
		{Hive, &HiveFormatter{}},
		{MariaDB, &MariaDBFormatter{}},
		{MySQL, &MySQLFormatter{}},
		{N1QL, &N1QLFormatter{}},
		{PLSQL, &PLSQLFormatter{}},
		{PostgreSQL, &PostgreSQLFormatter{}},
		{Redshift, &RedshiftFormatter{}},
		{Spark, &SparkFormatter{}},
		{TSQL, &TSQLFormatter{}},
		{StandardSQL, &StandardSQLFormatter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			cfg := core.NewDefaultConfig().WithLang(tt.lang)
			got := CreateFormatterForLanguage(cfg)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestCreateFormatterForLanguage_FallsBackToStandardSQL(t *testing.T) {
	cfg := core.NewDefaultConfig().WithLang(Language("not-a-real-dialect"))

	got := CreateFormatterForLanguage(cfg)

	assert.IsType(t, &StandardSQLFormatter{}, got)
}
