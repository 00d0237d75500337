package dialects

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

func TestMain(m *testing.M) {
	v := m.Run()

	dirty, err := snaps.Clean(m)
	if err != nil {
		fmt.Println("error cleaning snapshots:", err)
		os.Exit(1)
	}
	if dirty {
		fmt.Println("some snapshots were outdated")
		os.Exit(1)
	}

	os.Exit(v)
}

// TestSnapshotFormatting_AcrossDialects pins the full rendered output of
// a representative query per dialect, catching accidental whitespace or
// keyword-casing regressions that a single assertion would miss.
func TestSnapshotFormatting_AcrossDialects(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		formatter func(*Config) Formatter
	}{
		{"standard", "SELECT id, name FROM users WHERE active = TRUE;", func(c *Config) Formatter { return NewStandardSQLFormatter(c) }},
		{"postgresql", "SELECT id FROM users WHERE data @> '{\"a\":1}'::jsonb;", func(c *Config) Formatter { return NewPostgreSQLFormatter(c) }},
		{"mysql", "SELECT `id` FROM `users` WHERE `id` <=> NULL;", func(c *Config) Formatter { return NewMySQLFormatter(c) }},
		{"tsql", "SELECT [Order Date] FROM [Orders] WHERE [Total] > 100;", func(c *Config) Formatter { return NewTSQLFormatter(c) }},
		{"bigquery", "SELECT a FROM t QUALIFY ROW_NUMBER() OVER(PARTITION BY a) = 1;", func(c *Config) Formatter { return NewBigQueryFormatter(c) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.formatter(core.NewDefaultConfig()).Format(tc.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, result)
		})
	}
}
