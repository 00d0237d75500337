package dialects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

// formatterCase is one table-driven entry: query formatted under cfg
// (or the dialect's default if cfg is nil) should equal exp, once exp's
// leading newlines and trailing whitespace are trimmed.
type formatterCase struct {
	name  string
	query string
	exp   string
	cfg   *Config
}

// runFormatterTests exercises every case through factory, trimming exp
// the way the teacher's own suite does so expectations can be written
// as raw string literals that start and end on their own lines.
func runFormatterTests(t *testing.T, tests []formatterCase, factory func(*Config) Formatter) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if cfg == nil {
				cfg = core.NewDefaultConfig()
			}

			result, err := factory(cfg).Format(tt.query)
			require.NoError(t, err)

			exp := strings.TrimRight(tt.exp, "\n\t ")
			exp = strings.TrimLeft(exp, "\n")
			require.Equal(t, exp, result)
		})
	}
}
