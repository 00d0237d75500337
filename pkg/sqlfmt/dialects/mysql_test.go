package dialects

import "testing"

func TestMySQLFormatter_Backticks(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "preserves backtick-quoted identifiers",
			query: "SELECT `a`, `b` FROM `t`;",
			exp: `
SELECT
  ` + "`a`" + `,
  ` + "`b`" + `
FROM
  ` + "`t`" + `;
`,
		},
		{
			name:  "renders <=> with ordinary operator spacing",
			query: "SELECT a FROM t WHERE a <=> b;",
			exp: `
SELECT
  a
FROM
  t
WHERE
  a <=> b;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewMySQLFormatter(c) })
}

func TestMariaDBFormatter_ExtendsMySQLReservedWords(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes returning as a reserved word and uppercases it",
			query: "DELETE FROM t WHERE a = 1 returning id;",
			exp: `
DELETE FROM
  t
WHERE
  a = 1 RETURNING id;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewMariaDBFormatter(c) })
}
