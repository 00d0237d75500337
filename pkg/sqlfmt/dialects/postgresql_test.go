package dialects

import "testing"

func TestPostgreSQLFormatter_TypeCasts(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "strips spaces around a basic cast",
			query: "SELECT id::integer, name::text FROM users;",
			exp: `
SELECT
  id::integer,
  name::text
FROM
  users;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewPostgreSQLFormatter(c) })
}

func TestPostgreSQLFormatter_OnConflict(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "keeps ON CONFLICT DO NOTHING as reserved words",
			query: "INSERT INTO t (a) VALUES (1) ON CONFLICT DO NOTHING;",
			exp: `
INSERT INTO
  t (a)
VALUES
  (1) ON CONFLICT DO NOTHING;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewPostgreSQLFormatter(c) })
}
