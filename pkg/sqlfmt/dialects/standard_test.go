package dialects

import "testing"

func TestStandardSQLFormatter_FormatDDL(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "formats a short CREATE TABLE inline",
			query: "CREATE TABLE items (a INT PRIMARY KEY, b TEXT);",
			exp:   "CREATE TABLE\n  items (a INT PRIMARY KEY, b TEXT);",
		},
		{
			name:  "breaks a long CREATE TABLE onto one column per line",
			query: "CREATE TABLE items (a INT PRIMARY KEY, b TEXT, c INT NOT NULL, d INT NOT NULL);",
			exp: `
CREATE TABLE
  items (
    a INT PRIMARY KEY,
    b TEXT,
    c INT NOT NULL,
    d INT NOT NULL
  );
`,
		},
		{
			name:  "formats INSERT with an inline VALUES tuple",
			query: "INSERT Customers (ID, MoneyBalance, Address, City) VALUES (12,-123.4, 'Skagen 2111','Stv');",
			exp: `
INSERT
  Customers (ID, MoneyBalance, Address, City)
VALUES
  (12, -123.4, 'Skagen 2111', 'Stv');
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewStandardSQLFormatter(c) })
}

func TestStandardSQLFormatter_FormatSelect(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "breaks a multi-column SELECT one column per line",
			query: "SELECT a, b, c FROM t WHERE a = 1;",
			exp: `
SELECT
  a,
  b,
  c
FROM
  t
WHERE
  a = 1;
`,
		},
		{
			name:  "breaks AND onto its own line",
			query: "SELECT a FROM t WHERE a = 1 AND b = 2;",
			exp: `
SELECT
  a
FROM
  t
WHERE
  a = 1
  AND b = 2;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewStandardSQLFormatter(c) })
}

func TestStandardSQLFormatter_Subquery(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "indents a subquery inside a WHERE IN",
			query: "SELECT a FROM t WHERE a IN (SELECT a FROM u WHERE b = 1);",
			exp: `
SELECT
  a
FROM
  t
WHERE
  a IN (
    SELECT
      a
    FROM
      u
    WHERE
      b = 1
  );
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewStandardSQLFormatter(c) })
}
