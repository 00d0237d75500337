package dialects

import "testing"

func TestBigQueryFormatter_UnnestAndQualify(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "renders UNNEST as an inline reserved word",
			query: "SELECT x FROM UNNEST([1, 2, 3]) AS x;",
			exp: `
SELECT
  x
FROM
  UNNEST([1, 2, 3]) AS x;
`,
		},
		{
			name:  "recognizes QUALIFY as a top-level clause",
			query: "SELECT a FROM t QUALIFY ROW_NUMBER() OVER(PARTITION BY a) = 1;",
			exp: `
SELECT
  a
FROM
  t
QUALIFY
  ROW_NUMBER() OVER(PARTITION BY a) = 1;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewBigQueryFormatter(c) })
}

func TestDB2Formatter_FetchFirstRowsOnly(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes FETCH FIRST as a top-level clause",
			query: "SELECT a FROM t FETCH FIRST 10 ROWS ONLY;",
			exp: `
SELECT
  a
FROM
  t
FETCH FIRST
  10 ROWS ONLY;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewDB2Formatter(c) })
}

func TestHiveFormatter_ClusterBy(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes CLUSTER BY as a top-level clause",
			query: "SELECT a FROM t CLUSTER BY a;",
			exp: `
SELECT
  a
FROM
  t
CLUSTER BY
  a;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewHiveFormatter(c) })
}

func TestN1QLFormatter_Unnest(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes UNNEST as a top-level clause",
			query: "SELECT a FROM t UNNEST t.items AS item;",
			exp: `
SELECT
  a
FROM
  t
UNNEST
  t.items AS item;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewN1QLFormatter(c) })
}

func TestPLSQLFormatter_ConnectBy(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes CONNECT BY as a top-level clause",
			query: "SELECT a FROM t CONNECT BY PRIOR a = b;",
			exp: `
SELECT
  a
FROM
  t
CONNECT BY
  PRIOR a = b;
`,
		},
		{
			name:  "keeps := spaced as a plain assignment",
			query: "BEGIN x := 1; END;",
			exp: `
BEGIN x := 1;
END;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewPLSQLFormatter(c) })
}

func TestRedshiftFormatter_Unload(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes UNLOAD as a top-level clause",
			query: "UNLOAD ('SELECT 1') TO 's3://bucket/key';",
			exp: `
UNLOAD
  ('SELECT 1') TO 's3://bucket/key';
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewRedshiftFormatter(c) })
}

func TestSparkFormatter_InheritsHiveClusterBy(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "recognizes CLUSTER BY inherited from Hive",
			query: "SELECT a FROM t CLUSTER BY a;",
			exp: `
SELECT
  a
FROM
  t
CLUSTER BY
  a;
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewSparkFormatter(c) })
}

func TestTSQLFormatter_BracketIdentifiers(t *testing.T) {
	tests := []formatterCase{
		{
			name:  "preserves bracket-quoted identifiers as a single string token",
			query: "SELECT [Order Date] FROM [Orders];",
			exp: `
SELECT
  [Order Date]
FROM
  [Orders];
`,
		},
	}

	runFormatterTests(t, tests, func(c *Config) Formatter { return NewTSQLFormatter(c) })
}
