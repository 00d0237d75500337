package dialects

// CreateFormatterForLanguage builds the Formatter for a Config's
// Language, falling back to StandardSQLFormatter for an unrecognized or
// zero-value Language.
func CreateFormatterForLanguage(c *Config) Formatter {
	switch c.Language {
	case BigQuery:
		return NewBigQueryFormatter(c)
	case DB2:
		return NewDB2Formatter(c)
	case Hive:
		return NewHiveFormatter(c)
	case MariaDB:
		return NewMariaDBFormatter(c)
	case MySQL:
		return NewMySQLFormatter(c)
	case N1QL:
		return NewN1QLFormatter(c)
	case PLSQL:
		return NewPLSQLFormatter(c)
	case PostgreSQL:
		return NewPostgreSQLFormatter(c)
	case Redshift:
		return NewRedshiftFormatter(c)
	case Spark:
		return NewSparkFormatter(c)
	case TSQL:
		return NewTSQLFormatter(c)
	default:
		return NewStandardSQLFormatter(c)
	}
}
