package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt"
)

const defaultSQLDialect = "sql"

var (
	lang                       string
	indent                     string
	write                      bool
	color                      bool
	keywordCase                string
	keywordPosition            string
	aliasAs                    string
	commaPosition              string
	linesBetween               int
	lineWidth                  int
	tabulateAlias              bool
	denseOperators             bool
	semicolonNewline           bool
	breakBeforeBooleanOperator bool
	autoDetect                 bool
	alignColumnNames           bool
	alignAssignments           bool
	alignValues                bool
)

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Format SQL files or stdin",
	Long: `Format SQL files or standard input using the specified SQL dialect.

Examples:
  sqlfmt format file.sql                    # Format file to stdout
  sqlfmt format --write file.sql            # Format file in place
  cat file.sql | sqlfmt format -            # Format stdin
  sqlfmt format --lang=postgresql file.sql  # Format with PostgreSQL dialect
  sqlfmt format --color file.sql            # Format with ANSI colors`,
	Args: cobra.ArbitraryArgs,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	registerFormatFlags(formatCmd)
}

func registerFormatFlags(c *cobra.Command) {
	c.Flags().StringVar(&lang, "lang", defaultSQLDialect,
		"SQL dialect (sql, postgresql, mysql, mariadb, plsql, db2, n1ql, bigquery, hive, redshift, spark, tsql)")
	c.Flags().StringVar(&indent, "indent", "  ", "Indentation string")
	c.Flags().BoolVarP(&write, "write", "w", false, "Write result to file instead of stdout")
	c.Flags().BoolVar(&color, "color", false, "Enable ANSI color formatting")
	c.Flags().StringVar(&keywordCase, "keyword-case", "uppercase", "Keyword casing: preserve, uppercase, lowercase")
	c.Flags().StringVar(&keywordPosition, "keyword-position", "standard",
		"Top-level keyword placement: standard, tenSpaceLeft, tenSpaceRight")
	c.Flags().StringVar(&aliasAs, "alias-as", "select", "AS-insertion policy: always, never, select, explicit")
	c.Flags().StringVar(&commaPosition, "comma-position", "after", "Comma placement: after, before, tabular")
	c.Flags().IntVar(&linesBetween, "lines-between", 1, "Newlines written after each query's semicolon (1 = no blank line)")
	c.Flags().IntVar(&lineWidth, "line-width", 50, "Target line width before lists break")
	c.Flags().BoolVar(&tabulateAlias, "tabulate-alias", false, "Pad AS-aliases into aligned columns")
	c.Flags().BoolVar(&denseOperators, "dense-operators", false, "Render binary operators with no surrounding space")
	c.Flags().BoolVar(&semicolonNewline, "semicolon-newline", false, "Force a newline before a trailing semicolon")
	c.Flags().BoolVar(&breakBeforeBooleanOperator, "break-before-boolean-operator", true,
		"Break the line before AND/OR (false keeps AND/OR inline)")
	c.Flags().BoolVar(&autoDetect, "auto-detect", false,
		"Automatically detect SQL dialect from file extension and content")
	c.Flags().BoolVar(&alignColumnNames, "align-column-names", false, "Align SELECT column names vertically")
	c.Flags().BoolVar(&alignAssignments, "align-assignments", false, "Align UPDATE assignment operators vertically")
	c.Flags().BoolVar(&alignValues, "align-values", false, "Align INSERT VALUES vertically")
}

func runFormat(cmd *cobra.Command, args []string) error {
	config := buildConfig(cmd)

	ignoreFile, err := sqlfmt.LoadIgnoreFile()
	if err != nil {
		log.WithError(err).Warn("failed to load ignore file")
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return formatStdin(config)
	}

	for _, filename := range args {
		if ignoreFile.ShouldIgnore(filename) {
			continue
		}
		if err := formatFile(filename, config); err != nil {
			return fmt.Errorf("failed to format %s: %w", filename, err)
		}
	}

	return nil
}

func buildConfig(cmd *cobra.Command) *sqlfmt.Config {
	config := sqlfmt.NewDefaultConfig()
	config.Logger = log

	if configFile, err := sqlfmt.LoadConfigFile(); err != nil {
		log.WithError(err).Warn("failed to load config file")
	} else if err := configFile.ApplyToConfig(config); err != nil {
		log.WithError(err).Warn("failed to apply config file")
	}

	applyCommandLineFlags(cmd, config)

	if color {
		config.WithColorConfig(sqlfmt.NewDefaultColorConfig())
	}

	return config
}

func applyCommandLineFlags(cmd *cobra.Command, config *sqlfmt.Config) {
	if cmd.Flags().Changed("auto-detect") && autoDetect {
		return
	}
	if cmd.Flags().Changed("lang") {
		applyLanguageFlag(config)
	}
	if cmd.Flags().Changed("indent") {
		config.WithIndent(indent)
	}
	if cmd.Flags().Changed("keyword-case") {
		applyKeywordCaseFlag(config)
	}
	if cmd.Flags().Changed("keyword-position") {
		applyKeywordPositionFlag(config)
	}
	if cmd.Flags().Changed("alias-as") {
		applyAliasAsFlag(config)
	}
	if cmd.Flags().Changed("comma-position") {
		applyCommaPositionFlag(config)
	}
	if cmd.Flags().Changed("lines-between") {
		config.WithLinesBetweenQueries(linesBetween)
	}
	if cmd.Flags().Changed("line-width") {
		config.WithLineWidth(lineWidth)
	}
	if cmd.Flags().Changed("tabulate-alias") {
		config.WithTabulateAlias(tabulateAlias)
	}
	if cmd.Flags().Changed("dense-operators") {
		config.WithDenseOperators(denseOperators)
	}
	if cmd.Flags().Changed("semicolon-newline") {
		config.WithSemicolonNewline(semicolonNewline)
	}
	if cmd.Flags().Changed("break-before-boolean-operator") {
		config.WithBreakBeforeBooleanOperator(breakBeforeBooleanOperator)
	}
	if cmd.Flags().Changed("align-column-names") {
		config.WithAlignColumnNames(alignColumnNames)
	}
	if cmd.Flags().Changed("align-assignments") {
		config.WithAlignAssignments(alignAssignments)
	}
	if cmd.Flags().Changed("align-values") {
		config.WithAlignValues(alignValues)
	}
}

func applyLanguageFlag(config *sqlfmt.Config) {
	switch strings.ToLower(lang) {
	case defaultSQLDialect, "standard":
		config.WithLang(sqlfmt.StandardSQL)
	case "postgresql", "postgres":
		config.WithLang(sqlfmt.PostgreSQL)
	case "mysql":
		config.WithLang(sqlfmt.MySQL)
	case "mariadb":
		config.WithLang(sqlfmt.MariaDB)
	case "pl/sql", "plsql", "oracle":
		config.WithLang(sqlfmt.PLSQL)
	case "db2":
		config.WithLang(sqlfmt.DB2)
	case "n1ql":
		config.WithLang(sqlfmt.N1QL)
	case "bigquery":
		config.WithLang(sqlfmt.BigQuery)
	case "hive":
		config.WithLang(sqlfmt.Hive)
	case "redshift":
		config.WithLang(sqlfmt.Redshift)
	case "spark":
		config.WithLang(sqlfmt.Spark)
	case "tsql", "mssql", "sqlserver":
		config.WithLang(sqlfmt.TSQL)
	default:
		log.WithField("lang", lang).Warn("unknown language, falling back to standard SQL")
		config.WithLang(sqlfmt.StandardSQL)
	}
}

func applyKeywordCaseFlag(config *sqlfmt.Config) {
	switch strings.ToLower(keywordCase) {
	case "preserve":
		config.WithKeywordCase(sqlfmt.KeywordCasePreserve)
	case "uppercase":
		config.WithKeywordCase(sqlfmt.KeywordCaseUppercase)
	case "lowercase":
		config.WithKeywordCase(sqlfmt.KeywordCaseLowercase)
	default:
		log.WithField("keyword-case", keywordCase).Warn("unknown keyword case, falling back to preserve")
		config.WithKeywordCase(sqlfmt.KeywordCasePreserve)
	}
}

func applyKeywordPositionFlag(config *sqlfmt.Config) {
	switch strings.ToLower(keywordPosition) {
	case "standard":
		config.WithKeywordPosition(sqlfmt.KeywordPositionStandard)
	case "tenspaceleft":
		config.WithKeywordPosition(sqlfmt.KeywordPositionTenSpaceLeft)
	case "tenspaceright":
		config.WithKeywordPosition(sqlfmt.KeywordPositionTenSpaceRight)
	default:
		log.WithField("keyword-position", keywordPosition).Warn("unknown keyword position, falling back to standard")
		config.WithKeywordPosition(sqlfmt.KeywordPositionStandard)
	}
}

func applyAliasAsFlag(config *sqlfmt.Config) {
	switch strings.ToLower(aliasAs) {
	case "always":
		config.WithAliasAs(sqlfmt.AliasAsAlways)
	case "never":
		config.WithAliasAs(sqlfmt.AliasAsNever)
	case "select":
		config.WithAliasAs(sqlfmt.AliasAsSelect)
	case "explicit":
		config.WithAliasAs(sqlfmt.AliasAsExplicit)
	default:
		log.WithField("alias-as", aliasAs).Warn("unknown alias-as policy, falling back to select")
		config.WithAliasAs(sqlfmt.AliasAsSelect)
	}
}

func applyCommaPositionFlag(config *sqlfmt.Config) {
	switch strings.ToLower(commaPosition) {
	case "after":
		config.WithCommaPosition(sqlfmt.CommaPositionAfter)
	case "before":
		config.WithCommaPosition(sqlfmt.CommaPositionBefore)
	case "tabular":
		config.WithCommaPosition(sqlfmt.CommaPositionTabular)
	default:
		log.WithField("comma-position", commaPosition).Warn("unknown comma position, falling back to after")
		config.WithCommaPosition(sqlfmt.CommaPositionAfter)
	}
}

func formatStdin(baseConfig *sqlfmt.Config) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	config := baseConfig
	if autoDetect {
		if detectedLang, detected := sqlfmt.DetectDialect("", string(input)); detected {
			config = withLanguage(baseConfig, detectedLang)
		}
	}

	formatted, err := runFormatter(string(input), config)
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func formatFile(filename string, baseConfig *sqlfmt.Config) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	contentStr := string(content)
	if strings.TrimSpace(contentStr) == "" {
		if write {
			fmt.Printf("Skipped %s (empty file)\n", filename)
		}
		return nil
	}

	config := baseConfig

	if dirConfig, err := sqlfmt.LoadConfigFileForPath(filename); err != nil {
		log.WithError(err).WithField("file", filename).Warn("failed to load config file")
	} else if err := dirConfig.ApplyToConfig(config); err != nil {
		log.WithError(err).WithField("file", filename).Warn("failed to apply config file")
	}

	if hintedLang, found := sqlfmt.ParseInlineDialectHint(contentStr); found {
		config = withLanguage(config, hintedLang)
	}

	if autoDetect {
		if detectedLang, detected := sqlfmt.DetectDialect(filename, contentStr); detected {
			config = withLanguage(config, detectedLang)
		}
	}

	formatted, err := runFormatter(contentStr, config)
	if err != nil {
		return err
	}

	if write {
		if err := os.WriteFile(filename, []byte(formatted), 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("Formatted %s", filename)
		if autoDetect && config.Language != baseConfig.Language {
			fmt.Printf(" (detected as %s)", config.Language)
		}
		fmt.Println()
	} else {
		fmt.Print(formatted)
	}

	return nil
}

// withLanguage clones cfg with a different Language, leaving every other
// setting (indent, casing, alignment) in place.
func withLanguage(cfg *sqlfmt.Config, lang sqlfmt.Language) *sqlfmt.Config {
	clone := *cfg
	clone.Language = lang
	clone.TokenizerConfig = nil
	return &clone
}

func runFormatter(query string, config *sqlfmt.Config) (string, error) {
	if color {
		return sqlfmt.PrettyFormat(query, config)
	}
	return sqlfmt.Format(query, config)
}
