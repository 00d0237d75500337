// Package core implements the tokenizer and formatter state machine that
// every dialect formatter specializes.
package core

import (
	"github.com/sirupsen/logrus"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/utils"
)

// Formatter is implemented by every per-dialect formatter.
type Formatter interface {
	Format(query string) (string, error)
}

// Language names a SQL dialect.
type Language string

const (
	StandardSQL Language = "sql"
	BigQuery    Language = "bigquery"
	DB2         Language = "db2"
	Hive        Language = "hive"
	MariaDB     Language = "mariadb"
	MySQL       Language = "mysql"
	N1QL        Language = "n1ql"
	PLSQL       Language = "plsql"
	PostgreSQL  Language = "postgresql"
	Redshift    Language = "redshift"
	Spark       Language = "spark"
	TSQL        Language = "tsql"
)

// KeywordCase controls how reserved words are cased on emission.
type KeywordCase string

const (
	KeywordCasePreserve  KeywordCase = "preserve"
	KeywordCaseUppercase KeywordCase = "uppercase"
	KeywordCaseLowercase KeywordCase = "lowercase"
)

// KeywordPosition controls where a top-level keyword is placed relative
// to the clause body that follows it.
type KeywordPosition string

const (
	KeywordPositionStandard      KeywordPosition = "standard"
	KeywordPositionTenSpaceLeft  KeywordPosition = "tenSpaceLeft"
	KeywordPositionTenSpaceRight KeywordPosition = "tenSpaceRight"
)

// NewlineMode names the shape of the Newline policy.
type NewlineMode int

const (
	NewlineAlways NewlineMode = iota
	NewlineNever
	NewlineLineWidth
	NewlineCount
)

// NewlinePolicy decides whether commas in a top-level list break onto
// their own line. Count is only meaningful when Mode == NewlineCount.
type NewlinePolicy struct {
	Mode  NewlineMode
	Count int
}

// AliasAsPolicy controls whether/where an implicit alias gets an
// inserted or removed AS keyword.
type AliasAsPolicy string

const (
	AliasAsAlways   AliasAsPolicy = "always"
	AliasAsNever    AliasAsPolicy = "never"
	AliasAsSelect   AliasAsPolicy = "select"
	AliasAsExplicit AliasAsPolicy = "explicit"
)

// CommaPosition controls where a list separator is placed relative to
// the line break it introduces.
type CommaPosition string

const (
	CommaPositionAfter   CommaPosition = "after"
	CommaPositionBefore  CommaPosition = "before"
	CommaPositionTabular CommaPosition = "tabular"
)

// ParenOptions toggles whether an opening/closing paren forces the
// newline+indent step that normally follows/precedes it.
type ParenOptions struct {
	OpenParenNewline  bool
	CloseParenNewline bool
}

// Config is the fully-resolved configuration the formatter engine reads.
// Every field has a zero-value-safe default applied by NewDefaultConfig.
type Config struct {
	Language                   Language
	Indent                     string
	Uppercase                  bool
	KeywordCase                KeywordCase
	KeywordPosition            KeywordPosition
	Newline                    NewlinePolicy
	BreakBeforeBooleanOperator bool
	AliasAs                    AliasAsPolicy
	TabulateAlias              bool
	CommaPosition              CommaPosition
	ParenOptions               ParenOptions
	LineWidth                  int
	LinesBetweenQueries        int
	DenseOperators             bool
	SemicolonNewline           bool
	Params                     *utils.ParamsConfig
	ColorConfig                *ColorConfig
	TokenizerConfig            *TokenizerConfig

	// AlignColumnNames/AlignAssignments/AlignValues are ambient
	// readability extensions inherited from the teacher's alignment
	// machinery; they compose with, but are independent of, the
	// spec's tabulateAlias.
	AlignColumnNames bool
	AlignAssignments bool
	AlignValues      bool

	// Logger receives non-fatal warnings (e.g. an auto-corrected
	// LineWidth). Defaults to logrus.StandardLogger() so library
	// callers get sensible behavior without wiring anything up.
	Logger *logrus.Logger
}

const (
	DefaultIndent              = "  "
	DefaultLineWidth           = 50
	DefaultLinesBetweenQueries = 1
	tenSpaceIndent             = "          "
)

// NewDefaultConfig returns a Config matching every default in spec.md §6.
func NewDefaultConfig() *Config {
	return &Config{
		Language:                   StandardSQL,
		Indent:                     DefaultIndent,
		Uppercase:                  true,
		KeywordCase:                KeywordCaseUppercase,
		KeywordPosition:            KeywordPositionStandard,
		Newline:                    NewlinePolicy{Mode: NewlineAlways},
		BreakBeforeBooleanOperator: true,
		AliasAs:                    AliasAsSelect,
		CommaPosition:              CommaPositionAfter,
		ParenOptions:               ParenOptions{OpenParenNewline: true, CloseParenNewline: true},
		LineWidth:                  DefaultLineWidth,
		LinesBetweenQueries:        DefaultLinesBetweenQueries,
		Params:                     &utils.ParamsConfig{},
		ColorConfig:                &ColorConfig{},
		TokenizerConfig:            &TokenizerConfig{},
		Logger:                     logrus.StandardLogger(),
	}
}

// normalizeDefaults auto-corrects fields that are out of range but
// recoverable (unlike Validate's hard errors), logging what it changed.
func (c *Config) normalizeDefaults() {
	if c.LineWidth <= 0 {
		if c.Logger != nil {
			c.Logger.WithField("lineWidth", c.LineWidth).Warn("sqlfmt: non-positive LineWidth, using default")
		}
		c.LineWidth = DefaultLineWidth
	}
}

// ResolvedIndent returns the indent unit actually used, honoring the
// keywordPosition=tenSpace* override documented in SPEC_FULL.md §4.14.
func (c *Config) ResolvedIndent() string {
	switch c.KeywordPosition {
	case KeywordPositionTenSpaceLeft, KeywordPositionTenSpaceRight:
		return tenSpaceIndent
	default:
		return c.Indent
	}
}

// Validate reports the first invalid field found in c, or nil if c is
// usable as-is. FormatQuery calls this before tokenizing.
func (c *Config) Validate() error {
	if c.Newline.Mode == NewlineCount && c.Newline.Count <= 0 {
		return &InvalidConfigError{Field: "Newline.Count", Reason: "must be positive when Newline.Mode is NewlineCount"}
	}
	if c.LinesBetweenQueries < 0 {
		return &InvalidConfigError{Field: "LinesBetweenQueries", Reason: "must not be negative"}
	}
	return nil
}

func (c *Config) WithLang(lang Language) *Config {
	c.Language = lang
	return c
}

func (c *Config) WithIndent(indent string) *Config {
	c.Indent = indent
	return c
}

func (c *Config) WithUppercase(uppercase bool) *Config {
	c.Uppercase = uppercase
	if uppercase {
		c.KeywordCase = KeywordCaseUppercase
	} else {
		c.KeywordCase = KeywordCasePreserve
	}
	return c
}

func (c *Config) WithKeywordCase(kc KeywordCase) *Config {
	c.KeywordCase = kc
	return c
}

func (c *Config) WithKeywordPosition(kp KeywordPosition) *Config {
	c.KeywordPosition = kp
	return c
}

func (c *Config) WithNewline(policy NewlinePolicy) *Config {
	c.Newline = policy
	return c
}

func (c *Config) WithBreakBeforeBooleanOperator(b bool) *Config {
	c.BreakBeforeBooleanOperator = b
	return c
}

func (c *Config) WithAliasAs(policy AliasAsPolicy) *Config {
	c.AliasAs = policy
	return c
}

func (c *Config) WithTabulateAlias(tabulate bool) *Config {
	c.TabulateAlias = tabulate
	return c
}

func (c *Config) WithCommaPosition(pos CommaPosition) *Config {
	c.CommaPosition = pos
	return c
}

func (c *Config) WithParenOptions(opts ParenOptions) *Config {
	c.ParenOptions = opts
	return c
}

func (c *Config) WithLineWidth(width int) *Config {
	c.LineWidth = width
	return c
}

func (c *Config) WithLinesBetweenQueries(n int) *Config {
	c.LinesBetweenQueries = n
	return c
}

func (c *Config) WithDenseOperators(dense bool) *Config {
	c.DenseOperators = dense
	return c
}

func (c *Config) WithSemicolonNewline(b bool) *Config {
	c.SemicolonNewline = b
	return c
}

func (c *Config) WithParams(params *utils.ParamsConfig) *Config {
	c.Params = params
	return c
}

func (c *Config) WithColorConfig(cc *ColorConfig) *Config {
	c.ColorConfig = cc
	return c
}

func (c *Config) WithTokenizerConfig(tc *TokenizerConfig) *Config {
	c.TokenizerConfig = tc
	return c
}

func (c *Config) WithAlignColumnNames(align bool) *Config {
	c.AlignColumnNames = align
	return c
}

func (c *Config) WithAlignAssignments(align bool) *Config {
	c.AlignAssignments = align
	return c
}

func (c *Config) WithAlignValues(align bool) *Config {
	c.AlignValues = align
	return c
}

// TokenizerConfig is the passive per-dialect data table the tokenizer
// consults: reserved-word sets, quoting rules, comment syntax, and
// placeholder prefixes. It carries no behavior of its own.
type TokenizerConfig struct {
	ReservedWords                 []string
	ReservedTopLevelWords         []string
	ReservedNewlineWords          []string
	ReservedTopLevelWordsNoIndent []string
	StringTypes                   []string
	OpenParens                    []string
	CloseParens                   []string
	IndexedPlaceholderTypes       []string
	NamedPlaceholderTypes         []string
	LineCommentTypes              []string
	BlockCommentTypes             [][2]string
	SpecialWordChars              []string
}

// ColorConfig configures PrettyFormat's ANSI output per token category.
type ColorConfig struct {
	ReservedWordFormatOptions []utils.ANSIFormatOption
	StringFormatOptions       []utils.ANSIFormatOption
	NumberFormatOptions       []utils.ANSIFormatOption
	BooleanFormatOptions      []utils.ANSIFormatOption
	CommentFormatOptions      []utils.ANSIFormatOption
	FunctionCallFormatOptions []utils.ANSIFormatOption
}

// Empty reports whether no color options are configured at all.
func (c *ColorConfig) Empty() bool {
	if c == nil {
		return true
	}
	return len(c.ReservedWordFormatOptions) == 0 &&
		len(c.StringFormatOptions) == 0 &&
		len(c.NumberFormatOptions) == 0 &&
		len(c.BooleanFormatOptions) == 0 &&
		len(c.CommentFormatOptions) == 0 &&
		len(c.FunctionCallFormatOptions) == 0
}

// NewDefaultColorConfig returns a reasonable default ANSI palette for PrettyFormat.
func NewDefaultColorConfig() *ColorConfig {
	return &ColorConfig{
		ReservedWordFormatOptions: []utils.ANSIFormatOption{utils.ColorCyan, utils.FormatBold},
		StringFormatOptions:       []utils.ANSIFormatOption{utils.ColorGreen},
		NumberFormatOptions:       []utils.ANSIFormatOption{utils.ColorBrightBlue},
		BooleanFormatOptions:      []utils.ANSIFormatOption{utils.ColorPurple, utils.FormatBold},
		CommentFormatOptions:      []utils.ANSIFormatOption{utils.ColorGray},
		FunctionCallFormatOptions: []utils.ANSIFormatOption{utils.ColorBrightCyan},
	}
}
