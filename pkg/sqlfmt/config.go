package sqlfmt

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/utils"
)

// Config, and every type it is built from, is a thin alias over the
// core package so callers never need to import pkg/sqlfmt/core
// directly. Builder methods (WithLang, WithIndent, ...) live on
// core.Config itself, since Go forbids attaching methods to an aliased
// type from outside its defining package.
type (
	Config          = core.Config
	Language        = core.Language
	KeywordCase     = core.KeywordCase
	KeywordPosition = core.KeywordPosition
	NewlineMode     = core.NewlineMode
	NewlinePolicy   = core.NewlinePolicy
	AliasAsPolicy   = core.AliasAsPolicy
	CommaPosition   = core.CommaPosition
	ParenOptions    = core.ParenOptions
	ColorConfig     = core.ColorConfig
	TokenizerConfig = core.TokenizerConfig
	ParamsConfig    = utils.ParamsConfig
)

const (
	StandardSQL Language = core.StandardSQL
	BigQuery    Language = core.BigQuery
	DB2         Language = core.DB2
	Hive        Language = core.Hive
	MariaDB     Language = core.MariaDB
	MySQL       Language = core.MySQL
	N1QL        Language = core.N1QL
	PLSQL       Language = core.PLSQL
	PostgreSQL  Language = core.PostgreSQL
	Redshift    Language = core.Redshift
	Spark       Language = core.Spark
	TSQL        Language = core.TSQL
)

const (
	KeywordCasePreserve  KeywordCase = core.KeywordCasePreserve
	KeywordCaseUppercase KeywordCase = core.KeywordCaseUppercase
	KeywordCaseLowercase KeywordCase = core.KeywordCaseLowercase
)

const (
	KeywordPositionStandard      KeywordPosition = core.KeywordPositionStandard
	KeywordPositionTenSpaceLeft  KeywordPosition = core.KeywordPositionTenSpaceLeft
	KeywordPositionTenSpaceRight KeywordPosition = core.KeywordPositionTenSpaceRight
)

const (
	NewlineAlways    NewlineMode = core.NewlineAlways
	NewlineNever     NewlineMode = core.NewlineNever
	NewlineLineWidth NewlineMode = core.NewlineLineWidth
	NewlineCount     NewlineMode = core.NewlineCount
)

const (
	AliasAsAlways   AliasAsPolicy = core.AliasAsAlways
	AliasAsNever    AliasAsPolicy = core.AliasAsNever
	AliasAsSelect   AliasAsPolicy = core.AliasAsSelect
	AliasAsExplicit AliasAsPolicy = core.AliasAsExplicit
)

const (
	CommaPositionAfter   CommaPosition = core.CommaPositionAfter
	CommaPositionBefore  CommaPosition = core.CommaPositionBefore
	CommaPositionTabular CommaPosition = core.CommaPositionTabular
)

const (
	DefaultIndent              = core.DefaultIndent
	DefaultLineWidth           = core.DefaultLineWidth
	DefaultLinesBetweenQueries = core.DefaultLinesBetweenQueries
)

// NewDefaultConfig returns a Config with every default from SPEC_FULL.md §6.2.
func NewDefaultConfig() *Config {
	return core.NewDefaultConfig()
}

// NewDefaultColorConfig returns a reasonable ANSI palette for PrettyFormat.
func NewDefaultColorConfig() *ColorConfig {
	return core.NewDefaultColorConfig()
}

// NewMapParams builds a named ParamsConfig from a string->string map.
func NewMapParams(params map[string]string) *ParamsConfig {
	if params == nil {
		params = map[string]string{}
	}
	return &ParamsConfig{MapParams: params}
}

// NewListParams builds a positional ParamsConfig from an ordered list.
func NewListParams(params []string) *ParamsConfig {
	if params == nil {
		params = []string{}
	}
	return &ParamsConfig{ListParams: params}
}
