package sqlfmt

import (
	"fmt"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/dialects"
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/utils"
)

// Formatter is implemented by every per-dialect formatter returned from
// dialects.CreateFormatterForLanguage.
type Formatter = dialects.Formatter

// Format renders query under cfg's rules, or NewDefaultConfig's if no
// config is given. Passing more than one config is a programming error.
func Format(query string, cfg ...*Config) (string, error) {
	return getFormatter(false, cfg...).Format(query)
}

// PrettyFormat formats the query the same as Format but wraps tokens in
// the ANSI escapes from cfg.ColorConfig (or a reasonable default palette
// if none is set).
func PrettyFormat(query string, cfg ...*Config) (string, error) {
	return getFormatter(true, cfg...).Format(query)
}

// MustFormat is Format for callers who know the query is well-formed;
// it panics instead of returning an error.
func MustFormat(query string, cfg ...*Config) string {
	out, err := Format(query, cfg...)
	if err != nil {
		panic(err)
	}
	return out
}

func getFormatter(forceWithColor bool, cfg ...*Config) Formatter {
	c := NewDefaultConfig()

	if len(cfg) > 1 {
		panic("sqlfmt: Format accepts at most one Config")
	}
	if len(cfg) == 1 && cfg[0] != nil {
		c = cfg[0]
	}

	if forceWithColor && c.ColorConfig.Empty() {
		c.ColorConfig = NewDefaultColorConfig()
	}
	if c.TokenizerConfig == nil {
		c.TokenizerConfig = &TokenizerConfig{}
	}
	if c.Params == nil {
		c.Params = &ParamsConfig{}
	}

	return dialects.CreateFormatterForLanguage(c)
}

// Dedent removes the common leading whitespace from every line in a
// block of text. Handy for writing multi-line SQL fixtures inline.
func Dedent(text string) string {
	return utils.Dedent(text)
}

// ANSI palette constants, re-exported so callers configuring a
// ColorConfig don't need to import pkg/sqlfmt/utils directly.
const (
	FormatReset = utils.FormatReset
	FormatBold  = utils.FormatBold

	ColorRed        = utils.ColorRed
	ColorGreen      = utils.ColorGreen
	ColorBlue       = utils.ColorBlue
	ColorCyan       = utils.ColorCyan
	ColorPurple     = utils.ColorPurple
	ColorGray       = utils.ColorGray
	ColorBrightBlue = utils.ColorBrightBlue
	ColorBrightCyan = utils.ColorBrightCyan
)

// PrettyPrint formats the query with PrettyFormat and prints it to stdout.
func PrettyPrint(query string, cfg ...*Config) error {
	out, err := PrettyFormat(query, cfg...)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
