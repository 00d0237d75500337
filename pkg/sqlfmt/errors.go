package sqlfmt

import (
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/core"
)

// TokenizerStuckError is returned when the tokenizer's priority-ordered
// lexers all fail to consume a single character at an offset, which
// would otherwise loop forever. It is a type alias for core.TokenizerStuckError
// so callers can errors.As against either package path.
type TokenizerStuckError = core.TokenizerStuckError

// MissingParameterError is returned when a placeholder token has no
// matching entry in the configured parameter store.
type MissingParameterError = core.MissingParameterError

// InvalidConfigError is returned by Format when a Config field fails
// validation (e.g. a non-positive Newline.Count).
type InvalidConfigError = core.InvalidConfigError
