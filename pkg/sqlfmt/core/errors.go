package core

import "fmt"

// TokenizerStuckError is returned when the tokenizer's priority-ordered
// lexers all fail to consume a single character at an offset, which
// would otherwise loop forever.
type TokenizerStuckError struct {
	Offset int
	Rune   rune
}

func (e *TokenizerStuckError) Error() string {
	return fmt.Sprintf("sqlfmt: tokenizer stuck at offset %d on %q", e.Offset, e.Rune)
}

// MissingParameterError is returned when a placeholder token has no
// matching entry in the configured parameter store.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	if e.Key == "" {
		return "sqlfmt: missing positional parameter"
	}
	return fmt.Sprintf("sqlfmt: missing parameter %q", e.Key)
}

// InvalidConfigError reports a Config field that fails validation before
// formatting begins, e.g. a non-positive Newline.Count or a negative
// LinesBetweenQueries.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("sqlfmt: invalid config field %s: %s", e.Field, e.Reason)
}
