package utils

import "github.com/floriwanna/prettier-sql/pkg/sqlfmt/types"

// InlineBlock decides whether a parenthesized group is short enough to
// render on a single line, and tracks how many nested inline groups are
// currently open.
type InlineBlock struct {
	level     int
	maxLength int
}

// NewInlineBlock creates a detector with the given maximum rendered
// length a group may have (inclusive) to qualify as inline. Callers
// derive this from Config.LineWidth (spec: lineWidth - 2).
func NewInlineBlock(maxLength int) *InlineBlock {
	if maxLength <= 0 {
		maxLength = 48
	}
	return &InlineBlock{maxLength: maxLength}
}

// BeginIfPossible is called at an OPEN_PAREN token. It activates (or, if
// already active, nests deeper into) an inline block when the lookahead
// from this position to its matching close paren fits the budget.
func (ib *InlineBlock) BeginIfPossible(toks []types.Token, index int) {
	switch {
	case ib.level == 0 && ib.isInlineBlock(toks, index):
		ib.level = 1
	case ib.level > 0:
		ib.level++
	default:
		ib.level = 0
	}
}

// End is called at a CLOSE_PAREN token while active; it closes one
// level of nesting.
func (ib *InlineBlock) End() {
	if ib.level > 0 {
		ib.level--
	}
}

// IsActive reports whether formatting is currently inside an inline block.
func (ib *InlineBlock) IsActive() bool {
	return ib.level > 0
}

func (ib *InlineBlock) isInlineBlock(toks []types.Token, index int) bool {
	length := 0
	level := 0

	for i := index; i < len(toks); i++ {
		t := toks[i]
		length += len(t.Value)

		if length > ib.maxLength {
			return false
		}

		switch t.Type {
		case types.TokenTypeOpenParen:
			level++
		case types.TokenTypeCloseParen:
			level--
			if level == 0 {
				return true
			}
		}

		if ib.isForbiddenToken(t) {
			return false
		}
	}
	return false
}

// isForbiddenToken reports whether a token disqualifies the enclosing
// group from being rendered inline.
func (ib *InlineBlock) isForbiddenToken(t types.Token) bool {
	return t.Type == types.TokenTypeReservedTopLevel ||
		t.Type == types.TokenTypeReservedTopLevelNoIndent ||
		t.Type == types.TokenTypeReservedNewline ||
		t.Type == types.TokenTypeLineComment ||
		t.Type == types.TokenTypeBlockComment ||
		t.Value == ";"
}
