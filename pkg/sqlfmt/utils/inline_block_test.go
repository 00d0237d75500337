package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/types"
)

func tok(typ types.TokenType, value string) types.Token {
	return types.Token{Type: typ, Value: value}
}

func TestInlineBlock_ShortGroupQualifies(t *testing.T) {
	ib := NewInlineBlock(20)
	toks := []types.Token{
		tok(types.TokenTypeOpenParen, "("),
		tok(types.TokenTypeWord, "a"),
		tok(types.TokenTypeCloseParen, ")"),
	}

	ib.BeginIfPossible(toks, 0)

	assert.True(t, ib.IsActive())
}

func TestInlineBlock_TooLongGroupIsRejected(t *testing.T) {
	ib := NewInlineBlock(4)
	toks := []types.Token{
		tok(types.TokenTypeOpenParen, "("),
		tok(types.TokenTypeWord, "aaaaaaaaaa"),
		tok(types.TokenTypeCloseParen, ")"),
	}

	ib.BeginIfPossible(toks, 0)

	assert.False(t, ib.IsActive())
}

func TestInlineBlock_TopLevelKeywordForbidsInlining(t *testing.T) {
	ib := NewInlineBlock(40)
	toks := []types.Token{
		tok(types.TokenTypeOpenParen, "("),
		tok(types.TokenTypeReservedTopLevel, "SELECT"),
		tok(types.TokenTypeCloseParen, ")"),
	}

	ib.BeginIfPossible(toks, 0)

	assert.False(t, ib.IsActive())
}

func TestInlineBlock_NestingTracksLevel(t *testing.T) {
	ib := NewInlineBlock(40)
	toks := []types.Token{
		tok(types.TokenTypeOpenParen, "("),
		tok(types.TokenTypeWord, "a"),
		tok(types.TokenTypeCloseParen, ")"),
	}
	ib.BeginIfPossible(toks, 0)
	require := assert.New(t)
	require.True(ib.IsActive())

	ib.BeginIfPossible(toks, 0)
	require.True(ib.IsActive())

	ib.End()
	require.True(ib.IsActive())

	ib.End()
	require.False(ib.IsActive())
}
