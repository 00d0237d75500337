// Package types holds the token vocabulary shared by the tokenizer and the formatter.
package types

// TokenType classifies a lexeme produced by the tokenizer.
type TokenType string

const (
	TokenTypeEmpty                    TokenType = ""
	TokenTypeWhitespace               TokenType = "whitespace"
	TokenTypeWord                     TokenType = "word"
	TokenTypeString                   TokenType = "string"
	TokenTypeReserved                 TokenType = "reserved"
	TokenTypeReservedTopLevel         TokenType = "reserved-top-level"
	TokenTypeReservedTopLevelNoIndent TokenType = "reserved-top-level-no-indent"
	TokenTypeReservedNewline          TokenType = "reserved-newline"
	TokenTypeOperator                 TokenType = "operator"
	TokenTypeOpenParen                TokenType = "open-paren"
	TokenTypeCloseParen               TokenType = "close-paren"
	TokenTypeLineComment              TokenType = "line-comment"
	TokenTypeBlockComment             TokenType = "block-comment"
	TokenTypeNumber                   TokenType = "number"
	TokenTypePlaceholder              TokenType = "placeholder"
	TokenTypeBoolean                  TokenType = "boolean"
	TokenTypeSpecialOperator          TokenType = "special-operator"
)

// Token is an immutable lexeme: its type, its exact source text, the
// whitespace that preceded it, and (for placeholders) its extracted key.
type Token struct {
	Type             TokenType
	Value            string
	WhitespaceBefore string
	Key              string
	Offset           int
}

// Empty reports whether the token carries no lexeme, which is how the
// tokenizer and formatter represent "no token here" without a pointer.
func (t Token) Empty() bool {
	return t.Value == "" || t.Type == TokenTypeEmpty
}
