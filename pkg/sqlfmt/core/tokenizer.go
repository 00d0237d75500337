package core

import (
	"regexp"
	"sort"
	"strings"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/types"
)

// tokenizer turns raw SQL text into a token stream according to the
// passive data table held in a TokenizerConfig. All of its lexers are
// priority-ordered regex matches tried in a fixed sequence; the first
// one that matches at the current offset wins.
type tokenizer struct {
	whitespaceRegex               *regexp.Regexp
	numberRegex                   *regexp.Regexp
	operatorRegex                 *regexp.Regexp
	booleanRegex                  *regexp.Regexp
	blockCommentRegex             *regexp.Regexp
	lineCommentRegex              *regexp.Regexp
	reservedTopLevelRegex         *regexp.Regexp
	reservedTopLevelNoIndentRegex *regexp.Regexp
	reservedNewlineRegex          *regexp.Regexp
	reservedPlainRegex            *regexp.Regexp
	wordRegex                     *regexp.Regexp
	stringRegex                   *regexp.Regexp
	openParenRegex                *regexp.Regexp
	closeParenRegex               *regexp.Regexp
	indexedPlaceholderRegex       *regexp.Regexp
	identNamedPlaceholderRegex    *regexp.Regexp
	stringNamedPlaceholderRegex   *regexp.Regexp
}

func newTokenizer(cfg *TokenizerConfig) *tokenizer {
	operatorPattern := `^(!=|<>|<=>|==|<=|>=|=>|!<|!>|\|\||::|:=|->>|->|#>>|#>|<<|>>|` +
		`\?\||\?&|\?|@>|<@|~~\*|~~|!~~\*|!~~|~\*|!~\*|!~|.)`
	return &tokenizer{
		whitespaceRegex:               regexp.MustCompile(`^(\s+)`),
		numberRegex:                   regexp.MustCompile(`^((-\s*)?[0-9]+(\.[0-9]+)?|0x[0-9a-fA-F]+|0b[01]+)\b`),
		operatorRegex:                 regexp.MustCompile(operatorPattern),
		booleanRegex:                  regexp.MustCompile(`(?i)^(\b(true|false)\b)`),
		blockCommentRegex:             regexp.MustCompile(`^(/\*(?s:.)*?(?:\*/|$))`),
		lineCommentRegex:              createLineCommentRegex(cfg.LineCommentTypes),
		reservedTopLevelRegex:         createReservedWordRegex(cfg.ReservedTopLevelWords),
		reservedTopLevelNoIndentRegex: createReservedWordRegex(cfg.ReservedTopLevelWordsNoIndent),
		reservedNewlineRegex:          createReservedWordRegex(cfg.ReservedNewlineWords),
		reservedPlainRegex:            createReservedWordRegex(cfg.ReservedWords),
		wordRegex:                     createWordRegex(cfg.SpecialWordChars),
		stringRegex:                   createStringRegex(cfg.StringTypes),
		openParenRegex:                createParenRegex(cfg.OpenParens),
		closeParenRegex:               createParenRegex(cfg.CloseParens),
		indexedPlaceholderRegex:       createPlaceholderRegex(cfg.IndexedPlaceholderTypes, `[0-9]*`),
		identNamedPlaceholderRegex:    createPlaceholderRegex(cfg.NamedPlaceholderTypes, `[a-zA-Z0-9._$]+`),
		stringNamedPlaceholderRegex: createPlaceholderRegex(
			cfg.NamedPlaceholderTypes, createStringPattern(cfg.StringTypes)),
	}
}

func createLineCommentRegex(lineCommentTypes []string) *regexp.Regexp {
	if len(lineCommentTypes) == 0 {
		return nil
	}
	pattern := `^((?:` + strings.Join(lineCommentTypes, `|`) + `).*?(?:\r\n|\r|\n|$))`
	return regexp.MustCompile(pattern)
}

func createReservedWordRegex(reservedWords []string) *regexp.Regexp {
	if len(reservedWords) == 0 {
		return nil
	}
	// Longer matches must win: "GROUP BY" before "GROUP", "UNION ALL" before "UNION".
	sorted := make([]string, len(reservedWords))
	copy(sorted, reservedWords)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	pattern := strings.Join(sorted, `|`)
	pattern = strings.ReplaceAll(pattern, " ", `\s+`)
	return regexp.MustCompile(`(?i)^(` + pattern + `)\b`)
}

func createWordRegex(specialChars []string) *regexp.Regexp {
	specialVariableChars := regexp.QuoteMeta(`_@'"[]$?` + "`")
	pattern := `^([\pL\pM\pN` + specialVariableChars + strings.Join(specialChars, ``) + `]+)`
	return regexp.MustCompile(pattern)
}

func createStringRegex(stringTypes []string) *regexp.Regexp {
	p := createStringPattern(stringTypes)
	if p == "" {
		return nil
	}
	return regexp.MustCompile(`^(` + p + `)`)
}

func createStringPattern(stringTypes []string) string {
	patterns := map[string]string{
		"``":  "((`[^`]*($|`))+)",
		"[]":  "((\\[[^\\]]*($|\\]))(\\][^\\]]*($|\\]))*)",
		`""`:  `(("[^"\\]*(?:\\.[^"\\]*)*("|$))+)`,
		"''":  `(('[^'\\]*(?:\\.[^'\\]*)*('|$))+)`,
		"N''": `((N'[^N'\\]*(?:\\.[^N'\\]*)*('|$))+)`,
		"X''": `(((?i)[Xx]'[0-9a-fA-F]*($|'))+)`,
		"B''": `(((?i)[Bb]'[01]*($|'))+)`,
		"$$":  `((\$\$[^\$]*($|\$\$))+)`,
	}
	result := make([]string, 0, len(stringTypes))
	for _, t := range stringTypes {
		if p, ok := patterns[t]; ok {
			result = append(result, p)
		}
	}
	return strings.Join(result, "|")
}

func createParenRegex(parens []string) *regexp.Regexp {
	if len(parens) == 0 {
		return nil
	}
	sorted := make([]string, len(parens))
	copy(sorted, parens)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	patterns := make([]string, len(sorted))
	for i, p := range sorted {
		patterns[i] = escapeParen(p)
	}
	return regexp.MustCompile(`(?i)^(` + strings.Join(patterns, `|`) + `)`)
}

func escapeParen(paren string) string {
	if len(paren) == 1 {
		return regexp.QuoteMeta(paren)
	}
	return `\b` + regexp.QuoteMeta(paren) + `\b`
}

func createPlaceholderRegex(placeholderTypes []string, pattern string) *regexp.Regexp {
	if len(placeholderTypes) == 0 {
		return nil
	}
	esc := make([]string, 0, len(placeholderTypes))
	for _, t := range placeholderTypes {
		esc = append(esc, regexp.QuoteMeta(t))
	}
	typesRegex := strings.Join(esc, `|`)
	return regexp.MustCompile(`^((?:` + typesRegex + `)(?:` + pattern + `))`)
}

// tokenize runs the lexer to completion, returning a TokenizerStuckError
// if no lexer can consume a single character at some offset.
func (t *tokenizer) tokenize(input string) ([]types.Token, error) {
	var (
		tok  types.Token
		toks []types.Token
		rest = input
		off  = 0
	)
	for len(rest) > 0 {
		tok = t.getNextToken(rest, tok)
		if tok.Empty() {
			r := []rune(rest)[0]
			return nil, &TokenizerStuckError{Offset: off, Rune: r}
		}
		tok.Offset = off
		if len(toks) > 0 && toks[len(toks)-1].Type == types.TokenTypeWhitespace {
			tok.WhitespaceBefore = toks[len(toks)-1].Value
		}
		rest = rest[len(tok.Value):]
		off += len(tok.Value)
		toks = append(toks, tok)
	}
	return toks, nil
}

func (t *tokenizer) getNextToken(input string, prevTok types.Token) types.Token {
	return firstNonEmptyToken(
		t.getWhitespaceToken(input),
		t.getCommentToken(input),
		t.getStringToken(input),
		t.getOpenParenToken(input),
		t.getCloseParenToken(input),
		t.getPlaceholderToken(input),
		t.getNumberToken(input),
		t.getReservedWordToken(input, prevTok),
		t.getBooleanToken(input),
		t.getWordToken(input),
		t.getOperatorToken(input),
	)
}

func (t *tokenizer) getWhitespaceToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeWhitespace, t.whitespaceRegex)
}

func (t *tokenizer) getCommentToken(input string) types.Token {
	if tok := t.getLineCommentToken(input); !tok.Empty() {
		return tok
	}
	return t.getBlockCommentToken(input)
}

func (t *tokenizer) getLineCommentToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeLineComment, t.lineCommentRegex)
}

func (t *tokenizer) getBlockCommentToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeBlockComment, t.blockCommentRegex)
}

func (t *tokenizer) getStringToken(input string) types.Token {
	if tok := scanDollarQuotedString(input); !tok.Empty() {
		return tok
	}
	return t.getTokenOnFirstMatch(input, types.TokenTypeString, t.stringRegex)
}

func (t *tokenizer) getOpenParenToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeOpenParen, t.openParenRegex)
}

func (t *tokenizer) getCloseParenToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeCloseParen, t.closeParenRegex)
}

func (t *tokenizer) getPlaceholderToken(input string) types.Token {
	return firstNonEmptyToken(
		t.getIdentNamedPlaceholderToken(input),
		t.getStringNamedPlaceholderToken(input),
		t.getIndexedPlaceholderToken(input),
	)
}

func (t *tokenizer) getIdentNamedPlaceholderToken(input string) types.Token {
	if hasPrefixOperatorCollision(input) {
		return types.Token{}
	}
	tok := t.getTokenOnFirstMatch(input, types.TokenTypePlaceholder, t.identNamedPlaceholderRegex)
	if tok.Value != "" {
		tok.Key = tok.Value[1:]
	}
	return tok
}

func (t *tokenizer) getStringNamedPlaceholderToken(input string) types.Token {
	if shouldSkipStringNamedPlaceholder(input) {
		return types.Token{}
	}
	tok := t.getTokenOnFirstMatch(input, types.TokenTypePlaceholder, t.stringNamedPlaceholderRegex)
	if tok.Value != "" {
		l := len(tok.Value)
		tok.Key = unescapeQuote(tok.Value[2:l-1], tok.Value[l-1:])
	}
	return tok
}

// shouldSkipStringNamedPlaceholder guards against misreading the JSON
// containment/existence operators (@>, <@, ?|, ?&) as the start of a
// named placeholder.
func shouldSkipStringNamedPlaceholder(input string) bool {
	if len(input) < 2 {
		return false
	}
	if input[0] == '@' && input[1] == '>' {
		return true
	}
	if input[0] == '<' && len(input) > 2 && input[1] == '@' {
		return true
	}
	if input[0] == '?' && (input[1] == '|' || input[1] == '&') {
		return true
	}
	return false
}

func hasPrefixOperatorCollision(input string) bool {
	if len(input) < 2 {
		return false
	}
	return (input[0] == '@' && input[1] == '>') || (input[0] == '<' && input[1] == '@')
}

func (t *tokenizer) getIndexedPlaceholderToken(input string) types.Token {
	if len(input) >= 2 && input[0] == '?' && (input[1] == '|' || input[1] == '&') {
		return types.Token{}
	}
	if len(input) >= 2 && input[0] == ':' && input[1] == '=' {
		return types.Token{}
	}
	tok := t.getTokenOnFirstMatch(input, types.TokenTypePlaceholder, t.indexedPlaceholderRegex)
	if tok.Value != "" {
		tok.Key = tok.Value[1:]
	}
	return tok
}

func unescapeQuote(key string, quoteChar string) string {
	re := regexp.MustCompile(regexp.QuoteMeta("\\" + quoteChar))
	return re.ReplaceAllString(key, quoteChar)
}

func (t *tokenizer) getNumberToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeNumber, t.numberRegex)
}

func (t *tokenizer) getOperatorToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeOperator, t.operatorRegex)
}

func (t *tokenizer) getReservedWordToken(input string, prevTok types.Token) types.Token {
	// "my_table.from" must not tokenize "from" as a reserved word.
	if !prevTok.Empty() && prevTok.Value == "." {
		return types.Token{}
	}
	return firstNonEmptyToken(
		t.getTopLevelReservedToken(input),
		t.getNewlineReservedToken(input),
		t.getTopLevelReservedTokenNoIndent(input),
		t.getPlainReservedToken(input),
	)
}

func (t *tokenizer) getTopLevelReservedToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeReservedTopLevel, t.reservedTopLevelRegex)
}

func (t *tokenizer) getNewlineReservedToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeReservedNewline, t.reservedNewlineRegex)
}

func (t *tokenizer) getTopLevelReservedTokenNoIndent(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeReservedTopLevelNoIndent, t.reservedTopLevelNoIndentRegex)
}

func (t *tokenizer) getPlainReservedToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeReserved, t.reservedPlainRegex)
}

func (t *tokenizer) getBooleanToken(input string) types.Token {
	return t.getTokenOnFirstMatch(input, types.TokenTypeBoolean, t.booleanRegex)
}

func (t *tokenizer) getWordToken(input string) types.Token {
	if shouldSkipWord(input) {
		return types.Token{}
	}
	tok := t.getTokenOnFirstMatch(input, types.TokenTypeWord, t.wordRegex)
	if shouldSkipMatchedWord(tok, input) {
		return types.Token{}
	}
	return tok
}

func shouldSkipWord(input string) bool {
	if len(input) < 2 {
		return false
	}
	if input[0] == '@' && input[1] == '>' {
		return true
	}
	if input[0] == '?' && (input[1] == '|' || input[1] == '&') {
		return true
	}
	return false
}

func shouldSkipMatchedWord(tok types.Token, input string) bool {
	if len(input) < 2 {
		return false
	}
	if tok.Value == "@" && input[1] == '>' {
		return true
	}
	if tok.Value == "?" && (input[1] == '|' || input[1] == '&') {
		return true
	}
	return false
}

// getTokenOnFirstMatch returns a Token of type typ built from the first
// regex submatch found at the start of input, or the empty Token.
func (t *tokenizer) getTokenOnFirstMatch(input string, typ types.TokenType, re *regexp.Regexp) types.Token {
	if re == nil {
		return types.Token{}
	}
	matches := re.FindStringSubmatch(input)
	if len(matches) > 0 {
		return types.Token{Type: typ, Value: matches[0]}
	}
	return types.Token{}
}

func firstNonEmptyToken(toks ...types.Token) types.Token {
	for _, tok := range toks {
		if !tok.Empty() {
			return tok
		}
	}
	return types.Token{}
}

// scanDollarQuotedString recognizes PostgreSQL-style $tag$...$tag$ string
// literals, which a fixed-width regex cannot express because the tag is
// variable-length and must match on both ends.
func scanDollarQuotedString(input string) types.Token {
	if len(input) == 0 || input[0] != '$' {
		return types.Token{}
	}
	openingTag := findDollarQuoteTag(input)
	if openingTag == "" {
		return types.Token{}
	}
	return findClosingDollarQuote(input, openingTag)
}

func findDollarQuoteTag(input string) string {
	for i := 1; i < len(input); i++ {
		if input[i] == '$' {
			return input[:i+1]
		}
		if !isValidTagChar(input[i]) {
			return ""
		}
	}
	return ""
}

func findClosingDollarQuote(input, openingTag string) types.Token {
	searchStart := len(openingTag)
	for i := searchStart; i <= len(input)-len(openingTag); i++ {
		if hasMatchingTag(input, i, openingTag) {
			return types.Token{Type: types.TokenTypeString, Value: input[:i+len(openingTag)]}
		}
	}
	return types.Token{Type: types.TokenTypeString, Value: input}
}

func isValidTagChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_'
}

func hasMatchingTag(input string, i int, tag string) bool {
	return i+len(tag) <= len(input) && input[i:i+len(tag)] == tag
}
