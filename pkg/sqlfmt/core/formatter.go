package core

import (
	"regexp"
	"strings"

	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/types"
	"github.com/floriwanna/prettier-sql/pkg/sqlfmt/utils"
)

var (
	limitKeywordRegex         = regexp.MustCompile(`(?i)^LIMIT$`)
	newlineFollowedByWsRegex  = regexp.MustCompile(`\n[ \t]*`)
	atLeastOneWhitespaceRegex = regexp.MustCompile(`\s+`)
)

const (
	commentSpacing = 1
	tenSpaceField  = 9
)

// trimSpacesEnd removes trailing spaces and tabs from the builder in place.
func trimSpacesEnd(b *strings.Builder) {
	s := strings.TrimRight(b.String(), " \t")
	b.Reset()
	b.WriteString(s)
}

// formatter walks a tokenized query once and renders it, driving
// indentation, inline-block detection and parameter substitution off of
// a dispatch table keyed by token type.
type formatter struct {
	cfg           *Config
	indentation   *utils.Indentation
	inlineBlock   *utils.InlineBlock
	params        *utils.Params
	tokenizer     *tokenizer
	tokenOverride func(tok types.Token, previousReservedWord types.Token) types.Token

	previousReservedWord types.Token
	tokens               []types.Token
	index                int
	err                  error

	inSelectClause      bool
	selectColumnLengths []int
	currentColumnLength int
	currentSelectIndex  int

	aliasColumnLengths []int

	inUpdateSetClause       bool
	updateAssignmentLengths []int
	currentAssignmentLength int
	currentUpdateIndex      int

	inInsertValuesClause bool
	insertValuesLengths  []int
	currentInsertIndex   int

	currentLineLength int
}

func newFormatter(cfg *Config, tok *tokenizer, tokenOverride func(types.Token, types.Token) types.Token) *formatter {
	if cfg.ColorConfig == nil {
		cfg.ColorConfig = &ColorConfig{}
	}
	return &formatter{
		cfg:           cfg,
		indentation:   utils.NewIndentation(cfg.ResolvedIndent()),
		inlineBlock:   utils.NewInlineBlock(cfg.LineWidth - 2),
		params:        utils.NewParams(cfg.Params),
		tokenizer:     tok,
		tokenOverride: tokenOverride,
	}
}

// FormatQuery tokenizes and renders a single query string under cfg.
// tokenOverride, when non-nil, lets a dialect rewrite a token in light
// of the most recently seen reserved word (PostgreSQL's "::" cast is the
// motivating example).
func FormatQuery(
	cfg *Config,
	tokenOverride func(tok types.Token, previousReservedWord types.Token) types.Token,
	query string,
) (string, error) {
	cfg.normalizeDefaults()
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	tc := resolveTokenizerConfig(cfg)
	tok := newTokenizer(tc)
	f := newFormatter(cfg, tok, tokenOverride)
	return f.format(query)
}

// resolveTokenizerConfig clones the dialect's TokenizerConfig and moves
// AND/OR between the plain and newline-breaking reserved-word buckets
// according to Config.BreakBeforeBooleanOperator.
func resolveTokenizerConfig(cfg *Config) *TokenizerConfig {
	if cfg.TokenizerConfig == nil {
		return &TokenizerConfig{}
	}
	clone := *cfg.TokenizerConfig
	clone.ReservedWords = append([]string{}, cfg.TokenizerConfig.ReservedWords...)
	clone.ReservedNewlineWords = append([]string{}, cfg.TokenizerConfig.ReservedNewlineWords...)

	booleanOps := []string{"AND", "OR"}
	if cfg.BreakBeforeBooleanOperator {
		clone.ReservedNewlineWords = addWords(clone.ReservedNewlineWords, booleanOps)
		clone.ReservedWords = removeWords(clone.ReservedWords, booleanOps)
	} else {
		clone.ReservedWords = addWords(clone.ReservedWords, booleanOps)
		clone.ReservedNewlineWords = removeWords(clone.ReservedNewlineWords, booleanOps)
	}
	return &clone
}

func addWords(list []string, words []string) []string {
	for _, w := range words {
		if !containsWordFold(list, w) {
			list = append(list, w)
		}
	}
	return list
}

func removeWords(list []string, words []string) []string {
	out := list[:0:0]
	for _, v := range list {
		skip := false
		for _, w := range words {
			if strings.EqualFold(v, w) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, v)
		}
	}
	return out
}

func containsWordFold(list []string, w string) bool {
	for _, v := range list {
		if strings.EqualFold(v, w) {
			return true
		}
	}
	return false
}

// format runs the full pipeline: tokenize, pre-analyze, render.
func (f *formatter) format(query string) (string, error) {
	toks, err := f.tokenizer.tokenize(query)
	if err != nil {
		return "", err
	}
	f.tokens = toks

	f.applyAliasPolicy()

	if f.cfg.AlignColumnNames {
		f.analyzeSelectClauses()
	}
	if f.cfg.AlignAssignments {
		f.analyzeUpdateSetClauses()
	}
	if f.cfg.AlignValues {
		f.analyzeInsertValuesClauses()
	}
	if f.cfg.TabulateAlias {
		f.analyzeAliasColumns()
	}

	formatted := f.getFormattedQueryFromTokens()
	if f.err != nil {
		return "", f.err
	}
	return strings.TrimSpace(formatted), nil
}

// applyAliasPolicy inserts or strips an implicit alias's AS keyword
// according to Config.AliasAs, operating on the token stream before the
// main render pass so every downstream pass (alignment, tabulation) sees
// the final shape.
func (f *formatter) applyAliasPolicy() {
	if f.cfg.AliasAs == AliasAsExplicit || len(f.tokens) == 0 {
		return
	}

	out := make([]types.Token, 0, len(f.tokens))
	inSelect := false

	nextSignificant := func(from int) (types.Token, int) {
		for j := from; j < len(f.tokens); j++ {
			t := f.tokens[j]
			if t.Type != types.TokenTypeWhitespace {
				return t, j
			}
		}
		return types.Token{}, -1
	}
	lastSignificant := func() types.Token {
		for j := len(out) - 1; j >= 0; j-- {
			if out[j].Type != types.TokenTypeWhitespace {
				return out[j]
			}
		}
		return types.Token{}
	}
	isAliasable := func(t types.Token) bool {
		return t.Type == types.TokenTypeWord || t.Type == types.TokenTypeString || t.Type == types.TokenTypeCloseParen
	}

	for i := 0; i < len(f.tokens); i++ {
		tok := f.tokens[i]

		if tok.Type == types.TokenTypeReservedTopLevel {
			switch {
			case strings.EqualFold(tok.Value, "SELECT"):
				inSelect = true
			case f.isSelectClauseTerminator(tok.Value):
				inSelect = false
			}
		}

		if f.cfg.AliasAs == AliasAsNever && tok.Type == types.TokenTypeReserved && strings.EqualFold(tok.Value, "AS") {
			prev := lastSignificant()
			next, _ := nextSignificant(i + 1)
			if isAliasable(prev) && next.Type == types.TokenTypeWord {
				continue
			}
		}

		out = append(out, tok)

		shouldInsert := f.cfg.AliasAs == AliasAsAlways || (f.cfg.AliasAs == AliasAsSelect && inSelect)
		if shouldInsert && isAliasable(tok) {
			next, nj := nextSignificant(i + 1)
			if next.Type == types.TokenTypeWord {
				afterNext, _ := nextSignificant(nj + 1)
				if afterNext.Value != "(" {
					out = append(out, types.Token{Type: types.TokenTypeWhitespace, Value: " "})
					out = append(out, types.Token{Type: types.TokenTypeReserved, Value: "AS"})
				}
			}
		}
	}

	f.tokens = out
}

func (f *formatter) analyzeSelectClauses() {
	f.selectColumnLengths = nil
	for i, tok := range f.tokens {
		f.index = i
		if tok.Type == types.TokenTypeReservedTopLevel && strings.EqualFold(tok.Value, "SELECT") {
			f.analyzeSelectClause()
		}
	}
}

func (f *formatter) analyzeUpdateSetClauses() {
	f.updateAssignmentLengths = nil
	for i, tok := range f.tokens {
		f.index = i
		if tok.Type == types.TokenTypeReservedTopLevel && strings.EqualFold(tok.Value, "UPDATE") {
			f.analyzeUpdateSetClause()
		}
	}
}

func (f *formatter) analyzeInsertValuesClauses() {
	f.insertValuesLengths = nil
	for i, tok := range f.tokens {
		f.index = i
		if tok.Type == types.TokenTypeReservedTopLevel && strings.EqualFold(tok.Value, "INSERT") {
			f.analyzeInsertValuesClause()
		}
	}
}

func (f *formatter) analyzeAliasColumns() {
	f.aliasColumnLengths = nil
	for i, tok := range f.tokens {
		f.index = i
		if tok.Type == types.TokenTypeReservedTopLevel && strings.EqualFold(tok.Value, "SELECT") {
			f.analyzeAliasColumn()
		}
	}
}

func (f *formatter) analyzeSelectClause() {
	endIndex := f.findSelectClauseEnd()
	if endIndex == -1 {
		endIndex = len(f.tokens)
	}

	var columnLengths []int
	currentLength := 0

	for i := f.index + 1; i < endIndex; i++ {
		tok := f.tokens[i]
		if tok.Type == types.TokenTypeReservedTopLevel && f.isSelectClauseTerminator(tok.Value) {
			break
		}
		if tok.Value == "," {
			if currentLength > 0 {
				columnLengths = append(columnLengths, currentLength)
				currentLength = 0
			}
		} else if tok.Type != types.TokenTypeWhitespace && tok.Type != types.TokenTypeLineComment && tok.Type != types.TokenTypeBlockComment {
			if tok.Type == types.TokenTypeReserved {
				currentLength += len(f.formatReservedWord(tok.Value)) + 1
			} else {
				currentLength += len(tok.Value) + 1
			}
		}
	}
	if currentLength > 0 {
		columnLengths = append(columnLengths, currentLength)
	}
	if len(columnLengths) > 0 {
		f.selectColumnLengths = append(f.selectColumnLengths, maxInt(columnLengths))
	}
}

func (f *formatter) analyzeAliasColumn() {
	endIndex := f.findSelectClauseEnd()
	if endIndex == -1 {
		endIndex = len(f.tokens)
	}

	var lengths []int
	currentLength := 0

	for i := f.index + 1; i < endIndex; i++ {
		tok := f.tokens[i]
		switch {
		case tok.Type == types.TokenTypeReservedTopLevel && f.isSelectClauseTerminator(tok.Value):
			i = endIndex
		case tok.Value == ",":
			currentLength = 0
		case tok.Type == types.TokenTypeReserved && strings.EqualFold(tok.Value, "AS"):
			lengths = append(lengths, currentLength)
		case tok.Type != types.TokenTypeWhitespace && tok.Type != types.TokenTypeLineComment && tok.Type != types.TokenTypeBlockComment:
			if tok.Type == types.TokenTypeReserved {
				currentLength += len(f.formatReservedWord(tok.Value)) + 1
			} else {
				currentLength += len(tok.Value) + 1
			}
		}
	}
	if len(lengths) > 0 {
		f.aliasColumnLengths = append(f.aliasColumnLengths, maxInt(lengths))
	}
}

func (f *formatter) analyzeUpdateSetClause() {
	setIndex := -1
	for i := f.index + 1; i < len(f.tokens); i++ {
		if f.tokens[i].Type == types.TokenTypeReservedTopLevel && strings.EqualFold(f.tokens[i].Value, "SET") {
			setIndex = i
			break
		}
	}
	if setIndex == -1 {
		return
	}

	endIndex := f.findUpdateSetClauseEnd(setIndex)
	if endIndex == -1 {
		endIndex = len(f.tokens)
	}

	var assignmentLengths []int
	currentLength := 0

	for i := setIndex + 1; i < endIndex; i++ {
		tok := f.tokens[i]
		if tok.Type == types.TokenTypeReservedTopLevel && f.isUpdateSetClauseTerminator(tok.Value) {
			break
		}
		switch tok.Value {
		case "=":
			if currentLength > 0 {
				assignmentLengths = append(assignmentLengths, currentLength)
				currentLength = 0
			}
		case ",":
			continue
		default:
			if tok.Type != types.TokenTypeWhitespace && tok.Type != types.TokenTypeLineComment && tok.Type != types.TokenTypeBlockComment {
				if tok.Type == types.TokenTypeReserved {
					currentLength += len(f.formatReservedWord(tok.Value)) + 1
				} else {
					currentLength += len(tok.Value) + 1
				}
			}
		}
	}
	if len(assignmentLengths) > 0 {
		f.updateAssignmentLengths = append(f.updateAssignmentLengths, maxInt(assignmentLengths))
	}
}

func (f *formatter) analyzeInsertValuesClause() {
	for i := f.index + 1; i < len(f.tokens); i++ {
		if f.tokens[i].Type == types.TokenTypeReservedTopLevel && strings.EqualFold(f.tokens[i].Value, "VALUES") {
			f.insertValuesLengths = append(f.insertValuesLengths, 1)
			return
		}
	}
}

func maxInt(vs []int) int {
	m := 0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func (f *formatter) findSelectClauseEnd() int {
	for i := f.index + 1; i < len(f.tokens); i++ {
		if f.tokens[i].Type == types.TokenTypeReservedTopLevel && f.isSelectClauseTerminator(f.tokens[i].Value) {
			return i
		}
	}
	return -1
}

func (f *formatter) findUpdateSetClauseEnd(setIndex int) int {
	for i := setIndex + 1; i < len(f.tokens); i++ {
		if f.tokens[i].Type == types.TokenTypeReservedTopLevel && f.isUpdateSetClauseTerminator(f.tokens[i].Value) {
			return i
		}
	}
	return -1
}

func (f *formatter) isSelectClauseTerminator(value string) bool {
	for _, term := range []string{"FROM", "WHERE", "GROUP BY", "ORDER BY", "HAVING", "LIMIT", "UNION", "INTERSECT", "EXCEPT"} {
		if strings.EqualFold(value, term) {
			return true
		}
	}
	return false
}

func (f *formatter) isUpdateSetClauseTerminator(value string) bool {
	for _, term := range []string{"WHERE", "FROM", "RETURNING"} {
		if strings.EqualFold(value, term) {
			return true
		}
	}
	return false
}

func (f *formatter) isInsertValuesClauseTerminator(value string) bool {
	for _, term := range []string{"WHERE", "FROM", "RETURNING", "ON"} {
		if strings.EqualFold(value, term) {
			return true
		}
	}
	return false
}

func (f *formatter) getFormattedQueryFromTokens() string {
	out := &strings.Builder{}
	for i, tok := range f.tokens {
		f.index = i
		if f.tokenOverride != nil {
			tok = f.tokenOverride(tok, f.previousReservedWord)
		}
		f.formatToken(tok, out)
	}
	return out.String()
}

func (f *formatter) formatToken(tok types.Token, query *strings.Builder) {
	switch tok.Type {
	case types.TokenTypeWhitespace:
		return
	case types.TokenTypeLineComment:
		f.formatLineComment(tok, query)
	case types.TokenTypeBlockComment:
		f.formatBlockComment(tok, query)
	case types.TokenTypeReservedTopLevel:
		f.formatReservedTopLevelToken(tok, query)
	case types.TokenTypeReservedTopLevelNoIndent:
		f.formatReservedTopLevelNoIndentToken(tok, query)
	case types.TokenTypeReservedNewline:
		f.formatReservedNewlineToken(tok, query)
	case types.TokenTypeReserved:
		f.formatReservedToken(tok, query)
	case types.TokenTypeOpenParen:
		f.formatOpeningParentheses(tok, query)
	case types.TokenTypeCloseParen:
		f.formatClosingParentheses(tok, query)
	case types.TokenTypeWord, types.TokenTypePlaceholder:
		f.formatWordOrPlaceholder(tok, query)
	case types.TokenTypeString:
		f.formatString(tok, query)
	case types.TokenTypeNumber:
		f.formatNumber(tok, query)
	case types.TokenTypeBoolean:
		f.formatBoolean(tok, query)
	case types.TokenTypeSpecialOperator:
		f.formatSpecialOperator(tok, query)
	default:
		f.formatDefaultToken(tok, query)
	}
}

// formatSpecialOperator renders a dialect-overridden operator (e.g.
// PostgreSQL's "::" cast) flush against its neighbors, with no spacing
// on either side.
func (f *formatter) formatSpecialOperator(tok types.Token, query *strings.Builder) {
	trimSpacesEnd(query)
	query.WriteString(tok.Value)
	f.updateLineLength(tok.Value)
}

func (f *formatter) formatReservedTopLevelToken(tok types.Token, query *strings.Builder) {
	f.formatTopLevelReservedWord(tok, query)

	switch {
	case strings.EqualFold(tok.Value, "SELECT"):
		f.inSelectClause = true
		f.currentColumnLength = 0
	case f.inSelectClause && f.isSelectClauseTerminator(tok.Value):
		f.inSelectClause = false
		f.currentSelectIndex++
	}

	switch {
	case strings.EqualFold(tok.Value, "UPDATE"):
		f.inUpdateSetClause = false
		f.currentUpdateIndex++
	case strings.EqualFold(tok.Value, "SET") && f.cfg.AlignAssignments:
		f.inUpdateSetClause = true
		f.currentAssignmentLength = 0
	case f.inUpdateSetClause && f.isUpdateSetClauseTerminator(tok.Value):
		f.inUpdateSetClause = false
	}

	switch {
	case strings.EqualFold(tok.Value, "INSERT"):
		f.inInsertValuesClause = false
		f.currentInsertIndex++
	case strings.EqualFold(tok.Value, "VALUES") && f.cfg.AlignValues:
		f.inInsertValuesClause = true
	case f.inInsertValuesClause && f.isInsertValuesClauseTerminator(tok.Value):
		f.inInsertValuesClause = false
	}

	f.previousReservedWord = tok
}

func (f *formatter) formatReservedTopLevelNoIndentToken(tok types.Token, query *strings.Builder) {
	f.indentation.DecreaseTopLevel()
	f.addNewline(query)
	value := f.equalizeWhitespace(f.formatReservedWord(tok.Value))
	query.WriteString(value)
	f.updateLineLength(value)
	f.addNewline(query)
	f.previousReservedWord = tok
}

func (f *formatter) formatTopLevelReservedWord(tok types.Token, query *strings.Builder) {
	f.indentation.DecreaseTopLevel()
	f.addNewline(query)
	f.indentation.IncreaseTopLevel()

	value := f.equalizeWhitespace(f.formatReservedWord(tok.Value))

	switch f.cfg.KeywordPosition {
	case KeywordPositionTenSpaceLeft:
		trimSpacesEnd(query)
		query.WriteString(padToWidth(value, tenSpaceField, true))
		f.currentLineLength = tenSpaceField + 1
	case KeywordPositionTenSpaceRight:
		trimSpacesEnd(query)
		query.WriteString(padToWidth(value, tenSpaceField, false))
		f.currentLineLength = tenSpaceField + 1
	default:
		query.WriteString(value)
		f.updateLineLength(value)
		f.addNewline(query)
	}
}

func padToWidth(value string, width int, left bool) string {
	visible := utils.VisibleLength(value)
	if visible >= width {
		return value + " "
	}
	pad := strings.Repeat(" ", width-visible)
	if left {
		return value + pad + " "
	}
	return pad + value + " "
}

func (f *formatter) formatReservedNewlineToken(tok types.Token, query *strings.Builder) {
	f.addNewline(query)
	value := f.equalizeWhitespace(f.formatReservedWord(tok.Value))
	query.WriteString(value)
	query.WriteString(" ")
	f.updateLineLength(value + " ")
	f.previousReservedWord = tok
}

func (f *formatter) equalizeWhitespace(s string) string {
	return atLeastOneWhitespaceRegex.ReplaceAllString(s, " ")
}

func (f *formatter) formatOpeningParentheses(tok types.Token, query *strings.Builder) {
	preserveWhitespaceFor := map[types.TokenType]struct{}{
		types.TokenTypeWhitespace:  {},
		types.TokenTypeOpenParen:   {},
		types.TokenTypeLineComment: {},
	}
	if _, ok := preserveWhitespaceFor[f.previousToken().Type]; !ok {
		trimSpacesEnd(query)
	}

	value := f.casedStructuralWord(tok.Value)
	query.WriteString(value)
	f.updateLineLength(value)

	f.inlineBlock.BeginIfPossible(f.tokens, f.index)

	skipIndent := f.cfg.AlignValues && f.inInsertValuesClause
	if f.inlineBlock.IsActive() || skipIndent {
		return
	}
	f.indentation.IncreaseBlockLevel()
	if f.cfg.ParenOptions.OpenParenNewline {
		f.addNewline(query)
	}
}

func (f *formatter) formatClosingParentheses(tok types.Token, query *strings.Builder) {
	tok.Value = f.casedStructuralWord(tok.Value)

	switch {
	case f.inlineBlock.IsActive():
		f.inlineBlock.End()
		f.formatWithSpaceAfter(tok, query)
	case f.cfg.AlignValues && f.inInsertValuesClause:
		f.formatWithSpaceAfter(tok, query)
	default:
		f.indentation.DecreaseBlockLevel()
		if f.cfg.ParenOptions.CloseParenNewline {
			f.addNewline(query)
		}
		f.formatWithSpaces(tok, query)
	}
}

func (f *formatter) casedStructuralWord(value string) string {
	switch f.cfg.KeywordCase {
	case KeywordCaseUppercase:
		return strings.ToUpper(value)
	case KeywordCaseLowercase:
		return strings.ToLower(value)
	default:
		return value
	}
}

func (f *formatter) formatPlaceholder(tok types.Token, query *strings.Builder) {
	value, ok, used := f.params.Get(tok.Key, tok.Value)
	if used && !ok {
		if f.err == nil {
			f.err = &MissingParameterError{Key: tok.Key}
		}
		value = tok.Value
	}
	query.WriteString(value)
	query.WriteString(" ")
	f.updateLineLength(value + " ")
}

// formatComma renders a list separator according to Config.CommaPosition
// and decides whether the list it belongs to should break onto a new
// line per Config.Newline.
func (f *formatter) formatComma(tok types.Token, query *strings.Builder) {
	trimSpacesEnd(query)
	f.applyCommaAlignment(query)

	if f.cfg.AlignValues && f.inInsertValuesClause {
		query.WriteString(tok.Value)
		query.WriteString(" ")
		return
	}

	switch f.cfg.CommaPosition {
	case CommaPositionBefore:
		f.renderCommaBefore(tok, query)
	default:
		f.renderCommaAfter(tok, query)
	}
}

func (f *formatter) applyCommaAlignment(query *strings.Builder) {
	if f.cfg.AlignColumnNames && f.inSelectClause && f.currentSelectIndex < len(f.selectColumnLengths) {
		if pad := f.selectColumnLengths[f.currentSelectIndex] - f.currentColumnLength; pad > 0 {
			query.WriteString(strings.Repeat(" ", pad))
		}
	}
	if f.cfg.AlignAssignments && f.inUpdateSetClause && f.currentUpdateIndex-1 < len(f.updateAssignmentLengths) && f.currentUpdateIndex-1 >= 0 {
		if pad := f.updateAssignmentLengths[f.currentUpdateIndex-1] - f.currentAssignmentLength; pad > 0 {
			query.WriteString(strings.Repeat(" ", pad))
		}
	}
}

func (f *formatter) renderCommaAfter(tok types.Token, query *strings.Builder) {
	query.WriteString(tok.Value)
	query.WriteString(" ")
	f.updateLineLength(tok.Value + " ")

	if f.shouldStayInline() {
		return
	}
	if !f.shouldBreakList() {
		return
	}
	if limitKeywordRegex.MatchString(f.previousReservedWord.Value) {
		return
	}
	if f.nextSignificantIsComment() {
		return
	}
	f.addNewline(query)
	f.resetColumnTrackers()
}

func (f *formatter) renderCommaBefore(tok types.Token, query *strings.Builder) {
	if f.shouldStayInline() || !f.shouldBreakList() || limitKeywordRegex.MatchString(f.previousReservedWord.Value) {
		query.WriteString(tok.Value)
		query.WriteString(" ")
		f.updateLineLength(tok.Value + " ")
		return
	}
	if f.nextSignificantIsComment() {
		query.WriteString(tok.Value)
		query.WriteString(" ")
		f.updateLineLength(tok.Value + " ")
		return
	}
	f.addNewline(query)
	query.WriteString(tok.Value)
	query.WriteString(" ")
	f.updateLineLength(tok.Value + " ")
	f.resetColumnTrackers()
}

func (f *formatter) shouldStayInline() bool {
	if f.inlineBlock.IsActive() {
		return true
	}
	if f.cfg.AlignAssignments && f.inUpdateSetClause {
		return true
	}
	if f.cfg.AlignColumnNames && f.inSelectClause {
		return true
	}
	return false
}

func (f *formatter) resetColumnTrackers() {
	if f.inSelectClause {
		f.currentColumnLength = 0
	}
	if f.inUpdateSetClause {
		f.currentAssignmentLength = 0
	}
}

func (f *formatter) nextSignificantIsComment() bool {
	offset := 1
	nextTok := f.nextToken(offset)
	for nextTok.Type == types.TokenTypeWhitespace && f.index+offset < len(f.tokens) {
		offset++
		nextTok = f.nextToken(offset)
	}
	return nextTok.Type == types.TokenTypeLineComment || nextTok.Type == types.TokenTypeBlockComment
}

// shouldBreakList decides, per Config.Newline, whether the list
// currently being rendered should place its next item on a new line.
func (f *formatter) shouldBreakList() bool {
	switch f.cfg.Newline.Mode {
	case NewlineNever:
		return false
	case NewlineLineWidth:
		return f.cfg.LineWidth > 0 && f.currentLineLength > f.cfg.LineWidth
	case NewlineCount:
		return f.countCurrentListItems() > f.cfg.Newline.Count
	default:
		return true
	}
}

// countCurrentListItems counts comma-separated items in the list
// surrounding the comma at f.index: from the nearest enclosing top-level
// keyword or open paren up to the matching close paren or next top-level
// keyword, at the same nesting depth.
func (f *formatter) countCurrentListItems() int {
	count := 1
	depth := 0
	for i := f.listStartIndex(); i < f.listEndIndex(); i++ {
		t := f.tokens[i]
		switch t.Type {
		case types.TokenTypeOpenParen:
			depth++
		case types.TokenTypeCloseParen:
			depth--
		default:
			if depth == 0 && t.Value == "," {
				count++
			}
		}
	}
	return count
}

func (f *formatter) listStartIndex() int {
	depth := 0
	for i := f.index - 1; i >= 0; i-- {
		t := f.tokens[i]
		switch t.Type {
		case types.TokenTypeCloseParen:
			depth++
		case types.TokenTypeOpenParen:
			if depth == 0 {
				return i + 1
			}
			depth--
		case types.TokenTypeReservedTopLevel, types.TokenTypeReservedTopLevelNoIndent:
			if depth == 0 {
				return i + 1
			}
		}
	}
	return 0
}

func (f *formatter) listEndIndex() int {
	depth := 0
	for i := f.index + 1; i < len(f.tokens); i++ {
		t := f.tokens[i]
		switch t.Type {
		case types.TokenTypeOpenParen:
			depth++
		case types.TokenTypeCloseParen:
			if depth == 0 {
				return i
			}
			depth--
		case types.TokenTypeReservedTopLevel, types.TokenTypeReservedTopLevelNoIndent:
			if depth == 0 {
				return i
			}
		}
	}
	return len(f.tokens)
}

func (f *formatter) formatWithSpaceAfter(tok types.Token, query *strings.Builder) {
	trimSpacesEnd(query)
	query.WriteString(tok.Value)
	query.WriteString(" ")
	f.updateLineLength(tok.Value + " ")
}

func (f *formatter) formatWithoutSpaceAfter(tok types.Token, query *strings.Builder) {
	trimSpacesEnd(query)
	query.WriteString(tok.Value)
	f.updateLineLength(tok.Value)
}

func (f *formatter) formatWithSpaces(tok types.Token, query *strings.Builder) {
	value := tok.Value
	if tok.Type == types.TokenTypeReserved {
		value = f.formatReservedWord(tok.Value)
	}

	next := f.nextToken()
	if tok.Type == types.TokenTypeWord && !next.Empty() && next.Value == "(" {
		value = utils.AddANSIFormats(f.cfg.ColorConfig.FunctionCallFormatOptions, value)
	}

	if f.cfg.LineWidth > 0 && !f.inlineBlock.IsActive() &&
		!f.inSelectClause && !f.inUpdateSetClause && !f.inInsertValuesClause &&
		f.exceedsMaxLineLength(value+" ") {
		f.addNewline(query)
	}

	query.WriteString(value)
	query.WriteString(" ")
	f.updateLineLength(value + " ")

	if f.inSelectClause {
		f.currentColumnLength += len(value) + 1
	}
	if f.inUpdateSetClause && tok.Value != "=" {
		if f.nextToken().Value != "=" {
			f.currentAssignmentLength += len(value) + 1
		}
	}
}

func (f *formatter) formatReservedWord(value string) string {
	switch f.cfg.KeywordCase {
	case KeywordCaseUppercase:
		value = strings.ToUpper(value)
	case KeywordCaseLowercase:
		value = strings.ToLower(value)
	default:
		// preserve original case
	}
	return utils.AddANSIFormats(f.cfg.ColorConfig.ReservedWordFormatOptions, value)
}

func (f *formatter) formatReservedToken(tok types.Token, query *strings.Builder) {
	if f.cfg.TabulateAlias && f.inSelectClause && strings.EqualFold(tok.Value, "AS") &&
		f.currentSelectIndex < len(f.aliasColumnLengths) {
		if pad := f.aliasColumnLengths[f.currentSelectIndex] - f.currentColumnLength; pad > 0 {
			trimSpacesEnd(query)
			query.WriteString(strings.Repeat(" ", pad))
			f.currentColumnLength += pad
		}
	}
	f.formatWithSpaces(tok, query)
	f.previousReservedWord = tok
}

func (f *formatter) formatQuerySeparator(tok types.Token, query *strings.Builder) {
	if f.cfg.SemicolonNewline {
		trimSpacesEnd(query)
		if !strings.HasSuffix(query.String(), "\n") {
			query.WriteString("\n")
		}
	} else {
		trimSpacesEnd(query)
	}
	f.indentation.ResetIndentation()
	query.WriteString(tok.Value)
	f.updateLineLength(tok.Value)
	query.WriteString(strings.Repeat("\n", f.cfg.LinesBetweenQueries))
	f.currentLineLength = 0
}

func (f *formatter) formatWordOrPlaceholder(tok types.Token, query *strings.Builder) {
	switch {
	case f.nextToken().Type == types.TokenTypePlaceholder:
		query.WriteString(tok.Value)
	case tok.Type == types.TokenTypePlaceholder:
		f.formatPlaceholder(tok, query)
	case tok.Value == "]":
		f.formatWithSpaceAfter(tok, query)
	default:
		f.formatWithSpaces(tok, query)
	}
}

func (f *formatter) formatDefaultToken(tok types.Token, query *strings.Builder) {
	switch tok.Value {
	case ",":
		f.formatComma(tok, query)
	case ":":
		f.formatWithSpaceAfter(tok, query)
	case ".":
		f.formatWithoutSpaceAfter(tok, query)
	case ";":
		f.formatQuerySeparator(tok, query)
	default:
		if f.cfg.DenseOperators {
			f.formatDenseOperator(tok, query)
			return
		}
		f.formatWithSpaces(tok, query)
	}
}

func (f *formatter) formatDenseOperator(tok types.Token, query *strings.Builder) {
	trimSpacesEnd(query)
	query.WriteString(tok.Value)
	f.updateLineLength(tok.Value)
}

func (f *formatter) formatLineComment(tok types.Token, query *strings.Builder) {
	f.formatComment(tok.Value, query, false)
}

func (f *formatter) formatBlockComment(tok types.Token, query *strings.Builder) {
	if strings.Contains(tok.Value, "\n") {
		value := f.indentComment(tok.Value)
		value = utils.AddANSIFormats(f.cfg.ColorConfig.CommentFormatOptions, value)
		f.addNewline(query)
		query.WriteString(value)
		f.updateLineLength(tok.Value)
		f.addNewline(query)
		return
	}
	f.formatComment(tok.Value, query, true)
}

func (f *formatter) formatComment(raw string, query *strings.Builder, isBlock bool) {
	atStartOfLine := f.currentLineLength == len(f.indentation.GetIndent())
	if atStartOfLine {
		value := utils.AddANSIFormats(f.cfg.ColorConfig.CommentFormatOptions, raw)
		query.WriteString(value)
		f.updateLineLength(raw)
		f.addNewline(query)
		return
	}

	if f.shouldCommentBeInline(raw) {
		trimSpacesEnd(query)
		query.WriteString(strings.Repeat(" ", commentSpacing))
		content := query.String()
		f.currentLineLength = len(strings.TrimRight(content[strings.LastIndex(content, "\n")+1:], " \t")) + commentSpacing
	} else {
		f.addNewline(query)
	}

	value := utils.AddANSIFormats(f.cfg.ColorConfig.CommentFormatOptions, raw)
	query.WriteString(value)
	f.updateLineLength(raw)
	f.addNewline(query)
}

func (f *formatter) indentComment(comment string) string {
	return newlineFollowedByWsRegex.ReplaceAllString(comment, "\n"+f.indentation.GetIndent()+" ")
}

func (f *formatter) shouldCommentBeInline(comment string) bool {
	return f.commentFitsOnLine(comment, commentSpacing)
}

func (f *formatter) commentFitsOnLine(comment string, spacing int) bool {
	if f.cfg.LineWidth <= 0 {
		return true
	}
	return f.currentLineLength+spacing+utils.VisibleLength(comment) <= f.cfg.LineWidth
}

func (f *formatter) formatString(tok types.Token, query *strings.Builder) {
	value := utils.AddANSIFormats(f.cfg.ColorConfig.StringFormatOptions, tok.Value)
	query.WriteString(value)
	query.WriteString(" ")
	f.updateLineLength(tok.Value + " ")
}

func (f *formatter) formatNumber(tok types.Token, query *strings.Builder) {
	value := utils.AddANSIFormats(f.cfg.ColorConfig.NumberFormatOptions, tok.Value)
	query.WriteString(value)
	query.WriteString(" ")
	f.updateLineLength(tok.Value + " ")
}

func (f *formatter) formatBoolean(tok types.Token, query *strings.Builder) {
	value := utils.AddANSIFormats(f.cfg.ColorConfig.BooleanFormatOptions, tok.Value)
	query.WriteString(value)
	query.WriteString(" ")
	f.updateLineLength(tok.Value + " ")
}

func (f *formatter) addNewline(query *strings.Builder) {
	trimSpacesEnd(query)
	if !strings.HasSuffix(query.String(), "\n") {
		query.WriteString("\n")
	}
	indent := f.indentation.GetIndent()
	query.WriteString(indent)
	f.currentLineLength = len(indent)
}

func (f *formatter) updateLineLength(s string) {
	f.currentLineLength += utils.VisibleLength(s)
}

func (f *formatter) exceedsMaxLineLength(s string) bool {
	if f.cfg.LineWidth <= 0 {
		return false
	}
	return f.currentLineLength+utils.VisibleLength(s) > f.cfg.LineWidth
}

func (f *formatter) previousToken(offset ...int) types.Token {
	o := 1
	if len(offset) > 0 {
		o = offset[0]
	}
	if f.index-o < 0 {
		return types.Token{}
	}
	return f.tokens[f.index-o]
}

func (f *formatter) nextToken(offset ...int) types.Token {
	o := 1
	if len(offset) > 0 {
		o = offset[0]
	}
	if f.index+o >= len(f.tokens) {
		return types.Token{}
	}
	return f.tokens[f.index+o]
}
