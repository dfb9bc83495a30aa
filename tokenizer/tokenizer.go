// Package tokenizer scans source text into a flat token list: identifiers,
// keywords, numbers, strings, and punctuation, with line/column positions.
// It is ordinary lexing code, independent of the pattern engine; its output
// is a convenient input sequence for pattern matching via Token.Content.
package tokenizer

import "fmt"

// TokenType classifies a scanned token.
type TokenType int

const (
	TokenIdent TokenType = iota
	TokenKeyword
	TokenNumber
	TokenString
	TokenPunct
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenSemicolon
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "ident"
	case TokenKeyword:
		return "keyword"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenPunct:
		return "punct"
	case TokenLParen:
		return "lparen"
	case TokenRParen:
		return "rparen"
	case TokenLBracket:
		return "lbracket"
	case TokenRBracket:
		return "rbracket"
	case TokenComma:
		return "comma"
	case TokenSemicolon:
		return "semicolon"
	default:
		return "unknown"
	}
}

// Token is a single lexical token with its source position (1-based line,
// column of the token's first character).
type Token struct {
	Type    TokenType
	Content string
	Line    int
	Column  int
}

var keywords = map[string]bool{
	"vec": true, "println": true, "match": true, "if": true, "else": true,
	"for": true, "while": true, "return": true, "true": true, "false": true,
	"null": true, "struct": true, "class": true, "enum": true,
	"template": true, "auto": true,
}

var punctTokens = map[byte]TokenType{
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	';': TokenSemicolon,
	'+': TokenPunct, '-': TokenPunct, '*': TokenPunct, '/': TokenPunct,
	'=': TokenPunct, '<': TokenPunct, '>': TokenPunct, '!': TokenPunct,
	'&': TokenPunct, '|': TokenPunct, '%': TokenPunct, '^': TokenPunct,
	'~': TokenPunct, '?': TokenPunct, ':': TokenPunct,
}

// Tokenizer scans one source string. Zero value is not usable; use New.
type Tokenizer struct {
	source string
	pos    int
	line   int
	column int
}

// New returns a tokenizer over src.
func New(src string) *Tokenizer {
	return &Tokenizer{source: src, line: 1, column: 1}
}

// Tokenize scans src in one call.
func Tokenize(src string) ([]Token, error) {
	return New(src).Tokenize()
}

// Tokenize processes the entire source and returns the token list.
// Comments (// and /* */) and whitespace are skipped. The first lexical
// error (unterminated string, unexpected character) stops scanning.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token

	for t.pos < len(t.source) {
		t.skipWhitespace()
		if t.pos >= len(t.source) {
			break
		}

		c := t.peek()

		if c == '/' && t.pos+1 < len(t.source) {
			if t.source[t.pos+1] == '/' {
				t.skipLineComment()
				continue
			}
			if t.source[t.pos+1] == '*' {
				t.skipBlockComment()
				continue
			}
		}

		switch {
		case isAlpha(c) || c == '_':
			tokens = append(tokens, t.scanIdentifier())
		case isDigit(c):
			tokens = append(tokens, t.scanNumber())
		case c == '"':
			tok, err := t.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			kind, ok := punctTokens[c]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at line %d, column %d", c, t.line, t.column)
			}
			tokens = append(tokens, Token{Type: kind, Content: string(c), Line: t.line, Column: t.column})
			t.advance()
		}
	}

	return tokens, nil
}

func (t *Tokenizer) peek() byte {
	if t.pos < len(t.source) {
		return t.source[t.pos]
	}
	return 0
}

func (t *Tokenizer) advance() byte {
	c := t.peek()
	if t.pos < len(t.source) {
		t.pos++
	}
	if c == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	return c
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.source) && isSpace(t.source[t.pos]) {
		t.advance()
	}
}

func (t *Tokenizer) skipLineComment() {
	for t.pos < len(t.source) && t.peek() != '\n' {
		t.advance()
	}
}

func (t *Tokenizer) skipBlockComment() {
	t.advance() // '/'
	t.advance() // '*'
	for t.pos < len(t.source) {
		if t.peek() == '*' && t.pos+1 < len(t.source) && t.source[t.pos+1] == '/' {
			t.advance()
			t.advance()
			return
		}
		t.advance()
	}
}

func (t *Tokenizer) scanIdentifier() Token {
	start, line, column := t.pos, t.line, t.column
	for t.pos < len(t.source) && (isAlphanumeric(t.source[t.pos]) || t.source[t.pos] == '_') {
		t.advance()
	}

	text := t.source[start:t.pos]
	kind := TokenIdent
	if keywords[text] {
		kind = TokenKeyword
	}
	return Token{Type: kind, Content: text, Line: line, Column: column}
}

// scanNumber accepts an integer part, an optional decimal part, and an
// optional signed exponent.
func (t *Tokenizer) scanNumber() Token {
	start, line, column := t.pos, t.line, t.column

	for t.pos < len(t.source) && isDigit(t.source[t.pos]) {
		t.advance()
	}

	if t.peek() == '.' && t.pos+1 < len(t.source) && isDigit(t.source[t.pos+1]) {
		t.advance()
		for t.pos < len(t.source) && isDigit(t.source[t.pos]) {
			t.advance()
		}
	}

	if (t.peek() == 'e' || t.peek() == 'E') && t.pos+1 < len(t.source) {
		next := t.source[t.pos+1]
		exponentStarts := isDigit(next) ||
			((next == '+' || next == '-') && t.pos+2 < len(t.source) && isDigit(t.source[t.pos+2]))
		if exponentStarts {
			t.advance()
			if t.peek() == '+' || t.peek() == '-' {
				t.advance()
			}
			for t.pos < len(t.source) && isDigit(t.source[t.pos]) {
				t.advance()
			}
		}
	}

	return Token{Type: TokenNumber, Content: t.source[start:t.pos], Line: line, Column: column}
}

// scanString scans a double-quoted string, quotes included in Content.
// Backslash escapes protect the following character.
func (t *Tokenizer) scanString() (Token, error) {
	start, line, column := t.pos, t.line, t.column
	t.advance() // opening quote

	for t.pos < len(t.source) && t.peek() != '"' {
		if t.peek() == '\\' && t.pos+1 < len(t.source) {
			t.advance()
		}
		t.advance()
	}

	if t.pos >= len(t.source) {
		return Token{}, fmt.Errorf("unterminated string literal at line %d, column %d", line, column)
	}
	t.advance() // closing quote

	return Token{Type: TokenString, Content: t.source[start:t.pos], Line: line, Column: column}, nil
}

// Contents projects a token list to its content strings, in order.
func Contents(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Content
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlphanumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
