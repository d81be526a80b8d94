package exprlang

import (
	"strings"
)

// tokenKind classifies a single lexical token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokDouble
	tokString
	tokAt
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind   tokenKind
	text   string // raw text for ident; unescaped contents for string
	offset int
}

// lexer scans an expression string into tokens on demand. It is a simple
// hand-rolled scanner (not the Rob-Pike state-function style used
// elsewhere in the retrieved example set) since the token set here is tiny
// and context-free at every position.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer { return &lexer{src: src} }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// next scans and returns the next token, advancing the lexer's position.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, offset: start}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '@':
		l.pos++

		return token{kind: tokAt, offset: start}, nil
	case c == '(':
		l.pos++

		return token{kind: tokLParen, offset: start}, nil
	case c == ')':
		l.pos++

		return token{kind: tokRParen, offset: start}, nil
	case c == ',':
		l.pos++

		return token{kind: tokComma, offset: start}, nil
	case c == '"':
		return l.scanString(start)
	case isDigit(c):
		return l.scanNumber(start)
	case isIdentStart(c):
		return l.scanIdent(start)
	default:
		return token{}, newParseError(ErrUnexpectedToken, start, string(c))
	}
}

func (l *lexer) scanIdent(start int) (token, error) {
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}

	return token{kind: tokIdent, text: l.src[start:l.pos], offset: start}, nil
}

func (l *lexer) scanNumber(start int) (token, error) {
	isDouble := false
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		// A decimal point must be followed by at least one digit to count
		// as part of the number (otherwise it's a bad number).
		if l.pos+1 >= len(l.src) || !isDigit(l.src[l.pos+1]) {
			return token{}, newParseError(ErrBadNumber, start, l.src[start:l.pos+1])
		}
		isDouble = true
		l.pos++ // consume '.'
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	kind := tokInt
	if isDouble {
		kind = tokDouble
	}

	return token{kind: kind, text: l.src[start:l.pos], offset: start}, nil
}

func (l *lexer) scanString(start int) (token, error) {
	l.pos++ // consume opening quote
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token{}, newParseError(ErrUnterminatedString, start, "")
		}
		c := l.src[l.pos]
		if c == '"' {
			l.pos++

			return token{kind: tokString, text: b.String(), offset: start}, nil
		}
		if c == '\\' && l.pos+1 < len(l.src) {
			next := l.src[l.pos+1]
			if next == '"' || next == '\\' {
				b.WriteByte(next)
				l.pos += 2

				continue
			}
		}
		b.WriteByte(c)
		l.pos++
	}
}
