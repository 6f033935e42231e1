package regexlib

import (
	"strings"
	"unicode/utf8"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tLParen           // (
	tRParen           // )
	tStar             // *
	tUnion            // |
	tConcat           // .
	tBrace            // { or } — reserved, rejected by the parser
)

type token struct {
	typ tokenType
	ch  rune // for tChar, tBrace
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: normalize(s)} }

// normalize makes the implicit concatenation between adjacent parenthesized
// groups explicit, so ")(" reads as ").(". Runs before any operator
// processing.
func normalize(s string) string { return strings.ReplaceAll(s, ")(", ").(") }

func (l *lexer) next() token {
	if l.pos >= len(l.input) {
		return token{typ: tEOF}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '(':
		return token{typ: tLParen}
	case ')':
		return token{typ: tRParen}
	case '*':
		return token{typ: tStar}
	case '|':
		return token{typ: tUnion}
	case '.':
		return token{typ: tConcat}
	case '{', '}':
		return token{typ: tBrace, ch: r}
	default:
		return token{typ: tChar, ch: r}
	}
}
