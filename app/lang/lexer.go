package lang

import (
	"fmt"
	"unicode/utf8"
)

// LexError reports a character outside the digit / '+' / '-' / space
// alphabet. Pos is the character index within the input, counted in
// runes rather than bytes.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// Lexer holds the scan state for a single line of input.
type Lexer struct {
	input string
	off   int // byte offset into input
	char  int // character index, counted in runes
}

// Lex tokenizes a single line of input into a slice of tokens.
// It stops at the first invalid character and returns a *LexError;
// no partial token slice is returned in that case.
func Lex(input string) ([]Token, error) {
	l := &Lexer{input: input}
	return l.lex()
}

// peek returns the character at the current position without consuming
// it. ok is false at end of input.
func (l *Lexer) peek() (r rune, ok bool) {
	if l.off >= len(l.input) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(l.input[l.off:])
	return r, true
}

// advance moves past exactly one character. Calling it at end of input
// is a bug in the dispatch logic rather than bad input, so it panics.
func (l *Lexer) advance() {
	if l.off >= len(l.input) {
		panic("lexer: advance past end of input")
	}
	_, size := utf8.DecodeRuneInString(l.input[l.off:])
	l.off += size
	l.char++
}

// scanNumber accumulates a run of ASCII digits into a base-10 value,
// stopping at the first non-digit or end of input. Overflow wraps.
func (l *Lexer) scanNumber() int64 {
	var v int64
	for {
		r, ok := l.peek()
		if !ok || !isDigit(r) {
			return v
		}
		v = v*10 + int64(r-'0')
		l.advance()
	}
}

func (l *Lexer) lex() ([]Token, error) {
	var tokens []Token
	for {
		ch, ok := l.peek()
		if !ok {
			return tokens, nil
		}

		switch {
		case isDigit(ch):
			start, pos := l.off, l.char
			v := l.scanNumber()
			tokens = append(tokens, Token{Type: TOKEN_NUMBER, Lit: l.input[start:l.off], Value: v, Pos: pos})
		case ch == '+':
			tokens = append(tokens, Token{Type: TOKEN_PLUS, Lit: "+", Pos: l.char})
			l.advance()
		case ch == '-':
			tokens = append(tokens, Token{Type: TOKEN_MINUS, Lit: "-", Pos: l.char})
			l.advance()
		case ch == ' ':
			l.advance()
		default:
			return nil, &LexError{Char: ch, Pos: l.char}
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
