package main

import (
	"errors"
	"image/color"
	"strings"
	"unicode/utf8"

	"addcalc/app/lang"
)

// TokenKind represents the category of a syntax token.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenNumber
	TokenOperator
	TokenComment
	TokenError
)

// Token is a span of text with a syntax category.
type Token struct {
	Text string
	Kind TokenKind
}

// tokenColors maps token kinds to colors. Dark-theme oriented.
var tokenColors = map[TokenKind]color.NRGBA{
	TokenPlain:    {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	TokenNumber:   {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	TokenOperator: {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	TokenComment:  {R: 0x6A, G: 0x99, B: 0x55, A: 0xFF}, // dark green
	TokenError:    {R: 0xF4, G: 0x47, B: 0x47, A: 0xFF}, // red
}

// TokenColor returns the color for a token kind.
func TokenColor(kind TokenKind) color.NRGBA {
	if c, ok := tokenColors[kind]; ok {
		return c
	}
	return tokenColors[TokenPlain]
}

// Tokenize splits a line into highlighted spans using the lang lexer.
// Comment lines are a single comment span. On a lex error the offending
// character and everything after it renders as an error span.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "//") {
		return []Token{{Text: line, Kind: TokenComment}}
	}

	langTokens, err := lang.Lex(line)

	var result []Token
	lastEnd := 0

	for _, lt := range langTokens {
		start := byteOffset(line, lt.Pos)

		// Add any whitespace gap before this token
		if start > lastEnd {
			result = append(result, Token{Text: line[lastEnd:start], Kind: TokenPlain})
		}

		kind := TokenOperator
		if lt.Type == lang.TOKEN_NUMBER {
			kind = TokenNumber
		}
		result = append(result, Token{Text: lt.Lit, Kind: kind})

		lastEnd = start + len(lt.Lit)
	}

	var lexErr *lang.LexError
	if errors.As(err, &lexErr) {
		// The lexer returns no tokens on failure, so everything before
		// the offending character is a plain span.
		start := byteOffset(line, lexErr.Pos)
		if start > lastEnd {
			result = append(result, Token{Text: line[lastEnd:start], Kind: TokenPlain})
		}
		return append(result, Token{Text: line[start:], Kind: TokenError})
	}

	// Any trailing whitespace
	if lastEnd < len(line) {
		result = append(result, Token{Text: line[lastEnd:], Kind: TokenPlain})
	}

	return result
}

// byteOffset converts a character index within line to a byte offset.
// Token and error positions count runes, not bytes.
func byteOffset(line string, charIdx int) int {
	off := 0
	for i := 0; i < charIdx && off < len(line); i++ {
		_, size := utf8.DecodeRuneInString(line[off:])
		off += size
	}
	return off
}
