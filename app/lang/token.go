package lang

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_NUMBER TokenType = iota
	TOKEN_PLUS
	TOKEN_MINUS
)

// Token represents a single lexer token. Value is set only for
// TOKEN_NUMBER. Pos is the character index of the token's first
// character in the input line — a rune count, not a byte offset.
type Token struct {
	Type  TokenType
	Lit   string
	Value int64
	Pos   int
}

func (t Token) String() string {
	if t.Type == TOKEN_NUMBER {
		return fmt.Sprintf("Token(NUMBER, %d, %d)", t.Value, t.Pos)
	}
	return fmt.Sprintf("Token(%q, %d)", t.Lit, t.Pos)
}
