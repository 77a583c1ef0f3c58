package lang

import (
	"errors"
	"testing"
)

func num(v int64) Token { return Token{Type: TOKEN_NUMBER, Value: v} }
func plus() Token       { return Token{Type: TOKEN_PLUS, Lit: "+"} }
func minus() Token      { return Token{Type: TOKEN_MINUS, Lit: "-"} }

func TestParseFold(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   int64
	}{
		{"single number", []Token{num(42)}, 42},
		{"addition", []Token{num(10), plus(), num(3), plus(), num(5)}, 18},
		{"left to right", []Token{num(10), plus(), num(5), minus(), num(3), minus(), num(1)}, 11},
		{"subtraction below zero", []Token{num(3), minus(), num(10)}, -7},
	}

	for _, tt := range tests {
		got, err := Parse(tt.tokens)
		if err != nil {
			t.Errorf("%s: Parse error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Parse = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Parse(nil) error = %v, want ErrUnexpectedEnd", err)
	}
}

func TestParseDanglingOperator(t *testing.T) {
	_, err := Parse([]Token{num(10), plus()})
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Parse([10 +]) error = %v, want ErrUnexpectedEnd", err)
	}
}

func TestParseLeadingOperator(t *testing.T) {
	_, err := Parse([]Token{plus(), num(3)})
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse([+ 3]) error = %v, want *InvalidTokenError", err)
	}
	if invalid.Token.Type != TOKEN_PLUS {
		t.Errorf("invalid token = %v, want the leading plus", invalid.Token)
	}
}

func TestParseMissingOperator(t *testing.T) {
	_, err := Parse([]Token{num(10), num(3)})
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse([10 3]) error = %v, want *InvalidTokenError", err)
	}
	if invalid.Token.Type != TOKEN_NUMBER || invalid.Token.Value != 3 {
		t.Errorf("invalid token = %v, want the second number", invalid.Token)
	}
}

func TestParseOperatorAfterOperator(t *testing.T) {
	_, err := Parse([]Token{num(1), plus(), minus(), num(2)})
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse([1 + - 2]) error = %v, want *InvalidTokenError", err)
	}
	if invalid.Token.Type != TOKEN_MINUS {
		t.Errorf("invalid token = %v, want the minus", invalid.Token)
	}
}
