package lang

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is returned when a number was required but the token
// sequence was exhausted.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// InvalidTokenError reports a token of the wrong kind for its
// grammatical position: an operator where a number was required, or a
// number directly following another number.
type InvalidTokenError struct {
	Token Token
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %s", e.Token)
}

// Parser holds the state for parsing a token sequence.
type Parser struct {
	tokens []Token
	pos    int
}

// next returns the token at the current index and advances past it.
// ok is false when the sequence is exhausted.
func (p *Parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}

// parseNumber consumes one token and requires it to be a number.
func (p *Parser) parseNumber() (int64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, ErrUnexpectedEnd
	}
	if tok.Type != TOKEN_NUMBER {
		return 0, &InvalidTokenError{Token: tok}
	}
	return tok.Value, nil
}

// Parse folds a token sequence into a single value by strict
// left-to-right addition and subtraction. The sequence must alternate
// numbers and operators, starting and ending with a number; there is no
// operator precedence and no expression tree, just a running
// accumulator.
func Parse(tokens []Token) (int64, error) {
	p := &Parser{tokens: tokens}

	acc, err := p.parseNumber()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.next()
		if !ok {
			return acc, nil
		}
		switch op.Type {
		case TOKEN_PLUS:
			n, err := p.parseNumber()
			if err != nil {
				return 0, err
			}
			acc += n
		case TOKEN_MINUS:
			n, err := p.parseNumber()
			if err != nil {
				return 0, err
			}
			acc -= n
		default:
			// Two numbers in a row with no operator between them.
			return 0, &InvalidTokenError{Token: op}
		}
	}
}
