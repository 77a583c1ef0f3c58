package lang

// EvalLine lexes and parses a single line, returning its value.
func EvalLine(input string) (int64, error) {
	tokens, err := Lex(input)
	if err != nil {
		return 0, err
	}
	return Parse(tokens)
}
