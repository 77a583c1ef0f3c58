package lang

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEvalLine(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"2 + 3", 5},
		{"10 - 3", 7},
		{"10 + 3 + 5", 18},
		{"10 + 5 - 3 - 1", 11},
		{"42", 42},
		{"  7  ", 7},
		{"0", 0},
		{"1+2-3", 0},
		{"1 + 2 + 3 + 4", 10},
	}

	for _, tt := range tests {
		got, err := EvalLine(tt.input)
		if err != nil {
			t.Errorf("EvalLine(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EvalLine(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestEvalLineErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"+ 3",
		"- 3",
		"10 3",
		"10 +",
		"10 + + 3",
		"10! + 3",
		"2 * 3",
		"a + 1",
	}

	for _, input := range tests {
		if _, err := EvalLine(input); err == nil {
			t.Errorf("EvalLine(%q) succeeded, want error", input)
		}
	}
}

func TestEvalLineErrorKinds(t *testing.T) {
	_, err := EvalLine("10 +")
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("EvalLine(\"10 +\") error = %v, want ErrUnexpectedEnd", err)
	}

	_, err = EvalLine("10 3")
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Errorf("EvalLine(\"10 3\") error = %v, want *InvalidTokenError", err)
	}

	_, err = EvalLine("10 ? 3")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Errorf("EvalLine(\"10 ? 3\") error = %v, want *LexError", err)
	}
}

func TestEvalLineIdempotent(t *testing.T) {
	inputs := []string{"10 + 5 - 3 - 1", "1 +", "10! + 3"}
	for _, input := range inputs {
		v1, err1 := EvalLine(input)
		v2, err2 := EvalLine(input)
		if v1 != v2 || fmt.Sprint(err1) != fmt.Sprint(err2) {
			t.Errorf("EvalLine(%q) not idempotent: (%d, %v) vs (%d, %v)",
				input, v1, err1, v2, err2)
		}
	}
}

// TestRoundTrip renders operand/operator sequences as text and checks
// that evaluation matches the left-to-right fold of the originals.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		values []int64
		ops    []byte // ops[i] joins values[i] and values[i+1]
	}{
		{[]int64{7}, nil},
		{[]int64{1, 2, 3}, []byte{'+', '+'}},
		{[]int64{100, 50, 25, 200}, []byte{'-', '-', '+'}},
		{[]int64{0, 0, 0}, []byte{'+', '-'}},
		{[]int64{999999999, 1}, []byte{'+'}},
	}

	for _, tt := range tests {
		var sb strings.Builder
		want := tt.values[0]
		fmt.Fprintf(&sb, "%d", tt.values[0])
		for i, op := range tt.ops {
			fmt.Fprintf(&sb, " %c %d", op, tt.values[i+1])
			if op == '+' {
				want += tt.values[i+1]
			} else {
				want -= tt.values[i+1]
			}
		}

		text := sb.String()
		got, err := EvalLine(text)
		if err != nil {
			t.Errorf("EvalLine(%q) error: %v", text, err)
			continue
		}
		if got != want {
			t.Errorf("EvalLine(%q) = %d, want %d", text, got, want)
		}
	}
}
