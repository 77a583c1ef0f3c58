package lang

import (
	"strconv"
	"strings"
)

// CachedLine holds the cached state for a single line.
type CachedLine struct {
	Text    string
	Result  int64
	Err     error
	IsEmpty bool // line was blank or comment
}

// EvalResult is the result of evaluating a single line.
type EvalResult struct {
	Text  string // formatted result
	IsErr bool
}

// EvalState holds the per-line evaluation cache.
type EvalState struct {
	Lines []CachedLine
}

// EvalAll evaluates lines, reusing cached results for lines whose text
// has not changed. Lines are independent, so a changed line never
// dirties its neighbors.
func (es *EvalState) EvalAll(lines []string) []EvalResult {
	results := make([]EvalResult, len(lines))

	// Full reset when line count changes
	if len(lines) != len(es.Lines) {
		es.Lines = make([]CachedLine, len(lines))
		for i := range es.Lines {
			es.Lines[i].Text = "\x00" // force dirty
		}
	}

	for i, line := range lines {
		cached := &es.Lines[i]
		if cached.Text == line {
			results[i] = cached.result()
			continue
		}

		cached.Text = line
		trimmed := strings.TrimSpace(line)
		cached.IsEmpty = trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "//")
		if cached.IsEmpty {
			cached.Result = 0
			cached.Err = nil
			results[i] = EvalResult{}
			continue
		}

		cached.Result, cached.Err = EvalLine(line)
		results[i] = cached.result()
	}

	return results
}

func (c *CachedLine) result() EvalResult {
	if c.IsEmpty {
		return EvalResult{}
	}
	if c.Err != nil {
		return EvalResult{Text: c.Err.Error(), IsErr: true}
	}
	return EvalResult{Text: strconv.FormatInt(c.Result, 10)}
}
