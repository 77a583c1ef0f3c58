package lang

import "testing"

func TestIncrementalBasicCaching(t *testing.T) {
	es := &EvalState{}

	lines := []string{"10 + 5", "3 - 1"}
	results := es.EvalAll(lines)

	if results[0].Text != "15" {
		t.Errorf("line 0: got %q, want 15", results[0].Text)
	}
	if results[1].Text != "2" {
		t.Errorf("line 1: got %q, want 2", results[1].Text)
	}

	// Re-evaluate with same lines — should use cache
	results2 := es.EvalAll(lines)
	if results2[0].Text != "15" || results2[1].Text != "2" {
		t.Error("cached results should match")
	}
}

func TestIncrementalLineEdit(t *testing.T) {
	es := &EvalState{}

	es.EvalAll([]string{"1 + 1", "2 + 2"})
	results := es.EvalAll([]string{"1 + 1", "2 + 3"})

	if results[0].Text != "2" {
		t.Errorf("line 0: got %q, want 2", results[0].Text)
	}
	if results[1].Text != "5" {
		t.Errorf("line 1: got %q, want 5", results[1].Text)
	}
}

func TestIncrementalErrors(t *testing.T) {
	es := &EvalState{}

	results := es.EvalAll([]string{"10 +", "5 - 2"})
	if !results[0].IsErr {
		t.Error("line 0 should be an error")
	}
	if results[0].Text == "" {
		t.Error("line 0 error should carry a message")
	}
	if results[1].IsErr || results[1].Text != "3" {
		t.Errorf("line 1: got %q (err=%v), want 3", results[1].Text, results[1].IsErr)
	}

	// Fixing the line clears the error
	results2 := es.EvalAll([]string{"10 + 1", "5 - 2"})
	if results2[0].IsErr || results2[0].Text != "11" {
		t.Errorf("fixed line 0: got %q (err=%v), want 11", results2[0].Text, results2[0].IsErr)
	}
}

func TestIncrementalEmptyAndComments(t *testing.T) {
	es := &EvalState{}

	lines := []string{"", "; comment", "// comment", "5 + 3"}
	results := es.EvalAll(lines)

	if results[0].Text != "" {
		t.Errorf("empty line should have empty result, got %q", results[0].Text)
	}
	if results[1].Text != "" {
		t.Errorf("; comment should have empty result, got %q", results[1].Text)
	}
	if results[2].Text != "" {
		t.Errorf("// comment should have empty result, got %q", results[2].Text)
	}
	if results[3].Text != "8" {
		t.Errorf("5 + 3: got %q, want 8", results[3].Text)
	}
}

func TestIncrementalLineCountChange(t *testing.T) {
	es := &EvalState{}

	results := es.EvalAll([]string{"1 + 1"})
	if results[0].Text != "2" {
		t.Errorf("got %q, want 2", results[0].Text)
	}

	// Add a line — triggers full reset
	results2 := es.EvalAll([]string{"1 + 1", "3 + 4"})
	if results2[0].Text != "2" {
		t.Errorf("got %q, want 2", results2[0].Text)
	}
	if results2[1].Text != "7" {
		t.Errorf("got %q, want 7", results2[1].Text)
	}
}
