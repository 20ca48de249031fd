package filter

import "testing"

func TestSubstringMatch(t *testing.T) {
	f, err := New("ada")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !f.IsActive() {
		t.Fatal("filter should be active")
	}
	row := map[string]any{"name": "Ada Lovelace"}
	if !f.Match(row, []string{"Ada Lovelace", "ada@example.com"}) {
		t.Error("expected substring match")
	}
	if f.Match(row, []string{"Grace Hopper"}) {
		t.Error("unexpected match")
	}
}

func TestEmptyQueryMatchesEverything(t *testing.T) {
	for _, q := range []string{"", "?", "?  "} {
		f, err := New(q)
		if err != nil {
			t.Fatalf("New(%q): %v", q, err)
		}
		if f.IsActive() {
			t.Errorf("query %q should be inactive", q)
		}
		if !f.Match(map[string]any{"k": "v"}, nil) {
			t.Errorf("query %q should match everything", q)
		}
	}
}

func TestExpressionMatch(t *testing.T) {
	f, err := New(`?_.age >= 30`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !f.Match(map[string]any{"age": 42}, nil) {
		t.Error("expected expression match for age 42")
	}
	if f.Match(map[string]any{"age": 12}, nil) {
		t.Error("unexpected match for age 12")
	}
	// Missing field is an eval error, which counts as no match.
	if f.Match(map[string]any{"name": "ada"}, nil) {
		t.Error("row without the field should not match")
	}
}

func TestExpressionStringFunctions(t *testing.T) {
	f, err := New(`?_.email.endsWith("@example.com")`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !f.Match(map[string]any{"email": "ada@example.com"}, nil) {
		t.Error("expected match")
	}
	if f.Match(map[string]any{"email": "ada@other.net"}, nil) {
		t.Error("unexpected match")
	}
}

func TestExpressionCompileError(t *testing.T) {
	if _, err := New(`?_.age >=`); err == nil {
		t.Error("expected compile error for malformed expression")
	}
}
