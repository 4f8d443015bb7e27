package parser

import (
	"reflect"
	"testing"

	"github.com/vance-dev/byterex/ast"
	"github.com/vance-dev/byterex/errs"
)

func mustParse(t *testing.T, pattern string) ast.Node {
	t.Helper()
	n, err := Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", pattern, err)
	}
	return n
}

// TestParsePrintRoundTrip checks ast.Print's documented guarantee: printing
// a parsed pattern and re-parsing the result reproduces the same AST shape.
// It does not assert byte-for-byte equality with the original source, since
// Print always renders a canonical form (e.g. character classes print with
// merged ranges, and literal metacharacters are re-escaped) that need not
// match how the pattern was originally spelled.
func TestParsePrintRoundTrip(t *testing.T) {
	cases := []string{
		"a(b|c)*d",
		"^[0-9]+$",
		"[^abc]+",
		"a.*b",
		"a|b|c",
		"",
		"a?b+c*",
		`\.\*\+`,
	}
	for _, pattern := range cases {
		n := mustParse(t, pattern)
		printed := ast.Print(n)
		reprinted := mustParse(t, printed)
		if !reflect.DeepEqual(n, reprinted) {
			t.Errorf("Print(Parse(%q)) = %q, which reparses to a different AST shape: got %#v, want %#v", pattern, printed, reprinted, n)
		}
	}
}

func TestParseEmptyAlternatives(t *testing.T) {
	n := mustParse(t, "a|")
	alt, ok := n.(ast.Alt)
	if !ok {
		t.Fatalf("expected Alt node, got %T", n)
	}
	if _, ok := alt.Right.(ast.Empty); !ok {
		t.Fatalf("expected empty right alternative, got %T", alt.Right)
	}

	n = mustParse(t, "|a")
	alt, ok = n.(ast.Alt)
	if !ok {
		t.Fatalf("expected Alt node, got %T", n)
	}
	if _, ok := alt.Left.(ast.Empty); !ok {
		t.Fatalf("expected empty left alternative, got %T", alt.Left)
	}
}

func TestParseEmptyGroup(t *testing.T) {
	n := mustParse(t, "()")
	g, ok := n.(ast.Group)
	if !ok {
		t.Fatalf("expected Group node, got %T", n)
	}
	if _, ok := g.Child.(ast.Empty); !ok {
		t.Fatalf("expected empty group child, got %T", g.Child)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		pattern  string
		wantKind errs.Kind
		wantPos  int
	}{
		{"[a-z", errs.UnclosedClass, 0},
		{"(ab", errs.UnclosedGroup, 0},
		{"*abc", errs.NothingToRepeat, 0},
		{"[z-a]", errs.InvalidRange, 1},
		{"ab)", errs.UnexpectedChar, 2},
		{`a\`, errs.UnexpectedEnd, 1},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.pattern))
		if err == nil {
			t.Errorf("Parse(%q): expected error, got nil", c.pattern)
			continue
		}
		ce, ok := err.(*errs.CompileError)
		if !ok {
			t.Errorf("Parse(%q): error is %T, want *errs.CompileError", c.pattern, err)
			continue
		}
		if ce.Kind != c.wantKind {
			t.Errorf("Parse(%q): Kind = %v, want %v", c.pattern, ce.Kind, c.wantKind)
		}
		if ce.Position != c.wantPos {
			t.Errorf("Parse(%q): Position = %d, want %d", c.pattern, ce.Position, c.wantPos)
		}
	}
}

func TestParsePositionMonotonicity(t *testing.T) {
	patterns := []string{"[a-z", "(ab", "*abc", "[z-a]", "ab)", `a\`, "(((("}
	for _, p := range patterns {
		_, err := Parse([]byte(p))
		if err == nil {
			continue
		}
		ce := err.(*errs.CompileError)
		if ce.Position < 0 || ce.Position > len(p) {
			t.Errorf("Parse(%q): position %d out of [0,%d]", p, ce.Position, len(p))
		}
	}
}

func TestParseClassNegationVsLiteralCaret(t *testing.T) {
	n := mustParse(t, "[^a]")
	char := n.(ast.Char)
	if !char.Pred.Matches('b') {
		t.Fatal("[^a] should match 'b'")
	}
	if char.Pred.Matches('a') {
		t.Fatal("[^a] should not match 'a'")
	}

	n2 := mustParse(t, "[a^]")
	char2 := n2.(ast.Char)
	if !char2.Pred.Matches('^') {
		t.Fatal("[a^] should match literal '^' when not in first position")
	}
}

func TestParseEscapeRoundTrip(t *testing.T) {
	for _, m := range []byte("()[].*+?|^$\\") {
		pattern := []byte{'\\', m}
		n := mustParse(t, string(pattern))
		char, ok := n.(ast.Char)
		if !ok {
			t.Fatalf("\\%c: expected Char node, got %T", m, n)
		}
		if !char.Pred.Matches(m) {
			t.Fatalf("\\%c: predicate does not match literal byte %q", m, m)
		}
	}
}
