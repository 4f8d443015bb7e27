package dfa

import (
	"testing"

	"github.com/vance-dev/byterex/nfa"
	"github.com/vance-dev/byterex/parser"
)

func buildDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	root, err := parser.Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("parser.Parse(%q) failed: %v", pattern, err)
	}
	n := nfa.BuildNFA(root)
	d, err := Build(n, 0)
	if err != nil {
		t.Fatalf("Build(%q) failed: %v", pattern, err)
	}
	return d
}

func TestFindScenarios(t *testing.T) {
	cases := []struct {
		pattern   string
		input     string
		wantMatch bool
		wantStart int
		wantEnd   int
	}{
		{"a(b|c)*d", "abbcd", true, 0, 5},
		{"^[0-9]+$", "12345", true, 0, 5},
		{"^[0-9]+$", "12a45", false, 0, 0},
		{"[^abc]+", "xxabc", true, 0, 2},
		{"a.*b", "aXYZb", true, 0, 5},
		{"a|b|c", "zzzb", true, 3, 4},
		{"", "anything", true, 0, 0},
	}
	for _, c := range cases {
		d := buildDFA(t, c.pattern)
		got := d.Find([]byte(c.input))
		if got.IsMatched() != c.wantMatch {
			t.Errorf("pattern %q input %q: IsMatched() = %v, want %v", c.pattern, c.input, got.IsMatched(), c.wantMatch)
			continue
		}
		if !c.wantMatch {
			continue
		}
		if got.Start() != c.wantStart || got.End() != c.wantEnd {
			t.Errorf("pattern %q input %q: got [%d,%d), want [%d,%d)", c.pattern, c.input, got.Start(), got.End(), c.wantStart, c.wantEnd)
		}
	}
}

func TestFindEmptyPatternAlwaysMatchesAtZero(t *testing.T) {
	d := buildDFA(t, "")
	for _, input := range []string{"", "x", "hello world"} {
		got := d.Find([]byte(input))
		if !got.IsMatched() || got.Start() != 0 || got.End() != 0 {
			t.Errorf("empty pattern on %q: got matched=%v [%d,%d), want [0,0)", input, got.IsMatched(), got.Start(), got.End())
		}
	}
}

func TestAnchorSoundness(t *testing.T) {
	d := buildDFA(t, "^abc")
	if d.Find([]byte("xabc")).IsMatched() {
		t.Fatal("^abc must not match when 'abc' does not start at position 0")
	}
	if !d.Find([]byte("abcx")).IsMatched() {
		t.Fatal("^abc must match when input starts with abc")
	}

	d2 := buildDFA(t, "abc$")
	if d2.Find([]byte("abcx")).IsMatched() {
		t.Fatal("abc$ must not match unless the match ends at end of input")
	}
	got := d2.Find([]byte("xabc"))
	if !got.IsMatched() || got.End() != 4 {
		t.Fatalf("abc$ on 'xabc': got matched=%v end=%d, want matched end=4", got.IsMatched(), got.End())
	}
}

func TestLeftmostLongest(t *testing.T) {
	d := buildDFA(t, "a+")
	got := d.Find([]byte("baaab"))
	if !got.IsMatched() || got.Start() != 1 || got.End() != 4 {
		t.Fatalf("a+ on 'baaab': got [%d,%d), want [1,4)", got.Start(), got.End())
	}
}

func TestAnchoredStartPropagatedFromNFA(t *testing.T) {
	d := buildDFA(t, "^a")
	if !d.AnchoredStart {
		t.Fatal("pattern starting with ^ should set AnchoredStart on the DFA too")
	}
	if d.Find([]byte("xa")).IsMatched() {
		t.Fatal("^a must not match 'xa'")
	}
}

func TestBuildRespectsMaxStates(t *testing.T) {
	root, err := parser.Parse([]byte("a(b|c)*d"))
	if err != nil {
		t.Fatalf("parser.Parse failed: %v", err)
	}
	n := nfa.BuildNFA(root)
	_, err = Build(n, 1)
	if err == nil {
		t.Fatal("expected InternalLimit error when maxStates is too small")
	}
}

func TestGroupTransparent(t *testing.T) {
	d := buildDFA(t, "(ab)+")
	got := d.Find([]byte("ababab"))
	if !got.IsMatched() || got.Start() != 0 || got.End() != 6 {
		t.Fatalf("(ab)+ on 'ababab': got [%d,%d), want [0,6)", got.Start(), got.End())
	}
}
