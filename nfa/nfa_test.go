package nfa

import (
	"testing"

	"github.com/vance-dev/byterex/parser"
)

func build(t *testing.T, pattern string) *NFA {
	t.Helper()
	root, err := parser.Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("parser.Parse(%q) failed: %v", pattern, err)
	}
	return BuildNFA(root)
}

func TestBuildValid(t *testing.T) {
	patterns := []string{"", "a", "a(b|c)*d", "^[0-9]+$", "[^abc]+", "a.*b", "a|b|c", "a?b+c*"}
	for _, p := range patterns {
		n := build(t, p)
		if !n.Valid() {
			t.Errorf("pattern %q: NFA fails structural invariants", p)
		}
	}
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
		n := build(t, c.pattern)
		got := n.Find([]byte(c.input))
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
	n := build(t, "")
	for _, input := range []string{"", "x", "hello world"} {
		got := n.Find([]byte(input))
		if !got.IsMatched() || got.Start() != 0 || got.End() != 0 {
			t.Errorf("empty pattern on %q: got matched=%v [%d,%d), want [0,0)", input, got.IsMatched(), got.Start(), got.End())
		}
	}
}

func TestAnchorSoundness(t *testing.T) {
	n := build(t, "^abc")
	if n.Find([]byte("xabc")).IsMatched() {
		t.Fatal("^abc must not match when 'abc' does not start at position 0")
	}
	if !n.Find([]byte("abcx")).IsMatched() {
		t.Fatal("^abc must match when input starts with abc")
	}

	n2 := build(t, "abc$")
	if n2.Find([]byte("abcx")).IsMatched() {
		t.Fatal("abc$ must not match unless the match ends at end of input")
	}
	got := n2.Find([]byte("xabc"))
	if !got.IsMatched() || got.End() != 4 {
		t.Fatalf("abc$ on 'xabc': got matched=%v end=%d, want matched end=4", got.IsMatched(), got.End())
	}
}

func TestRoundTripEscapes(t *testing.T) {
	for _, m := range []byte("()[].*+?|^$\\") {
		pattern := string([]byte{'\\', m})
		n := build(t, pattern)
		input := []byte{'x', m, 'y'}
		got := n.Find(input)
		if !got.IsMatched() || got.Start() != 1 || got.End() != 2 {
			t.Errorf("escaped %q: got matched=%v [%d,%d), want [1,2)", m, got.IsMatched(), got.Start(), got.End())
		}
	}
}

func TestLeftmostLongest(t *testing.T) {
	n := build(t, "a+")
	got := n.Find([]byte("baaab"))
	if !got.IsMatched() || got.Start() != 1 || got.End() != 4 {
		t.Fatalf("a+ on 'baaab': got [%d,%d), want [1,4)", got.Start(), got.End())
	}
}

func TestAnchorStartOptimizationIsConsistent(t *testing.T) {
	anchored := build(t, "^a")
	if !anchored.AnchoredStart {
		t.Fatal("pattern starting with ^ should set AnchoredStart")
	}
	unanchored := build(t, "a")
	if unanchored.AnchoredStart {
		t.Fatal("pattern not starting with ^ should not set AnchoredStart")
	}

	// ^a must never match mid-string even though 'a' occurs there.
	got := anchored.Find([]byte("xa"))
	if got.IsMatched() {
		t.Fatal("^a must not match 'xa'")
	}
}

func TestQuantifiers(t *testing.T) {
	star := build(t, "ab*c")
	for _, in := range []string{"ac", "abc", "abbbbc"} {
		if !star.Find([]byte(in)).IsMatched() {
			t.Errorf("ab*c should match %q", in)
		}
	}
	if star.Find([]byte("abxc")).IsMatched() {
		t.Error("ab*c should not match 'abxc' from start (but substring 'ac'? none present, should be no match at all)")
	}

	plus := build(t, "ab+c")
	if plus.Find([]byte("ac")).IsMatched() {
		t.Error("ab+c should not match 'ac' (requires at least one b)")
	}
	if !plus.Find([]byte("abc")).IsMatched() {
		t.Error("ab+c should match 'abc'")
	}

	question := build(t, "ab?c")
	if !question.Find([]byte("ac")).IsMatched() {
		t.Error("ab?c should match 'ac'")
	}
	if !question.Find([]byte("abc")).IsMatched() {
		t.Error("ab?c should match 'abc'")
	}
	if question.Find([]byte("abbc")).IsMatched() {
		t.Error("ab?c should not match 'abbc'")
	}
}

func TestGroupTransparent(t *testing.T) {
	g := build(t, "(ab)+")
	got := g.Find([]byte("ababab"))
	if !got.IsMatched() || got.Start() != 0 || got.End() != 6 {
		t.Fatalf("(ab)+ on 'ababab': got [%d,%d), want [0,6)", got.Start(), got.End())
	}
}
