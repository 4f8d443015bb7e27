// Package prefilter narrows the set of positions the NFA or DFA simulator
// must try, by scanning ahead for literal byte sequences a pattern requires.
//
// A prefilter is never a substitute for the real simulator: finding one of
// its literals only means a match MIGHT start there. The simulator always
// re-verifies. This mirrors the teacher's prefilter package, scaled down:
// this engine has no capturing groups or Unicode classes to extract
// literals from, so only the plain-byte literal and alternation-of-literals
// cases are worth the construction cost.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/vance-dev/byterex/ast"
	"github.com/vance-dev/byterex/internal/cpufeat"
)

// Prefilter reports the next candidate start position at or after start, or
// -1 if none remains in haystack.
type Prefilter interface {
	Find(haystack []byte, start int) int
}

// minLiteralLen is the shortest literal worth scanning for ahead of the
// simulator. On hardware without AVX2, ahocorasick's dense-transition walk
// has less of an edge over just letting the simulator try every position,
// so short literals are not worth a separate scan pass.
func minLiteralLen() int {
	if cpufeat.HasAVX2() {
		return 1
	}
	return 2
}

// Build extracts a required literal set from root and returns a Prefilter
// over it, or ok == false if root does not reduce to one (e.g. it starts
// with a character class, a dot, or a repetition that can match zero
// bytes). maxLiterals bounds the size of an alternation worth indexing;
// beyond it the construction cost is assumed not to pay for itself.
func Build(root ast.Node, maxLiterals int) (Prefilter, bool) {
	set, ok := extractLiterals(root, maxLiterals)
	if !ok {
		return nil, false
	}

	minLen := minLiteralLen()
	for _, lit := range set.literals {
		if len(lit) < minLen {
			return nil, false
		}
	}

	if len(set.literals) == 1 {
		return &singleLiteral{lit: set.literals[0]}, true
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range set.literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &multiLiteral{automaton: automaton}, true
}

// singleLiteral scans for one required byte sequence using the standard
// library's substring search, itself assembly-optimized per platform —
// there is no ecosystem library in this corpus offering a single-pattern
// search faster than bytes.Index.
type singleLiteral struct {
	lit []byte
}

func (s *singleLiteral) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], s.lit)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// multiLiteral scans for any of several required byte sequences using an
// Aho-Corasick automaton, grounded on the same library the teacher reaches
// for once an alternation has more literals than a single linear scan
// should carry.
type multiLiteral struct {
	automaton *ahocorasick.Automaton
}

func (m *multiLiteral) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	match := m.automaton.Find(haystack, start)
	if match == nil {
		return -1
	}
	return match.Start
}
