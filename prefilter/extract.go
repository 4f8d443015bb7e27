package prefilter

import (
	"github.com/vance-dev/byterex/ast"
	"github.com/vance-dev/byterex/predicate"
)

// literalSet is a finite set of required literal byte sequences extracted
// from a pattern's AST: at least one of them must occur in the haystack for
// the pattern to match anywhere. It is never a sufficient condition, only a
// necessary one, so a prefilter built from it only narrows candidate start
// positions — the real NFA or DFA simulator still verifies every candidate.
type literalSet struct {
	literals [][]byte
}

// extractLiterals walks n looking for a pattern that reduces entirely to a
// finite alternation of fixed-byte sequences: single literals, concatenated
// literal chains, and top-level alternations of such chains. Anchors and
// groups around a literal chain are transparent. Any quantifier, class, or
// dot anywhere in the chain defeats extraction for that branch, since it can
// no longer be expressed as one required byte sequence.
//
// extractLiterals returns ok == false when no useful set could be built
// (e.g. the pattern starts with `.*` or a character class), in which case
// callers must fall back to simulating from every position.
func extractLiterals(n ast.Node, maxLiterals int) (*literalSet, bool) {
	branches, ok := literalBranches(n)
	if !ok || len(branches) == 0 || len(branches) > maxLiterals {
		return nil, false
	}
	for _, b := range branches {
		if len(b) == 0 {
			// An empty-string branch matches everywhere; a prefilter built
			// from it would never be able to skip ahead, so it is useless.
			return nil, false
		}
	}
	return &literalSet{literals: branches}, true
}

// literalBranches returns every alternative fixed-byte sequence required by
// n, or ok == false if n contains something that cannot be reduced to one.
func literalBranches(n ast.Node) ([][]byte, bool) {
	switch v := n.(type) {
	case ast.Empty:
		return [][]byte{{}}, true
	case ast.Group:
		return literalBranches(v.Child)
	case ast.AnchorStart:
		return [][]byte{{}}, true
	case ast.AnchorEnd:
		return [][]byte{{}}, true
	case ast.Char:
		lit, ok := v.Pred.(predicate.Literal)
		if !ok {
			return nil, false
		}
		return [][]byte{{lit.B}}, true
	case ast.Concat:
		left, ok := literalBranches(v.Left)
		if !ok {
			return nil, false
		}
		right, ok := literalBranches(v.Right)
		if !ok {
			return nil, false
		}
		if len(left) != 1 || len(right) != 1 {
			// Cross product of alternations inside a concat would explode
			// the candidate set for no real gain at our scale; only allow
			// alternation at the outermost level.
			return nil, false
		}
		return [][]byte{append(append([]byte(nil), left[0]...), right[0]...)}, true
	case ast.Alt:
		left, ok := literalBranches(v.Left)
		if !ok {
			return nil, false
		}
		right, ok := literalBranches(v.Right)
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	default:
		// Star, Question: the child may contribute zero bytes. Plus: the
		// child repeats an unbounded number of times. Either way the node
		// is not one fixed byte sequence.
		return nil, false
	}
}
