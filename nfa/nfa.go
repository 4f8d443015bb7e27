package nfa

import "github.com/vance-dev/byterex/ast"

// NFA is the result of Thompson's construction: a dense state table with a
// single Start and single Accept state, per spec §3.
type NFA struct {
	States []State
	Start  StateID
	Accept StateID

	// AnchoredStart is true when the pattern's top-level first construct is
	// AnchorStart, letting the simulator skip every start position but 0
	// (spec §4.5's optimization; equivalent to, not required by, the
	// general algorithm).
	AnchoredStart bool
}

// BuildNFA compiles root into an NFA via Thompson's construction, also
// computing the AnchoredStart hint from the original AST (which the
// construction otherwise discards once state-building is done).
func BuildNFA(root ast.Node) *NFA {
	n := compile(root)
	n.AnchoredStart = startsWithAnchor(root)
	return n
}

// startsWithAnchor reports whether n's leftmost atom is a top-level
// AnchorStart, looking through Concat and Group wrapping.
func startsWithAnchor(n ast.Node) bool {
	for {
		switch v := n.(type) {
		case ast.AnchorStart:
			return true
		case ast.Concat:
			n = v.Left
		case ast.Group:
			n = v.Child
		default:
			return false
		}
	}
}

// Valid checks the structural invariants spec §3 demands: exactly one start
// and accept, every state reachable from start, accept reachable from
// start, and no transition target outside [0, N). CompileWithConfig calls it
// once per compile; the match path never does.
func (n *NFA) Valid() bool {
	count := StateID(len(n.States))
	inRange := func(id StateID) bool {
		return id == InvalidState || (id >= 0 && id < count)
	}
	if n.Start < 0 || n.Start >= count || n.Accept < 0 || n.Accept >= count {
		return false
	}
	for _, s := range n.States {
		if !inRange(s.Out1) || !inRange(s.Out2) {
			return false
		}
		if s.Kind != KindMatch && s.Out1 == InvalidState {
			return false
		}
	}

	reachable := make([]bool, count)
	var stack []StateID
	stack = append(stack, n.Start)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[id] {
			continue
		}
		reachable[id] = true
		s := n.States[id]
		if s.Out1 != InvalidState {
			stack = append(stack, s.Out1)
		}
		if s.Kind == KindSplit && s.Out2 != InvalidState {
			stack = append(stack, s.Out2)
		}
	}
	for _, r := range reachable {
		if !r {
			return false
		}
	}
	return reachable[n.Accept]
}
