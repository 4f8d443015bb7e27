package nfa

import (
	"github.com/vance-dev/byterex/internal/sparse"
	"github.com/vance-dev/byterex/match"
)

// Find implements leftmost-longest matching (spec §4.5): for each start
// position in turn, it simulates the NFA and records the longest run of
// input consumed before the accepting state was last seen. The first start
// position that reaches Accept at all wins; ties at the same start are
// broken by the longest length, which the per-start simulation already
// computes by continuing until the frontier dies or input is exhausted.
func (n *NFA) Find(input []byte) match.Result {
	return n.FindFrom(input, 0)
}

// FindFrom is Find restricted to start positions >= from, without treating
// from as a new end of input or a new position 0: anchors are still
// resolved against the absolute bounds of input. This lets callers scan
// for successive non-overlapping matches (see Regex.FindAllIndex) without
// an AnchorStart incorrectly re-admitting at each resumption point.
func (n *NFA) FindFrom(input []byte, from int) match.Result {
	if n.AnchoredStart {
		if from > 0 {
			return match.NoMatch
		}
		if end, ok := n.simulateFrom(input, 0); ok {
			return match.Found(0, end)
		}
		return match.NoMatch
	}
	lastStart := len(input)
	for start := from; start <= lastStart; start++ {
		if end, ok := n.simulateFrom(input, start); ok {
			return match.Found(start, end)
		}
	}
	return match.NoMatch
}

// simulateFrom runs the frontier simulation starting at byte offset start,
// returning the end of the longest match beginning there, if any.
func (n *NFA) simulateFrom(input []byte, start int) (int, bool) {
	length := len(input)
	frontier := n.epsilonClosure([]StateID{n.Start}, start, length)

	bestEnd := -1
	if frontier.Contains(int(n.Accept)) {
		bestEnd = start
	}

	pos := start
	for pos < length {
		b := input[pos]
		var next []StateID
		for _, id := range frontier.Values() {
			s := n.States[id]
			if s.Kind == KindSymbol && s.Pred.Matches(b) {
				next = append(next, s.Out1)
			}
		}
		pos++
		if len(next) == 0 {
			break
		}
		frontier = n.epsilonClosure(next, pos, length)
		if frontier.Contains(int(n.Accept)) {
			bestEnd = pos
		}
	}

	if bestEnd == -1 {
		return 0, false
	}
	return bestEnd, true
}

// epsilonClosure computes the smallest superset of seeds reachable via
// epsilon and anchor-gated transitions, admitting AnchorStart only when
// pos == 0 and AnchorEnd only when pos == length (spec §4.5). The returned
// set holds every state visited, including the epsilon, split and anchor
// states passed through; the stepping loop only acts on its KindSymbol
// members and the Accept check on its KindMatch member.
func (n *NFA) epsilonClosure(seeds []StateID, pos, length int) *sparse.Set {
	visited := sparse.NewSet(len(n.States))
	stack := append([]StateID(nil), seeds...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(int(id)) {
			continue
		}
		visited.Insert(int(id))

		s := n.States[id]
		switch s.Kind {
		case KindEpsilon:
			stack = append(stack, s.Out1)
		case KindSplit:
			stack = append(stack, s.Out1, s.Out2)
		case KindAnchorStart:
			if pos == 0 {
				stack = append(stack, s.Out1)
			}
		case KindAnchorEnd:
			if pos == length {
				stack = append(stack, s.Out1)
			}
		case KindSymbol, KindMatch:
			// Terminal: consumes input (Symbol) or ends the match (Match).
			// Stays in the frontier without further expansion.
		}
	}
	return visited
}
