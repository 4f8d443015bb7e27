package dfa

import "github.com/vance-dev/byterex/match"

// Find implements the same leftmost-longest contract as nfa.NFA.Find (spec
// §8 requires the two engines to agree on every input): for each candidate
// start position, walk the transition table byte by byte, remembering the
// last position at which an accepting state was seen, honoring
// AcceptsOnlyAtEnd only once the walk has truly exhausted the input.
func (d *DFA) Find(input []byte) match.Result {
	return d.FindFrom(input, 0)
}

// FindFrom is Find restricted to start positions >= from; see
// nfa.NFA.FindFrom for why an anchored start must not be re-admitted at a
// resumption point greater than 0.
func (d *DFA) FindFrom(input []byte, from int) match.Result {
	if d.AnchoredStart {
		if from > 0 {
			return match.NoMatch
		}
		if end, ok := d.simulateFrom(input, 0); ok {
			return match.Found(0, end)
		}
		return match.NoMatch
	}
	lastStart := len(input)
	for start := from; start <= lastStart; start++ {
		if end, ok := d.simulateFrom(input, start); ok {
			return match.Found(start, end)
		}
	}
	return match.NoMatch
}

// simulateFrom walks the DFA from byte offset start, returning the end of
// the longest match beginning there, if any.
func (d *DFA) simulateFrom(input []byte, start int) (int, bool) {
	length := len(input)
	state := d.Start

	bestEnd := -1
	if st := d.States[state]; st.Accepting && (!st.AcceptsOnlyAtEnd || start == length) {
		bestEnd = start
	}

	pos := start
	for pos < length {
		st := d.States[state]
		next := st.Table[input[pos]]
		if next == Dead {
			break
		}
		state = next
		pos++
		ns := d.States[state]
		if ns.Accepting && (!ns.AcceptsOnlyAtEnd || pos == length) {
			bestEnd = pos
		}
	}

	if bestEnd == -1 {
		return 0, false
	}
	return bestEnd, true
}
