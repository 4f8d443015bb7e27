// Package dfa implements subset (powerset) construction from an NFA and the
// resulting table-driven DFA simulator.
//
// Unlike the teacher's dfa/lazy package, which determinizes states on demand
// during search with an eviction cache, this package determinizes the whole
// automaton eagerly at compile time: spec §5 bounds compilation memory with
// a hard state ceiling instead of a runtime cache, since there is no lazy
// fallback path to evict into once built.
package dfa

// StateID indexes into DFA.States.
type StateID int

// Dead marks a transition with no valid successor state.
const Dead StateID = -1

// State is one DFA state: a full 256-entry transition table plus whether
// the state accepts, and under what condition.
type State struct {
	Table [256]StateID

	// Accepting is true if reaching this state (at any position, or at
	// end-of-input — see AcceptsOnlyAtEnd) is a match.
	Accepting bool

	// AcceptsOnlyAtEnd is true when this state's NFA-state set reaches
	// Accept only through AnchorEnd transitions: the state should be
	// treated as accepting solely when the simulator has consumed the
	// entire input (spec §4.6).
	AcceptsOnlyAtEnd bool
}
