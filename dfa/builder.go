package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vance-dev/byterex/errs"
	"github.com/vance-dev/byterex/internal/sparse"
	"github.com/vance-dev/byterex/nfa"
)

// DFA is the result of subset construction over an NFA.
type DFA struct {
	States []State
	Start  StateID

	// AnchoredStart mirrors nfa.NFA.AnchoredStart: when true, the simulator
	// only attempts start position 0, because Start's construction admits
	// AnchorStart transitions unconditionally (valid only when the true
	// search origin is byte 0 of the whole input).
	AnchoredStart bool
}

// DefaultMaxStates is the subset-construction ceiling recommended by spec
// §5, matching the teacher's meta.Config.MaxDFAStates default exactly.
const DefaultMaxStates = 10000

// Build runs subset construction over n, refusing to exceed maxStates
// states. Exceeding the ceiling returns an *errs.CompileError with
// Kind == errs.InternalLimit; callers should fall back to the NFA engine.
func Build(n *nfa.NFA, maxStates int) (*DFA, error) {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	c := &constructor{
		nfa:     n,
		byKey:   make(map[string]StateID),
		maxSize: maxStates,
	}

	start, err := c.stateFor(c.closure([]nfa.StateID{n.Start}, true))
	if err != nil {
		return nil, err
	}

	for len(c.queue) > 0 {
		id := c.queue[0]
		c.queue = c.queue[1:]
		if err := c.expand(id); err != nil {
			return nil, err
		}
	}

	return &DFA{States: c.states, Start: start, AnchoredStart: n.AnchoredStart}, nil
}

// constructor holds the worklist-driven subset-construction state.
type constructor struct {
	nfa       *nfa.NFA
	states    []State
	closureOf []*sparse.Set
	byKey     map[string]StateID
	queue     []StateID
	maxSize   int
}

// stateFor looks up (or creates) the DFA state for the canonicalized NFA
// subset in closure, enqueuing new states for expansion.
func (c *constructor) stateFor(closureSet *sparse.Set) (StateID, error) {
	key := canonicalKey(closureSet)
	if id, ok := c.byKey[key]; ok {
		return id, nil
	}
	if len(c.states) >= c.maxSize {
		return Dead, errs.New(errs.InternalLimit, 0,
			"DFA state count exceeded configured ceiling; fall back to the NFA engine")
	}

	accepting, acceptsOnlyAtEnd := c.acceptance(closureSet)
	id := StateID(len(c.states))
	st := State{Accepting: accepting, AcceptsOnlyAtEnd: acceptsOnlyAtEnd}
	for b := 0; b < 256; b++ {
		st.Table[b] = Dead
	}
	c.states = append(c.states, st)
	c.closureOf = append(c.closureOf, closureSet)
	c.byKey[key] = id
	c.queue = append(c.queue, id)
	return id, nil
}

// expand computes every byte transition out of DFA state id.
func (c *constructor) expand(id StateID) error {
	closureSet := c.closureOf[id]
	for b := 0; b < 256; b++ {
		var raw []nfa.StateID
		for _, sid := range closureSet.Values() {
			s := c.nfa.States[sid]
			if s.Kind == nfa.KindSymbol && s.Pred.Matches(byte(b)) {
				raw = append(raw, s.Out1)
			}
		}
		if len(raw) == 0 {
			continue
		}
		next := c.closure(raw, false)
		if next.Len() == 0 {
			continue
		}
		nextID, err := c.stateFor(next)
		if err != nil {
			return err
		}
		c.states[id].Table[b] = nextID
	}
	return nil
}

// closure computes the epsilon/anchor closure of seeds. admitStart gates
// AnchorStart transitions; AnchorEnd transitions are never followed here —
// whether a state accepts "only at end of input" is determined separately
// by acceptance, since end-of-input is a runtime fact the construction
// cannot know in advance.
func (c *constructor) closure(seeds []nfa.StateID, admitStart bool) *sparse.Set {
	visited := sparse.NewSet(len(c.nfa.States))
	stack := append([]nfa.StateID(nil), seeds...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(int(id)) {
			continue
		}
		visited.Insert(int(id))

		s := c.nfa.States[id]
		switch s.Kind {
		case nfa.KindEpsilon:
			stack = append(stack, s.Out1)
		case nfa.KindSplit:
			stack = append(stack, s.Out1, s.Out2)
		case nfa.KindAnchorStart:
			if admitStart {
				stack = append(stack, s.Out1)
			}
		case nfa.KindAnchorEnd:
			// never admitted while building the transition graph
		case nfa.KindSymbol, nfa.KindMatch:
			// terminal
		}
	}
	return visited
}

// acceptance implements spec §4.6 step 3: a state accepts if its NFA subset
// contains Accept directly, or if Accept is reachable from some member
// through AnchorEnd and epsilon transitions only.
func (c *constructor) acceptance(closureSet *sparse.Set) (accepting, onlyAtEnd bool) {
	if closureSet.Contains(int(c.nfa.Accept)) {
		return true, false
	}
	if c.reachesAcceptViaAnchorEnd(closureSet) {
		return true, true
	}
	return false, false
}

// reachesAcceptViaAnchorEnd checks, for every member of closureSet, whether
// Accept is reachable following only Epsilon, Split, and AnchorEnd edges.
func (c *constructor) reachesAcceptViaAnchorEnd(closureSet *sparse.Set) bool {
	visited := sparse.NewSet(len(c.nfa.States))
	var stack []nfa.StateID
	for _, id := range closureSet.Values() {
		stack = append(stack, nfa.StateID(id))
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(int(id)) {
			continue
		}
		visited.Insert(int(id))
		if id == c.nfa.Accept {
			return true
		}
		s := c.nfa.States[id]
		switch s.Kind {
		case nfa.KindEpsilon, nfa.KindAnchorEnd:
			stack = append(stack, s.Out1)
		case nfa.KindSplit:
			stack = append(stack, s.Out1, s.Out2)
		}
	}
	return false
}

// canonicalKey produces a stable map key for a closure set: the sorted
// tuple of NFA state IDs, per spec §4.6.
func canonicalKey(s *sparse.Set) string {
	values := append([]int(nil), s.Values()...)
	sort.Ints(values)
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
