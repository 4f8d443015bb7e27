// Package nfa implements Thompson's construction (AST -> NFA) and the NFA
// simulator that matches strings by tracking the set of active states (the
// "frontier") as input is consumed.
package nfa

import (
	"fmt"

	"github.com/vance-dev/byterex/predicate"
)

// StateID identifies a state by its dense index into NFA.States.
type StateID int

// InvalidState marks an unset/pending transition target.
const InvalidState StateID = -1

// Kind identifies the shape of a state's outgoing transitions.
type Kind uint8

const (
	// KindMatch is the unique accepting state; it has no outgoing transitions.
	KindMatch Kind = iota
	// KindSymbol consumes one input byte satisfying Pred, moving to Out1.
	KindSymbol
	// KindSplit has two outgoing epsilon transitions, Out1 and Out2 (alternation
	// and quantifier branch points).
	KindSplit
	// KindEpsilon has one outgoing epsilon transition, Out1.
	KindEpsilon
	// KindAnchorStart's Out1 is only traversable when the current input
	// position is 0.
	KindAnchorStart
	// KindAnchorEnd's Out1 is only traversable when the current input
	// position equals len(input).
	KindAnchorEnd
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "Match"
	case KindSymbol:
		return "Symbol"
	case KindSplit:
		return "Split"
	case KindEpsilon:
		return "Epsilon"
	case KindAnchorStart:
		return "AnchorStart"
	case KindAnchorEnd:
		return "AnchorEnd"
	default:
		return "Unknown"
	}
}

// State is one node of the NFA's transition graph. Which fields are
// meaningful depends on Kind, mirroring a tagged union.
type State struct {
	Kind       Kind
	Pred       predicate.Predicate // valid for KindSymbol
	Out1, Out2 StateID             // Out2 valid only for KindSplit
}

func (s State) String() string {
	switch s.Kind {
	case KindMatch:
		return "Match"
	case KindSymbol:
		return fmt.Sprintf("Symbol(%s) -> %d", s.Pred, s.Out1)
	case KindSplit:
		return fmt.Sprintf("Split -> [%d, %d]", s.Out1, s.Out2)
	case KindEpsilon:
		return fmt.Sprintf("Epsilon -> %d", s.Out1)
	case KindAnchorStart:
		return fmt.Sprintf("AnchorStart -> %d", s.Out1)
	case KindAnchorEnd:
		return fmt.Sprintf("AnchorEnd -> %d", s.Out1)
	default:
		return "Unknown"
	}
}
