// Package ast defines the Abstract Syntax Tree produced by the parser and
// consumed by the NFA builder.
//
// The tree is a tagged variant over ten node kinds, one concrete Go type per
// kind, in preference to a single struct carrying fields unused by most
// kinds. The tree is immutable after construction and owned exclusively by
// the compiled regex that built it; no reference to it survives compilation
// into a reusable form.
package ast

import "github.com/vance-dev/byterex/predicate"

// Kind tags which AST node a Node value is. The NFA builder and the printer
// dispatch with a type switch on the concrete node type, not on Kind.
type Kind uint8

const (
	KindChar Kind = iota
	KindConcat
	KindAlt
	KindStar
	KindPlus
	KindQuestion
	KindGroup
	KindAnchorStart
	KindAnchorEnd
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindConcat:
		return "Concat"
	case KindAlt:
		return "Alt"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindQuestion:
		return "Question"
	case KindGroup:
		return "Group"
	case KindAnchorStart:
		return "AnchorStart"
	case KindAnchorEnd:
		return "AnchorEnd"
	case KindEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Node is implemented by every AST node kind.
type Node interface {
	Kind() Kind
}

// Char wraps a single matcher predicate: a literal byte, dot, or class.
type Char struct {
	Pred predicate.Predicate
}

func (Char) Kind() Kind { return KindChar }

// Concat is ordered sequencing: Left followed by Right.
type Concat struct {
	Left, Right Node
}

func (Concat) Kind() Kind { return KindConcat }

// Alt is alternation: Left or Right.
type Alt struct {
	Left, Right Node
}

func (Alt) Kind() Kind { return KindAlt }

// Star is a greedy, unbounded zero-or-more quantifier.
type Star struct {
	Child Node
}

func (Star) Kind() Kind { return KindStar }

// Plus is a greedy, unbounded one-or-more quantifier.
type Plus struct {
	Child Node
}

func (Plus) Kind() Kind { return KindPlus }

// Question is a greedy zero-or-one quantifier.
type Question struct {
	Child Node
}

func (Question) Kind() Kind { return KindQuestion }

// Group is non-capturing grouping: semantically transparent, kept only so
// the tree can be printed/debugged faithfully to the source pattern.
type Group struct {
	Child Node
}

func (Group) Kind() Kind { return KindGroup }

// AnchorStart is the zero-width `^` assertion.
type AnchorStart struct{}

func (AnchorStart) Kind() Kind { return KindAnchorStart }

// AnchorEnd is the zero-width `$` assertion.
type AnchorEnd struct{}

func (AnchorEnd) Kind() Kind { return KindAnchorEnd }

// Empty matches the empty string exactly; it is also used as the
// placeholder for an omitted alternative (e.g. the right side of `a|`).
type Empty struct{}

func (Empty) Kind() Kind { return KindEmpty }

// metaChars lists every byte the pattern grammar treats specially; a
// literal occurrence of one of them in a pattern must be written `\x`.
const metaChars = "()[].*+?|^$\\"

// IsMeta reports whether b is one of the pattern language's metacharacters.
// The parser's switch in parser.parseAtom is the authority on what each one
// does; IsMeta exists so the printer can decide when a literal byte needs a
// leading backslash to parse back the same way.
func IsMeta(b byte) bool {
	for i := 0; i < len(metaChars); i++ {
		if metaChars[i] == b {
			return true
		}
	}
	return false
}
