// Package predicate provides matcher predicates: the leaf-level test of
// whether a single input byte satisfies a symbol from a pattern (a literal
// byte, a dot, or a character class).
//
// A predicate is a pure function of one byte. Every predicate canonicalizes
// its representation at construction and implements structural Equal. The
// DFA builder does not call Equal: it tests each of the 256 byte values with
// Matches.
package predicate

import "fmt"

// Predicate decides whether a single input byte matches a symbol.
type Predicate interface {
	// Matches reports whether b satisfies this predicate.
	Matches(b byte) bool

	// Equal reports whether other is structurally identical to this
	// predicate.
	Equal(other Predicate) bool

	// String returns a human-readable, canonical representation, useful for
	// debugging and for the AST printer.
	String() string
}

// Literal matches exactly one byte value.
type Literal struct {
	B byte
}

// NewLiteral constructs a predicate matching exactly byte c.
func NewLiteral(c byte) Literal {
	return Literal{B: c}
}

// Matches implements Predicate.
func (l Literal) Matches(b byte) bool { return b == l.B }

// Equal implements Predicate.
func (l Literal) Equal(other Predicate) bool {
	o, ok := other.(Literal)
	return ok && o.B == l.B
}

func (l Literal) String() string {
	return fmt.Sprintf("%q", string(l.B))
}

// Dot matches any byte except the newline byte 0x0A.
type Dot struct{}

// NewDot constructs the "any byte but newline" predicate.
func NewDot() Dot { return Dot{} }

// Matches implements Predicate.
func (Dot) Matches(b byte) bool { return b != '\n' }

// Equal implements Predicate.
func (Dot) Equal(other Predicate) bool {
	_, ok := other.(Dot)
	return ok
}

func (Dot) String() string { return "." }
