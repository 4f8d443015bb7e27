package ast

import (
	"strings"

	"github.com/vance-dev/byterex/predicate"
)

// Print renders n back into pattern syntax. It is not guaranteed to
// reproduce the original source text byte-for-byte (e.g. redundant groups
// are preserved, escaping is re-derived), but round-tripping Print through
// the parser reproduces the same AST shape. Used by tests and debugging
// tools, not required for matching.
func Print(n Node) string {
	var sb strings.Builder
	print1(&sb, n)
	return sb.String()
}

func print1(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case Char:
		printChar(sb, v)
	case Concat:
		print1(sb, v.Left)
		print1(sb, v.Right)
	case Alt:
		print1(sb, v.Left)
		sb.WriteByte('|')
		print1(sb, v.Right)
	case Star:
		print1(sb, v.Child)
		sb.WriteByte('*')
	case Plus:
		print1(sb, v.Child)
		sb.WriteByte('+')
	case Question:
		print1(sb, v.Child)
		sb.WriteByte('?')
	case Group:
		sb.WriteByte('(')
		print1(sb, v.Child)
		sb.WriteByte(')')
	case AnchorStart:
		sb.WriteByte('^')
	case AnchorEnd:
		sb.WriteByte('$')
	case Empty:
		// contributes nothing to the printed text
	default:
		sb.WriteString("<?>")
	}
}

// printChar writes a Char node's predicate in pattern syntax. A Literal
// byte that is itself a metacharacter must be re-escaped with a leading
// '\' so it parses back as a literal rather than as that metacharacter;
// Dot and Class predicates already print in pattern syntax as-is.
func printChar(sb *strings.Builder, c Char) {
	lit, ok := c.Pred.(predicate.Literal)
	if !ok {
		sb.WriteString(c.Pred.String())
		return
	}
	if IsMeta(lit.B) {
		sb.WriteByte('\\')
	}
	sb.WriteByte(lit.B)
}
