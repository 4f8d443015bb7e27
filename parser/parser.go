// Package parser implements a recursive-descent parser for the pattern
// language, producing an ast.Node tree. The grammar (lowest precedence
// first):
//
//	Regex   := Alt
//	Alt     := Concat ('|' Concat)*
//	Concat  := Quant*
//	Quant   := Atom ('*' | '+' | '?')?
//	Atom    := '(' Regex ')' | '[' Class ']' | '.' | '^' | '$' | Literal
//	Class   := '^'? ClassItem+
//	ClassItem := Char ('-' Char)?
//	Literal := any byte except the metacharacters ( ) [ ] . * + ? | ^ $ \
//	         | '\' any byte
//
// The parser does not recover: the first error terminates parsing and is
// returned with the zero-based byte position at which it was detected.
package parser

import (
	"fmt"

	"github.com/vance-dev/byterex/ast"
	"github.com/vance-dev/byterex/errs"
	"github.com/vance-dev/byterex/predicate"
)

// Parse compiles pattern into an AST, or returns a *errs.CompileError
// describing the first parse failure.
func Parse(pattern []byte) (ast.Node, error) {
	p := &parser{src: pattern}
	n, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		// Only a stray ')' can be left over: parseAlt/parseConcat stop at
		// '|' boundaries they themselves consume, so anything else left
		// unconsumed at the top level is an unmatched closing paren.
		return nil, errs.New(errs.UnexpectedChar, p.pos, fmt.Sprintf("unexpected %q", p.src[p.pos]))
	}
	return n, nil
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) advance() byte {
	b := p.src[p.pos]
	p.pos++
	return b
}

// parseAlt implements Alt := Concat ('|' Concat)*
func (p *parser) parseAlt() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() == '|' {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = ast.Alt{Left: left, Right: right}
	}
	return left, nil
}

// parseConcat implements Concat := Quant*, stopping at '|', ')', or EOF.
func (p *parser) parseConcat() (ast.Node, error) {
	var node ast.Node
	for !p.eof() && p.peek() != '|' && p.peek() != ')' {
		next, err := p.parseQuant()
		if err != nil {
			return nil, err
		}
		if node == nil {
			node = next
		} else {
			node = ast.Concat{Left: node, Right: next}
		}
	}
	if node == nil {
		return ast.Empty{}, nil
	}
	return node, nil
}

// parseQuant implements Quant := Atom ('*' | '+' | '?')?
func (p *parser) parseQuant() (ast.Node, error) {
	atomPos := p.pos
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if atom == nil {
		// Atom() declined: the current byte is a quantifier metacharacter
		// with nothing preceding it.
		return nil, errs.New(errs.NothingToRepeat, atomPos, fmt.Sprintf("nothing to repeat at %q", p.src[atomPos]))
	}
	if !p.eof() {
		switch p.peek() {
		case '*':
			p.advance()
			return ast.Star{Child: atom}, nil
		case '+':
			p.advance()
			return ast.Plus{Child: atom}, nil
		case '?':
			p.advance()
			return ast.Question{Child: atom}, nil
		}
	}
	return atom, nil
}

// parseAtom implements Atom. It returns (nil, nil) when the current byte
// cannot start an atom (a bare quantifier character); the caller turns that
// into a NothingToRepeat error.
func (p *parser) parseAtom() (ast.Node, error) {
	if p.eof() {
		return nil, nil
	}
	switch p.peek() {
	case '*', '+', '?':
		return nil, nil
	case '(':
		groupPos := p.pos
		p.advance()
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.eof() || p.peek() != ')' {
			return nil, errs.New(errs.UnclosedGroup, groupPos, "unclosed group")
		}
		p.advance()
		return ast.Group{Child: inner}, nil
	case ')':
		// Let the Concat/Alt loop stop first; Parse() reports stray ')'.
		return nil, nil
	case ']':
		return nil, errs.New(errs.UnexpectedChar, p.pos, "unexpected ']' outside a character class")
	case '[':
		return p.parseClass()
	case '.':
		p.advance()
		return ast.Char{Pred: predicate.NewDot()}, nil
	case '^':
		p.advance()
		return ast.AnchorStart{}, nil
	case '$':
		p.advance()
		return ast.AnchorEnd{}, nil
	case '\\':
		escPos := p.pos
		p.advance()
		if p.eof() {
			return nil, errs.New(errs.UnexpectedEnd, escPos, "trailing backslash")
		}
		c := p.advance()
		return ast.Char{Pred: predicate.NewLiteral(c)}, nil
	default:
		c := p.advance()
		return ast.Char{Pred: predicate.NewLiteral(c)}, nil
	}
}

// parseClass implements '[' Class ']', Class := '^'? ClassItem+.
func (p *parser) parseClass() (ast.Node, error) {
	startPos := p.pos // position of '['
	p.advance()

	negated := false
	if !p.eof() && p.peek() == '^' {
		negated = true
		p.advance()
	}

	var ranges [][2]byte
	for {
		if p.eof() {
			return nil, errs.New(errs.UnclosedClass, startPos, "unclosed character class")
		}
		if p.peek() == ']' {
			break
		}
		loPos := p.pos
		lo, err := p.parseClassChar(startPos)
		if err != nil {
			return nil, err
		}
		hi := lo
		if !p.eof() && p.peek() == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
			p.advance() // consume '-'
			end, err := p.parseClassChar(startPos)
			if err != nil {
				return nil, err
			}
			hi = end
			if lo > hi {
				return nil, errs.New(errs.InvalidRange, loPos, fmt.Sprintf("invalid range %q-%q", lo, hi))
			}
		}
		ranges = append(ranges, [2]byte{lo, hi})
	}

	if len(ranges) == 0 {
		// An empty class ("[]" or "[^]") is not a valid pattern atom: there
		// is no ClassItem to satisfy the '+' in the grammar. Since ']' was
		// already reached, report it as an unclosed class at the '['.
		return nil, errs.New(errs.UnclosedClass, startPos, "empty character class")
	}

	p.advance() // consume ']'
	return ast.Char{Pred: predicate.NewClass(negated, ranges...)}, nil
}

// parseClassChar reads one literal byte inside a class, honoring '\' escapes.
// classStartPos is the position of the enclosing '[', used if the class
// runs off the end of the pattern.
func (p *parser) parseClassChar(classStartPos int) (byte, error) {
	if p.eof() {
		return 0, errs.New(errs.UnclosedClass, classStartPos, "unclosed character class")
	}
	if p.peek() == '\\' {
		escPos := p.pos
		p.advance()
		if p.eof() {
			return 0, errs.New(errs.UnexpectedEnd, escPos, "trailing backslash")
		}
		return p.advance(), nil
	}
	return p.advance(), nil
}
