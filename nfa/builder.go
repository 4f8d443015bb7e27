package nfa

import "github.com/vance-dev/byterex/ast"

// builder accumulates states as Thompson's construction walks the AST,
// following the teacher's NewBuilder/Add*/Build idiom (nfa/builder.go) but
// without the teacher's byte-class tracking, which this engine's simpler
// subset-construction DFA does not need.
type builder struct {
	states []State
}

// fragment is a partially-built piece of NFA: entry is where control enters
// it, exit is a state whose single pending transition (Out1) has not yet
// been wired to whatever follows. Every combinator below produces exactly
// one fragment with exactly one exit, so exit is always patchable with a
// single write.
type fragment struct {
	entry, exit StateID
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) add(s State) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, s)
	return id
}

// addPendingEpsilon creates a fresh epsilon state whose target is not yet
// known; patch fills it in once the following fragment exists.
func (b *builder) addPendingEpsilon() StateID {
	return b.add(State{Kind: KindEpsilon, Out1: InvalidState})
}

func (b *builder) patch(id, target StateID) {
	b.states[id].Out1 = target
}

// build compiles one AST node into a fragment, recursively compiling its
// children first (Thompson's construction is bottom-up).
func (b *builder) build(n ast.Node) fragment {
	switch v := n.(type) {
	case ast.Char:
		exit := b.addPendingEpsilon()
		entry := b.add(State{Kind: KindSymbol, Pred: v.Pred, Out1: exit})
		return fragment{entry, exit}

	case ast.Empty:
		id := b.addPendingEpsilon()
		return fragment{entry: id, exit: id}

	case ast.Concat:
		left := b.build(v.Left)
		right := b.build(v.Right)
		b.patch(left.exit, right.entry)
		return fragment{entry: left.entry, exit: right.exit}

	case ast.Alt:
		left := b.build(v.Left)
		right := b.build(v.Right)
		exit := b.addPendingEpsilon()
		b.patch(left.exit, exit)
		b.patch(right.exit, exit)
		entry := b.add(State{Kind: KindSplit, Out1: left.entry, Out2: right.entry})
		return fragment{entry, exit}

	case ast.Star:
		child := b.build(v.Child)
		exit := b.addPendingEpsilon()
		split := b.add(State{Kind: KindSplit, Out1: child.entry, Out2: exit})
		b.patch(child.exit, split)
		return fragment{entry: split, exit: exit}

	case ast.Plus:
		child := b.build(v.Child)
		exit := b.addPendingEpsilon()
		split := b.add(State{Kind: KindSplit, Out1: child.entry, Out2: exit})
		b.patch(child.exit, split)
		return fragment{entry: child.entry, exit: exit}

	case ast.Question:
		child := b.build(v.Child)
		exit := b.addPendingEpsilon()
		split := b.add(State{Kind: KindSplit, Out1: child.entry, Out2: exit})
		b.patch(child.exit, exit)
		return fragment{entry: split, exit: exit}

	case ast.Group:
		// Transparent: the group contributes no states of its own.
		return b.build(v.Child)

	case ast.AnchorStart:
		exit := b.addPendingEpsilon()
		entry := b.add(State{Kind: KindAnchorStart, Out1: exit})
		return fragment{entry, exit}

	case ast.AnchorEnd:
		exit := b.addPendingEpsilon()
		entry := b.add(State{Kind: KindAnchorEnd, Out1: exit})
		return fragment{entry, exit}

	default:
		// ast.Node is a closed set of the ten kinds in package ast; reaching
		// here means a new kind was added there without a case here.
		panic("nfa: unhandled ast node kind")
	}
}

// compile runs Thompson's construction over root, producing a complete NFA
// with a unique Start and Accept state: Start is the top fragment's entry,
// Accept is a fresh match state wired to the top fragment's exit.
func compile(root ast.Node) *NFA {
	b := newBuilder()
	frag := b.build(root)
	accept := b.add(State{Kind: KindMatch})
	b.patch(frag.exit, accept)

	return &NFA{
		States: b.states,
		Start:  frag.entry,
		Accept: accept,
	}
}
