// Package byterex compiles a byte-level regular expression into an
// executable recognizer and reports whether, and where, it matches.
//
// In scope: a recursive-descent parser producing an AST, Thompson
// construction of an NFA, subset construction of a DFA, and simulators for
// both honoring ^ and $ anchors and leftmost-longest semantics. Out of
// scope: capturing groups, backreferences, lookaround, Unicode character
// classes, {m,n} quantifiers. See cmd/bytegrep for a CLI collaborator built
// on this package's public surface.
//
// Basic usage:
//
//	re, err := byterex.Compile(`a(b|c)*d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Match([]byte("abbcd")) {
//	    fmt.Println("matched")
//	}
package byterex

import (
	"github.com/vance-dev/byterex/ast"
	"github.com/vance-dev/byterex/dfa"
	"github.com/vance-dev/byterex/errs"
	"github.com/vance-dev/byterex/match"
	"github.com/vance-dev/byterex/nfa"
	"github.com/vance-dev/byterex/parser"
	"github.com/vance-dev/byterex/prefilter"
)

// CompileError is the error type returned by Compile: it reports the
// byte offset in the pattern where compilation failed and why.
type CompileError = errs.CompileError

// MatchResult reports whether a pattern matched and, if so, the half-open
// byte range it matched.
type MatchResult = match.Result

// Regex is a compiled pattern, safe for concurrent use by multiple
// goroutines: Compile and all Regex methods only read shared state.
type Regex struct {
	pattern string
	root    ast.Node
	n       *nfa.NFA
	d       *dfa.DFA // nil when config.Engine == NFA
	pf      prefilter.Prefilter
	hasPf   bool
	config  Config
}

// Compile parses pattern and builds the automaton selected by
// DefaultConfig().Engine. It returns a *CompileError describing the first
// syntax problem encountered, positioned at the offending byte.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error. Intended for patterns
// known to be valid at compile time, e.g. package-level var initializers.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("byterex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern using the given configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	root, err := parser.Parse([]byte(pattern))
	if err != nil {
		return nil, err
	}

	n := nfa.BuildNFA(root)
	if !n.Valid() {
		return nil, errs.New(errs.InternalLimit, len(pattern), "compiled NFA failed structural validation")
	}

	re := &Regex{pattern: pattern, root: root, n: n, config: config}

	if config.Engine == DFA {
		d, err := dfa.Build(n, config.MaxDFAStates)
		if err != nil {
			if ce, ok := err.(*errs.CompileError); ok {
				ce.Position = len(pattern)
			}
			return nil, err
		}
		re.d = d
	}

	if config.EnablePrefilter {
		pf, ok := prefilter.Build(root, config.MaxPrefilterLiterals)
		re.pf = pf
		re.hasPf = ok
	}

	return re, nil
}

// String returns the pattern text the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// find runs the selected engine over input starting no earlier than from,
// consulting the prefilter first (when available) to confirm a required
// literal still occurs somewhere at or after from. The prefilter only
// skips positions that cannot possibly start a match; it never changes
// which match is reported, and anchors are still resolved against the
// true bounds of input, not against from (see nfa.NFA.FindFrom).
func (r *Regex) find(input []byte, from int) match.Result {
	if r.hasPf && r.pf.Find(input, from) == -1 {
		return match.NoMatch
	}
	if r.d != nil {
		return r.d.FindFrom(input, from)
	}
	return r.n.FindFrom(input, from)
}

// Find reports whether input contains a match and, if so, its byte range.
func (r *Regex) Find(input []byte) MatchResult {
	return r.find(input, 0)
}

// Match reports whether input contains any match of the pattern.
func (r *Regex) Match(input []byte) bool {
	return r.find(input, 0).IsMatched()
}

// MatchString is Match for a string argument, avoiding a caller-visible
// []byte conversion.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// FindIndex is Find returning the [start, end) pair stdlib regexp-style,
// or nil if there was no match.
func (r *Regex) FindIndex(input []byte) []int {
	got := r.find(input, 0)
	if !got.IsMatched() {
		return nil
	}
	return []int{got.Start(), got.End()}
}

// FindAllIndex returns the index pairs of every non-overlapping match in
// input, in order, or nil if there are none. Scanning resumes at the end
// of each match; an empty match advances by one byte to guarantee
// termination, matching stdlib regexp's FindAllIndex convention.
func (r *Regex) FindAllIndex(input []byte) [][]int {
	var out [][]int
	pos := 0
	for pos <= len(input) {
		got := r.find(input, pos)
		if !got.IsMatched() {
			break
		}
		start, end := got.Start(), got.End()
		out = append(out, []int{start, end})
		if end == start {
			pos = end + 1
		} else {
			pos = end
		}
	}
	return out
}

// FindAll returns the byte slices of every non-overlapping match in input,
// in order, or nil if there are none.
func (r *Regex) FindAll(input []byte) [][]byte {
	indices := r.FindAllIndex(input)
	if indices == nil {
		return nil
	}
	out := make([][]byte, len(indices))
	for i, pair := range indices {
		out[i] = input[pair[0]:pair[1]]
	}
	return out
}
