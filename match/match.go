// Package match defines the result type shared by the NFA and DFA
// simulators, so the facade can treat either engine's output identically
// (spec §8's engine-agreement property: both engines must report the same
// Result for the same pattern and input).
package match

// Result reports whether a pattern matched, and if so, the half-open byte
// range [Start, End) it matched. When Matched is false, Start and End must
// not be read as valid positions: use Start()/End(), not the zero-value
// fields directly, from outside the package.
type Result struct {
	Matched  bool
	StartPos int
	EndPos   int
}

// NoMatch is the zero-value "did not match" result.
var NoMatch = Result{}

// Found constructs a matched Result for the half-open range [start, end).
func Found(start, end int) Result {
	return Result{Matched: true, StartPos: start, EndPos: end}
}

// IsMatched reports whether the pattern matched.
func (r Result) IsMatched() bool { return r.Matched }

// Start returns the byte offset the match started at, or -1 if there was no
// match.
func (r Result) Start() int {
	if !r.Matched {
		return -1
	}
	return r.StartPos
}

// End returns the byte offset one past the match's last byte, or -1 if
// there was no match.
func (r Result) End() int {
	if !r.Matched {
		return -1
	}
	return r.EndPos
}
