package byterex

import "fmt"

// Engine selects which compiled automaton Regex.Find walks at match time.
type Engine uint8

const (
	// NFA always uses the Thompson-construction frontier simulator. No
	// compile-time determinization cost; match time scales with pattern
	// size per input byte.
	NFA Engine = iota

	// DFA determinizes the NFA eagerly at Compile time and walks a table
	// at match time. Faster matching, bounded by Config.MaxDFAStates.
	DFA
)

func (e Engine) String() string {
	switch e {
	case NFA:
		return "NFA"
	case DFA:
		return "DFA"
	default:
		return "Unknown"
	}
}

// Config controls compilation behavior, following the teacher's
// meta.Config: a flat struct of tunables with a validated, documented
// default.
type Config struct {
	// Engine selects which automaton Find walks. Default: DFA.
	Engine Engine

	// MaxDFAStates caps subset construction when Engine == DFA. Exceeding
	// it surfaces an *errs.CompileError with Kind == errs.InternalLimit;
	// Compile does not silently fall back to NFA. Default: 10000.
	MaxDFAStates int

	// EnablePrefilter turns on literal-scan candidate narrowing ahead of
	// the simulator. Never changes match results, only how many positions
	// the simulator is asked to try. Default: true.
	EnablePrefilter bool

	// MaxPrefilterLiterals bounds the size of a literal alternation worth
	// indexing into a prefilter. Default: 64.
	MaxPrefilterLiterals int
}

// DefaultConfig returns the recommended configuration: DFA engine, a 10,000
// state ceiling, and prefiltering enabled.
func DefaultConfig() Config {
	return Config{
		Engine:               DFA,
		MaxDFAStates:         10000,
		EnablePrefilter:      true,
		MaxPrefilterLiterals: 64,
	}
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("byterex: invalid config field %s: %s", e.Field, e.Message)
}

// Validate reports whether c's fields are in range.
func (c Config) Validate() error {
	if c.Engine == DFA && (c.MaxDFAStates < 1 || c.MaxDFAStates > 1_000_000) {
		return &ConfigError{Field: "MaxDFAStates", Message: "must be between 1 and 1,000,000"}
	}
	if c.EnablePrefilter && (c.MaxPrefilterLiterals < 1 || c.MaxPrefilterLiterals > 10_000) {
		return &ConfigError{Field: "MaxPrefilterLiterals", Message: "must be between 1 and 10,000"}
	}
	return nil
}
