// Package cpufeat exposes the handful of CPU feature flags the prefilter
// package consults to pick a scan strategy, following the teacher's
// simd package convention of a package-level flag set once at init from
// golang.org/x/sys/cpu and consulted at call sites rather than re-probed
// every search.
package cpufeat

// HasAVX2 reports whether the CPU supports AVX2 (amd64 only; always false
// elsewhere). The prefilter package uses it only to decide the shortest
// literal length worth building a separate scan pass for; either choice
// produces identical match results, so this is purely a throughput choice,
// not a dependency of correctness.
func HasAVX2() bool { return hasAVX2 }
