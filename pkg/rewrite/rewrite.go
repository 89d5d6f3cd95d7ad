// Package rewrite provides generic conditional rewriting of ordered
// element sequences. It is the engine concrete optimizer passes plug
// into: a pass supplies a rule, the package handles scanning, staging and
// copy avoidance.
package rewrite

// Rule decides the fate of one element: return (replacement, true) to
// substitute an ordered run of zero or more elements, or (nil, false) to
// keep the element as is. Rules must not retain references into the
// scanned sequence; once any rule has fired, earlier elements may already
// have been moved into the staging output.
type Rule[T any] func(elem T) (replacement []T, ok bool)

// Elements scans seq left to right, invoking rule exactly once per
// element, and returns the rewritten sequence. Relative order is
// preserved: the result interleaves kept elements with each replacement
// run in scan order. If no invocation fires, no staging buffer is
// allocated and seq itself is returned unchanged.
func Elements[T any](seq []T, rule Rule[T]) []T {
	var out []T
	modified := false
	for i, elem := range seq {
		if r, ok := rule(elem); ok {
			if !modified {
				// One-time catch-up of everything scanned so far.
				out = make([]T, 0, len(seq))
				out = append(out, seq[:i]...)
				modified = true
			}
			out = append(out, r...)
		} else if modified {
			out = append(out, elem)
		}
	}
	if !modified {
		return seq
	}
	return out
}

// WindowRule decides the fate of n consecutive elements. The window slice
// aliases the scanned sequence and must not be retained or mutated.
type WindowRule[T any] func(window []T) (replacement []T, ok bool)

// Windows scans seq with a sliding window of n elements. A window that
// does not fire advances the scan by one, so consecutive windows overlap
// while searching. A window that fires is consumed whole: its replacement
// is appended and the next window starts after the consumed elements, so
// they are never re-examined. A tail shorter than n is copied through
// unchanged. As with Elements, an unmodified seq is returned as is with
// no allocation. n must be at least 1.
func Windows[T any](seq []T, n int, rule WindowRule[T]) []T {
	if n < 1 {
		panic("rewrite: window size must be at least 1")
	}
	var out []T
	modified := false
	i := 0
	for ; i+n <= len(seq); i++ {
		if r, ok := rule(seq[i : i+n]); ok {
			if !modified {
				out = make([]T, 0, len(seq))
				out = append(out, seq[:i]...)
				modified = true
			}
			out = append(out, r...)
			i += n - 1
		} else if modified {
			out = append(out, seq[i])
		}
	}
	if !modified {
		return seq
	}
	return append(out, seq[i:]...)
}
