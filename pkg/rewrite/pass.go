package rewrite

import (
	"github.com/eigerco/bramble/pkg/log"
)

// Pass is a named rewrite over a whole sequence, the unit an external
// driver schedules and reports on.
type Pass[T any] struct {
	Name string
	Run  func([]T) []T
}

// NewPass wraps a single-element rule as a named pass.
func NewPass[T any](name string, rule Rule[T]) Pass[T] {
	return Pass[T]{Name: name, Run: func(seq []T) []T {
		return Elements(seq, rule)
	}}
}

// NewWindowPass wraps an n-element window rule as a named pass.
func NewWindowPass[T any](name string, n int, rule WindowRule[T]) Pass[T] {
	return Pass[T]{Name: name, Run: func(seq []T) []T {
		return Windows(seq, n, rule)
	}}
}

// Apply runs the passes in order, feeding each the output of the previous
// one, and logs what every pass did at debug level.
func Apply[T any](seq []T, passes ...Pass[T]) []T {
	for _, p := range passes {
		before := len(seq)
		next := p.Run(seq)
		log.Rewrite.Debug().
			Str("pass", p.Name).
			Int("before", before).
			Int("after", len(next)).
			Bool("changed", changed(seq, next)).
			Msg("pass applied")
		seq = next
	}
	return seq
}

func changed[T any](a, b []T) bool {
	if len(a) != len(b) {
		return true
	}
	if len(a) == 0 {
		return false
	}
	return &a[0] != &b[0]
}
