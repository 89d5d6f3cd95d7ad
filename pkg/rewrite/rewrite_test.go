package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsNoMatch(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	calls := 0
	out := Elements(seq, func(int) ([]int, bool) {
		calls++
		return nil, false
	})

	assert.Equal(t, []int{1, 2, 3, 4}, out)
	assert.Equal(t, 4, calls)
	// no staging buffer: the input backing array is returned untouched
	assert.True(t, &out[0] == &seq[0])
}

func TestElementsReplaceOne(t *testing.T) {
	out := Elements([]int{1, 2, 3, 4}, func(e int) ([]int, bool) {
		if e == 3 {
			return []int{30, 31}, true
		}
		return nil, false
	})
	assert.Equal(t, []int{1, 2, 30, 31, 4}, out)
}

func TestElementsReplaceFirst(t *testing.T) {
	out := Elements([]int{1, 2, 3}, func(e int) ([]int, bool) {
		if e == 1 {
			return []int{10, 11}, true
		}
		return nil, false
	})
	assert.Equal(t, []int{10, 11, 2, 3}, out)
}

func TestElementsDelete(t *testing.T) {
	out := Elements([]int{1, 2, 3, 4}, func(e int) ([]int, bool) {
		if e%2 == 0 {
			return nil, true
		}
		return nil, false
	})
	assert.Equal(t, []int{1, 3}, out)
}

func TestElementsDeleteAll(t *testing.T) {
	out := Elements([]int{1, 2}, func(int) ([]int, bool) { return nil, true })
	assert.Empty(t, out)
}

func TestElementsRuleSeesEachOriginalOnce(t *testing.T) {
	var seen []int
	out := Elements([]int{1, 2, 3}, func(e int) ([]int, bool) {
		seen = append(seen, e)
		return []int{e, e}, true
	})

	// replacement elements are never offered back to the rule
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, out)
}

func TestWindowsNoMatch(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	var windows [][]int
	out := Windows(seq, 2, func(w []int) ([]int, bool) {
		windows = append(windows, append([]int(nil), w...))
		return nil, false
	})

	assert.Equal(t, seq, out)
	assert.True(t, &out[0] == &seq[0])
	// the search window slides by one, overlapping its predecessor
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}}, windows)
}

func TestWindowsMergeAndResync(t *testing.T) {
	seq := []int{10, 20, 30, 40, 50}
	var windows [][]int
	out := Windows(seq, 2, func(w []int) ([]int, bool) {
		windows = append(windows, append([]int(nil), w...))
		if w[0] == 20 && w[1] == 30 {
			return []int{99}, true
		}
		return nil, false
	})

	assert.Equal(t, []int{10, 99, 40, 50}, out)
	// the fired window is consumed whole; the scan resumes after it
	assert.Equal(t, [][]int{{10, 20}, {20, 30}, {40, 50}}, windows)
}

func TestWindowsOverlapThenResync(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	var windows [][]int
	out := Windows(seq, 2, func(w []int) ([]int, bool) {
		windows = append(windows, append([]int(nil), w...))
		if w[0] == 2 {
			return []int{-2}, true
		}
		return nil, false
	})

	// [1,2] misses; [2,3] fires and consumes both elements; the lone
	// trailing 4 no longer forms a window and is copied through.
	assert.Equal(t, []int{1, -2, 4}, out)
	assert.Equal(t, [][]int{{1, 2}, {2, 3}}, windows)
}

func TestWindowsDropAtStart(t *testing.T) {
	out := Windows([]int{1, 2, 3, 4, 5}, 3, func(w []int) ([]int, bool) {
		if w[0] == 1 {
			return []int{}, true
		}
		return nil, false
	})
	assert.Equal(t, []int{4, 5}, out)
}

func TestWindowsSizeOne(t *testing.T) {
	out := Windows([]int{1, 2, 3}, 1, func(w []int) ([]int, bool) {
		if w[0] == 2 {
			return []int{20, 21}, true
		}
		return nil, false
	})
	assert.Equal(t, []int{1, 20, 21, 3}, out)
}

func TestWindowsWiderThanSequence(t *testing.T) {
	seq := []int{1, 2}
	calls := 0
	out := Windows(seq, 3, func([]int) ([]int, bool) {
		calls++
		return nil, true
	})

	assert.Zero(t, calls)
	assert.Equal(t, seq, out)
	assert.True(t, &out[0] == &seq[0])
}

func TestWindowsBadSize(t *testing.T) {
	assert.Panics(t, func() {
		Windows([]int{1}, 0, func([]int) ([]int, bool) { return nil, false })
	})
}

type op struct {
	name string
	arg  int
}

func TestWindowsPeephole(t *testing.T) {
	// push x directly followed by pop cancels out
	prog := []op{{"push", 1}, {"push", 2}, {"pop", 0}, {"add", 0}}
	out := Windows(prog, 2, func(w []op) ([]op, bool) {
		if w[0].name == "push" && w[1].name == "pop" {
			return []op{}, true
		}
		return nil, false
	})

	require.Equal(t, []op{{"push", 1}, {"add", 0}}, out)
}
