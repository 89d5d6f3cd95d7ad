package rewrite

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/eigerco/bramble/pkg/log"
)

func TestApplyRunsPassesInOrder(t *testing.T) {
	double := NewPass("double", func(e int) ([]int, bool) {
		return []int{e * 2}, true
	})
	sumPairs := NewWindowPass("sum-pairs", 2, func(w []int) ([]int, bool) {
		return []int{w[0] + w[1]}, true
	})

	out := Apply([]int{1, 2, 3, 4}, double, sumPairs)
	assert.Equal(t, []int{6, 14}, out)
}

func TestApplyNoPasses(t *testing.T) {
	seq := []int{1, 2, 3}
	out := Apply(seq)
	assert.True(t, &out[0] == &seq[0])
}

func TestApplyLogsEachPass(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Rewrite
	log.Rewrite = zerolog.New(&buf)
	defer func() { log.Rewrite = prev }()

	Apply([]int{1, 2},
		NewPass("noop", func(int) ([]int, bool) { return nil, false }),
		NewPass("drop-ones", func(e int) ([]int, bool) { return nil, e == 1 }),
	)

	logged := buf.String()
	assert.Contains(t, logged, `"pass":"noop"`)
	assert.Contains(t, logged, `"changed":false`)
	assert.Contains(t, logged, `"pass":"drop-ones"`)
	assert.Contains(t, logged, `"changed":true`)
}
