package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/factortree/tensor"
)

func TestCsDemean(t *testing.T) {
	in := tensor.Tensor{1, 2, 3}
	out := tensor.New(3)
	csDemeanKernel{}.Update(in, out)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, []float64(out), 1e-9)
}

func TestCsRank(t *testing.T) {
	in := tensor.Tensor{30, 10, 20}
	out := tensor.New(3)
	csRankKernel{}.Update(in, out)
	// ranks: 30 highest, 10 lowest, 20 middle.
	assert.InDelta(t, 1.0, out[0], 1e-9)
	assert.InDelta(t, 0.0, out[1], 1e-9)
	assert.InDelta(t, 0.5, out[2], 1e-9)
}
