package kernels

import "github.com/katalvlaran/factortree/tensor"

// csRankKernel replaces each lane with its fractional cross-sectional rank
// (0..1, ties averaged) among the other lanes of the same tick. It carries
// no rolling state: every tick is independent.
type csRankKernel struct{}

func (csRankKernel) Update(in, out tensor.Tensor) { tensor.Rank(in, out) }

// csDemeanKernel subtracts the cross-sectional mean of the current tick
// from every lane.
type csDemeanKernel struct{}

func (csDemeanKernel) Update(in, out tensor.Tensor) {
	mean, _ := tensor.Mean(in)
	for i := range out {
		out[i] = in[i] - mean
	}
}
