package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factortree/tensor"
)

func TestNewFillsNaN(t *testing.T) {
	tt := tensor.New(4)
	require.Equal(t, 4, tt.Len())
	assert.True(t, tt.AnyNaN())
	for _, v := range tt {
		assert.True(t, math.IsNaN(v))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tt := tensor.Tensor{1, 2, 3}
	clone := tt.Clone()
	clone[0] = 99
	assert.Equal(t, float64(1), tt[0])
	assert.Equal(t, float64(99), clone[0])
}

func TestCopyFromLengthMismatch(t *testing.T) {
	dst := tensor.New(3)
	src := tensor.Tensor{1, 2}
	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, tensor.ErrLengthMismatch)
}

func TestCopyFromOverwritesInPlace(t *testing.T) {
	dst := tensor.New(3)
	src := tensor.Tensor{1, 2, 3}
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, tensor.Tensor{1, 2, 3}, dst)
}

func TestFillAndFillNaN(t *testing.T) {
	tt := tensor.New(3)
	tt.Fill(7)
	assert.Equal(t, tensor.Tensor{7, 7, 7}, tt)
	tt.FillNaN()
	assert.True(t, tt.AnyNaN())
}

func TestEqualTreatsNaNAsEqual(t *testing.T) {
	a := tensor.Tensor{1, math.NaN(), 3}
	b := tensor.Tensor{1, math.NaN(), 3}
	assert.True(t, tensor.Equal(a, b))

	c := tensor.Tensor{1, 2, 3}
	assert.False(t, tensor.Equal(a, c))

	assert.False(t, tensor.Equal(a, tensor.Tensor{1, math.NaN()}))
}

func TestElementwiseOps(t *testing.T) {
	a := tensor.Tensor{1, 2, 3}
	b := tensor.Tensor{10, 20, 30}
	out := tensor.New(3)

	tensor.EwAdd(a, b, out)
	assert.Equal(t, tensor.Tensor{11, 22, 33}, out)

	tensor.EwSub(b, a, out)
	assert.Equal(t, tensor.Tensor{9, 18, 27}, out)

	tensor.EwMul(a, b, out)
	assert.Equal(t, tensor.Tensor{10, 40, 90}, out)

	tensor.EwDiv(b, a, out)
	assert.Equal(t, tensor.Tensor{10, 10, 10}, out)

	tensor.EwCopy(a, out)
	assert.Equal(t, a, out)
}

func TestEwDivByZeroFollowsIEEE754(t *testing.T) {
	a := tensor.Tensor{1, 0, -1}
	b := tensor.Tensor{0, 0, 0}
	out := tensor.New(3)
	tensor.EwDiv(a, b, out)

	assert.True(t, math.IsInf(out[0], 1))
	assert.True(t, math.IsNaN(out[1]))
	assert.True(t, math.IsInf(out[2], -1))
}

func TestMean(t *testing.T) {
	mean, count := tensor.Mean(tensor.Tensor{1, 2, 3})
	assert.Equal(t, 2.0, mean)
	assert.Equal(t, 3, count)

	mean, count = tensor.Mean(tensor.Tensor{1, math.NaN(), 3})
	assert.Equal(t, 2.0, mean)
	assert.Equal(t, 2, count)

	mean, count = tensor.Mean(tensor.Tensor{math.NaN(), math.NaN()})
	assert.True(t, math.IsNaN(mean))
	assert.Equal(t, 0, count)
}

func TestRankTiesAverageAndNaNPropagates(t *testing.T) {
	in := tensor.Tensor{10, 30, 20, 30, math.NaN()}
	out := tensor.New(5)
	tensor.Rank(in, out)

	assert.Equal(t, 0.0, out[0])       // smallest
	assert.Equal(t, 1.0/3.0, out[2])   // middle of 4 finite lanes
	assert.Equal(t, 2.5/3.0, out[1])   // tied for largest, averaged rank
	assert.Equal(t, 2.5/3.0, out[3])
	assert.True(t, math.IsNaN(out[4]))
}

func TestRankSingleFiniteLane(t *testing.T) {
	in := tensor.Tensor{math.NaN(), 5, math.NaN()}
	out := tensor.New(3)
	tensor.Rank(in, out)
	assert.Equal(t, 0.0, out[1])
	assert.True(t, math.IsNaN(out[0]))
}
