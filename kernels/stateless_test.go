package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/factortree/tensor"
)

func TestArithmeticKernels(t *testing.T) {
	left := tensor.Tensor{1, 2, 3}
	right := tensor.Tensor{10, 20, 30}
	out := tensor.New(3)

	addKernel{}.Update(left, right, out)
	assert.Equal(t, []float64{11, 22, 33}, []float64(out))

	subtractKernel{}.Update(left, right, out)
	assert.Equal(t, []float64{-9, -18, -27}, []float64(out))

	multiplyKernel{}.Update(left, right, out)
	assert.Equal(t, []float64{10, 40, 90}, []float64(out))

	divideKernel{}.Update(left, right, out)
	assert.InDeltaSlice(t, []float64{0.1, 0.1, 0.1}, []float64(out), 1e-9)
}

func TestDivideByZeroIsNotAnError(t *testing.T) {
	out := tensor.New(1)
	divideKernel{}.Update(tensor.Tensor{1}, tensor.Tensor{0}, out)
	assert.True(t, math.IsInf(out[0], 1))
}

func TestIdentityKernel(t *testing.T) {
	in := tensor.Tensor{1, 2, 3}
	out := tensor.New(3)
	identityKernel{}.Update(in, out)
	assert.Equal(t, []float64(in), []float64(out))
}
