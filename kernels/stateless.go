package kernels

import "github.com/katalvlaran/factortree/tensor"

// identityKernel passes its single input through unchanged. It backs the
// "identity" operator used for plain field passthrough.
type identityKernel struct{}

func (identityKernel) Update(in, out tensor.Tensor) { tensor.EwCopy(in, out) }

// addKernel computes out[i] = left[i] + right[i].
type addKernel struct{}

func (addKernel) Update(left, right, out tensor.Tensor) { tensor.EwAdd(left, right, out) }

// subtractKernel computes out[i] = left[i] - right[i].
type subtractKernel struct{}

func (subtractKernel) Update(left, right, out tensor.Tensor) { tensor.EwSub(left, right, out) }

// multiplyKernel computes out[i] = left[i] * right[i].
type multiplyKernel struct{}

func (multiplyKernel) Update(left, right, out tensor.Tensor) { tensor.EwMul(left, right, out) }

// divideKernel computes out[i] = left[i] / right[i]; division by zero
// follows IEEE-754 (±Inf or NaN), not an error.
type divideKernel struct{}

func (divideKernel) Update(left, right, out tensor.Tensor) { tensor.EwDiv(left, right, out) }
