// Package tensor defines the dense numeric vector that flows through every
// operator node in a factor tree.
//
// A Tensor is a contiguous []float64 of fixed length nstock (one lane per
// instrument). NaN is the sentinel for "not yet computable" — insufficient
// rolling history, a missing input column, or a propagated upstream NaN.
// Arithmetic on a Tensor propagates NaN lane-by-lane unless an operator
// documents otherwise (see the kernels package).
//
// Tensors are pre-allocated once by their owning node and never resized;
// this keeps the tick-evaluation hot path (see the optree and factortree
// packages) allocation-free, matching the zero-allocation discipline the
// teacher library applies to its Dense matrix fast paths.
package tensor
