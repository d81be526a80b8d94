package tensor

import (
	"errors"
	"math"
)

// Sentinel errors for tensor-shape validation.
var (
	// ErrLengthMismatch indicates two tensors (or a tensor and a requested
	// length) do not agree on their lane count.
	ErrLengthMismatch = errors.New("tensor: length mismatch")

	// ErrNilTensor indicates a nil Tensor was passed where a populated one
	// was required.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// Tensor is a dense vector of f64, one value per instrument. Length is fixed
// for the life of the tensor; callers never append or truncate it.
type Tensor []float64

// New allocates a Tensor of the given length, every lane set to NaN.
//
// Complexity: O(n) time, O(n) space.
func New(n int) Tensor {
	t := make(Tensor, n)
	for i := range t {
		t[i] = math.NaN()
	}

	return t
}

// Len returns the number of lanes (equal to nstock for any tensor produced
// within a single tree).
func (t Tensor) Len() int {
	return len(t)
}

// Clone returns an independent copy of t.
//
// Complexity: O(n).
func (t Tensor) Clone() Tensor {
	out := make(Tensor, len(t))
	copy(out, t)

	return out
}

// CopyFrom overwrites t's lanes with src's, in place. Both tensors must have
// the same length; otherwise ErrLengthMismatch is returned and t is left
// untouched.
//
// Complexity: O(n).
func (t Tensor) CopyFrom(src Tensor) error {
	if len(src) != len(t) {
		return ErrLengthMismatch
	}
	copy(t, src)

	return nil
}

// Fill sets every lane of t to v.
func (t Tensor) Fill(v float64) {
	for i := range t {
		t[i] = v
	}
}

// FillNaN resets every lane of t to NaN, the "not yet computable" sentinel.
func (t Tensor) FillNaN() {
	t.Fill(math.NaN())
}

// AnyNaN reports whether any lane of t is NaN.
func (t Tensor) AnyNaN() bool {
	for _, v := range t {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// Equal reports whether a and b have the same length and, lane by lane,
// either identical values or both NaN (NaN == NaN under this comparison,
// matching the checkpoint round-trip testable property of the evaluator).
func Equal(a, b Tensor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		av, bv := a[i], b[i]
		if math.IsNaN(av) && math.IsNaN(bv) {
			continue
		}
		if av != bv {
			return false
		}
	}

	return true
}
