package optree

import "github.com/katalvlaran/factortree/tensor"

// UnaryKernel is the plain-value computation a Unary node wraps. Update
// must write exactly len(out) values, advance any internal rolling state
// by one tick, and never read sibling outputs.
type UnaryKernel interface {
	Update(in tensor.Tensor, out tensor.Tensor)
}

// BinaryKernel is the plain-value computation a Binary node wraps.
type BinaryKernel interface {
	Update(left, right tensor.Tensor, out tensor.Tensor)
}

// DayAware is implemented by kernels whose semantics reset at day
// boundaries (intraday rolling windows). Kernels that don't need this
// simply don't implement it; the node wrapper no-ops in that case.
type DayAware interface {
	OnDayBegin()
	OnDayEnd()
}

// StatefulKernel is implemented by kernels carrying rolling state that must
// survive a checkpoint (window buffers, running moments, counters).
// Kernels without persistent state don't implement it.
type StatefulKernel interface {
	SaveState(w StateWriter) error
	LoadState(r StateReader) error
}
