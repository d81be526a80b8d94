package optree

import "github.com/katalvlaran/factortree/tensor"

// StateWriter is the narrow write surface a stateful kernel uses to
// serialize its rolling-window state into a checkpoint. Implementations
// live in the checkpoint package; optree only depends on the interface so
// kernels (and this package) never import checkpoint, avoiding an import
// cycle.
type StateWriter interface {
	WriteUint64(v uint64) error
	WriteInt64(v int64) error
	WriteFloat64(v float64) error
	WriteFloat64Slice(v []float64) error
}

// StateReader is the narrow read surface a stateful kernel uses to restore
// its rolling-window state from a checkpoint.
type StateReader interface {
	ReadUint64() (uint64, error)
	ReadInt64() (int64, error)
	ReadFloat64() (float64, error)
	ReadFloat64Slice(n int) ([]float64, error)
}

// Node is the common runtime interface satisfied by every DAG vertex.
//
// GetResult implements the demand-pull protocol: a node memoises its output
// across repeated calls at the same request index (so a shared
// subexpression with k parents is evaluated exactly once per tick), and
// asserts the tick-gap invariant otherwise.
type Node interface {
	// OpID returns the node's construction-order identifier.
	OpID() OperatorID

	// Kind reports which of the five node shapes this is.
	Kind() NodeKind

	// Buffer returns the node's owned output Tensor. For a Combined node
	// this is aliased to its inner delegate's buffer.
	Buffer() tensor.Tensor

	// CurrentIdx returns the request index of the last tick cached in Buffer.
	CurrentIdx() RequestIdx

	// Children returns this node's child nodes in the declaration order
	// checkpointing and day-boundary broadcast must visit them in. Leaves
	// (Data, Constant) return nil.
	Children() []Node

	// GetResult advances (or returns the memoised result for) request req.
	GetResult(req RequestIdx) (tensor.Tensor, error)

	// OnDayBegin resets any intraday rolling state. Must not touch Buffer
	// or CurrentIdx.
	OnDayBegin()

	// OnDayEnd finalizes any end-of-day bookkeeping. Must not touch Buffer
	// or CurrentIdx.
	OnDayEnd()

	// HasCheckpointState reports whether SaveState/LoadState write a
	// non-trivial block. Data and Constant nodes return false.
	HasCheckpointState() bool

	// SaveState serializes this node's own rolling state (not its
	// children's) into w.
	SaveState(w StateWriter) error

	// LoadState restores this node's own rolling state (not its
	// children's) from r.
	LoadState(r StateReader) error

	// String renders the node's canonical sub-expression, used for tree
	// diagnostics and as a checkpoint-compatibility hint.
	String() string
}
