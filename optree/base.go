package optree

import "github.com/katalvlaran/factortree/tensor"

// base holds the attributes every node kind shares: its identity, the
// tree-wide configuration, and its cached output. Node kinds embed base and
// implement the remaining Node methods themselves.
//
// base deliberately does not implement GetResult: the memoisation and
// tick-gap assertion differ only in how children are pulled (none, one,
// two, or delegate), so each wrapper implements GetResult itself, calling
// the shared helper checkTick to apply the common invariant check.
type base struct {
	opID       OperatorID
	initArgs   InitArgs
	buffer     tensor.Tensor
	currentIdx RequestIdx
}

func newBase(opID OperatorID, initArgs InitArgs) base {
	return base{
		opID:     opID,
		initArgs: initArgs,
		buffer:   tensor.New(initArgs.Nstock),
	}
}

// OpID implements Node.
func (b *base) OpID() OperatorID { return b.opID }

// Buffer implements Node.
func (b *base) Buffer() tensor.Tensor { return b.buffer }

// CurrentIdx implements Node.
func (b *base) CurrentIdx() RequestIdx { return b.currentIdx }

// InitArgs returns the tree-wide configuration this node was built with.
func (b *base) InitArgs() InitArgs { return b.initArgs }

// checkTick applies the tick-gap invariant for non-Data, non-Constant
// nodes: a request must either repeat the cached index (memoisation hit,
// reported via the bool) or be exactly one past it.
func (b *base) checkTick(req RequestIdx) (hit bool, err error) {
	if b.currentIdx == req {
		return true, nil
	}
	if req != b.currentIdx+1 {
		return false, ErrStaleRequest
	}

	return false, nil
}

// commit records that this node's buffer now holds the result for req.
func (b *base) commit(req RequestIdx) { b.currentIdx = req }

// aliasBuffer rebinds this node's buffer to shared storage (used only by
// Combined, to alias its inner delegate's buffer) and marks it current as
// of idx.
func (b *base) aliasBuffer(idx RequestIdx, buf tensor.Tensor) {
	b.currentIdx = idx
	b.buffer = buf
}

// HasCheckpointState default: false. Data, Constant and Combined nodes use
// it as is; Unary and Binary override it.
func (b *base) HasCheckpointState() bool { return false }

// SaveState default no-op; stateless node kinds and stateless kernels rely
// on this.
func (b *base) SaveState(StateWriter) error { return nil }

// LoadState default no-op.
func (b *base) LoadState(StateReader) error { return nil }

// OnDayBegin default no-op; overridden by stateful wrappers.
func (b *base) OnDayBegin() {}

// OnDayEnd default no-op; overridden by stateful wrappers.
func (b *base) OnDayEnd() {}
