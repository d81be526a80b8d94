package optree

import "github.com/katalvlaran/factortree/tensor"

// UnaryNode wraps a one-child kernel K behind the shared Unary pull logic:
// memoise on repeat requests, otherwise pull the child, invoke the kernel,
// and commit. K is a plain value (not a pointer receiver is fine too); the
// node owns it and never copies it mid-tree.
type UnaryNode[K UnaryKernel] struct {
	base
	child  Node
	kernel K
	expr   string // canonical expression string, for String()
}

// NewUnaryNode constructs a Unary node over child, running kernel at each tick.
func NewUnaryNode[K UnaryKernel](opID OperatorID, initArgs InitArgs, child Node, kernel K, expr string) *UnaryNode[K] {
	return &UnaryNode[K]{
		base:   newBase(opID, initArgs),
		child:  child,
		kernel: kernel,
		expr:   expr,
	}
}

// Kind implements Node.
func (n *UnaryNode[K]) Kind() NodeKind { return KindUnary }

// Children implements Node.
func (n *UnaryNode[K]) Children() []Node { return []Node{n.child} }

// Kernel returns the wrapped kernel value (for tests that assert on a
// kernel's invocation count or internal state).
func (n *UnaryNode[K]) Kernel() K { return n.kernel }

// GetResult implements Node's demand-pull protocol for a one-child node.
func (n *UnaryNode[K]) GetResult(req RequestIdx) (tensor.Tensor, error) {
	hit, err := n.checkTick(req)
	if err != nil {
		return nil, err
	}
	if hit {
		return n.buffer, nil
	}

	in, err := n.child.GetResult(req)
	if err != nil {
		return nil, err
	}

	n.kernel.Update(in, n.buffer)
	n.commit(req)

	return n.buffer, nil
}

// OnDayBegin implements Node: resets this node's own kernel state, if the
// kernel is DayAware. It does not recurse into children — day-boundary
// broadcast across the whole (possibly shared) DAG is orchestrated once,
// per unique node, by BroadcastDayBegin (see walk.go); a node recursing on
// its own would re-run a shared child's reset once per parent.
func (n *UnaryNode[K]) OnDayBegin() {
	if da, ok := any(n.kernel).(DayAware); ok {
		da.OnDayBegin()
	}
}

// OnDayEnd implements Node. See OnDayBegin for why this does not recurse.
func (n *UnaryNode[K]) OnDayEnd() {
	if da, ok := any(n.kernel).(DayAware); ok {
		da.OnDayEnd()
	}
}

// HasCheckpointState implements Node.
func (n *UnaryNode[K]) HasCheckpointState() bool {
	_, ok := any(n.kernel).(StatefulKernel)

	return ok
}

// SaveState implements Node.
func (n *UnaryNode[K]) SaveState(w StateWriter) error {
	if sk, ok := any(n.kernel).(StatefulKernel); ok {
		return sk.SaveState(w)
	}

	return nil
}

// LoadState implements Node.
func (n *UnaryNode[K]) LoadState(r StateReader) error {
	if sk, ok := any(n.kernel).(StatefulKernel); ok {
		return sk.LoadState(r)
	}

	return nil
}

// String implements Node.
func (n *UnaryNode[K]) String() string { return n.expr }
