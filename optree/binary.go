package optree

import "github.com/katalvlaran/factortree/tensor"

// BinaryNode wraps a two-child kernel K behind the shared Binary pull
// logic: memoise on repeat requests, otherwise pull both children, invoke
// the kernel, and commit.
type BinaryNode[K BinaryKernel] struct {
	base
	left, right Node
	kernel      K
	expr        string
}

// NewBinaryNode constructs a Binary node over left and right, running kernel each tick.
func NewBinaryNode[K BinaryKernel](opID OperatorID, initArgs InitArgs, left, right Node, kernel K, expr string) *BinaryNode[K] {
	return &BinaryNode[K]{
		base:   newBase(opID, initArgs),
		left:   left,
		right:  right,
		kernel: kernel,
		expr:   expr,
	}
}

// Kind implements Node.
func (n *BinaryNode[K]) Kind() NodeKind { return KindBinary }

// Children implements Node.
func (n *BinaryNode[K]) Children() []Node { return []Node{n.left, n.right} }

// Kernel returns the wrapped kernel value.
func (n *BinaryNode[K]) Kernel() K { return n.kernel }

// GetResult implements Node's demand-pull protocol for a two-child node.
func (n *BinaryNode[K]) GetResult(req RequestIdx) (tensor.Tensor, error) {
	hit, err := n.checkTick(req)
	if err != nil {
		return nil, err
	}
	if hit {
		return n.buffer, nil
	}

	left, err := n.left.GetResult(req)
	if err != nil {
		return nil, err
	}
	right, err := n.right.GetResult(req)
	if err != nil {
		return nil, err
	}

	n.kernel.Update(left, right, n.buffer)
	n.commit(req)

	return n.buffer, nil
}

// OnDayBegin implements Node: resets this node's own kernel state only.
// See UnaryNode.OnDayBegin for why this does not recurse into children.
func (n *BinaryNode[K]) OnDayBegin() {
	if da, ok := any(n.kernel).(DayAware); ok {
		da.OnDayBegin()
	}
}

// OnDayEnd implements Node.
func (n *BinaryNode[K]) OnDayEnd() {
	if da, ok := any(n.kernel).(DayAware); ok {
		da.OnDayEnd()
	}
}

// HasCheckpointState implements Node.
func (n *BinaryNode[K]) HasCheckpointState() bool {
	_, ok := any(n.kernel).(StatefulKernel)

	return ok
}

// SaveState implements Node.
func (n *BinaryNode[K]) SaveState(w StateWriter) error {
	if sk, ok := any(n.kernel).(StatefulKernel); ok {
		return sk.SaveState(w)
	}

	return nil
}

// LoadState implements Node.
func (n *BinaryNode[K]) LoadState(r StateReader) error {
	if sk, ok := any(n.kernel).(StatefulKernel); ok {
		return sk.LoadState(r)
	}

	return nil
}

// String implements Node.
func (n *BinaryNode[K]) String() string { return n.expr }
