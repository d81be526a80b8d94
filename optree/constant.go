package optree

import (
	"strconv"

	"github.com/katalvlaran/factortree/tensor"
)

// ConstantNode emits a fixed scalar, broadcast to every lane, populated
// once at construction. Its buffer never changes, so GetResult always
// matches regardless of the requested tick.
type ConstantNode struct {
	base
	value float64
}

// NewConstantNode constructs a Constant node broadcasting value to Nstock lanes.
func NewConstantNode(opID OperatorID, initArgs InitArgs, value float64) *ConstantNode {
	n := &ConstantNode{base: newBase(opID, initArgs), value: value}
	n.buffer.Fill(value)

	return n
}

// Value returns the broadcast scalar.
func (n *ConstantNode) Value() float64 { return n.value }

// Kind implements Node.
func (n *ConstantNode) Kind() NodeKind { return KindConstant }

// Children implements Node; Constant nodes are leaves.
func (n *ConstantNode) Children() []Node { return nil }

// GetResult implements Node: the buffer is immutable after construction.
func (n *ConstantNode) GetResult(RequestIdx) (tensor.Tensor, error) {
	return n.buffer, nil
}

// String implements Node.
func (n *ConstantNode) String() string {
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}
