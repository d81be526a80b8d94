package optree

import "github.com/katalvlaran/factortree/tensor"

// DataNode is a leaf holding one tick's raw input column for a named field.
// Its buffer is installed by the tick evaluator (see the factortree
// package) before the root is pulled; GetResult always returns the
// installed tensor without recomputation.
//
// A field that is referenced by an expression but never supplied by the
// caller in any Update call is left at its construction-time value (NaN in
// every lane): unknown-at-build-time fields surface later as NaN-filled
// columns rather than a build error.
type DataNode struct {
	base
	field string
}

// NewDataNode constructs a Data node for the given field name.
func NewDataNode(opID OperatorID, initArgs InitArgs, field string) *DataNode {
	return &DataNode{base: newBase(opID, initArgs), field: field}
}

// Field returns the input field name this node is bound to.
func (n *DataNode) Field() string { return n.field }

// Kind implements Node.
func (n *DataNode) Kind() NodeKind { return KindData }

// Children implements Node; Data nodes are leaves.
func (n *DataNode) Children() []Node { return nil }

// SetInput installs vec as this node's buffer for tick idx, or returns
// ErrShapeMismatch if len(vec) != Nstock. The caller (the tick evaluator)
// guarantees that vec is not mutated again until the tick completes: Data
// nodes store a reference, not a copy.
func (n *DataNode) SetInput(idx RequestIdx, vec tensor.Tensor) error {
	if vec.Len() != n.initArgs.Nstock {
		return ErrShapeMismatch
	}
	n.buffer = vec
	n.currentIdx = idx

	return nil
}

// GetResult implements Node: Data nodes never recompute, they simply
// return whatever was last installed.
func (n *DataNode) GetResult(RequestIdx) (tensor.Tensor, error) {
	return n.buffer, nil
}

// String implements Node.
func (n *DataNode) String() string { return "@" + n.field }
