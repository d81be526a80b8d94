package optree

import "github.com/katalvlaran/factortree/tensor"

// NamedChild pairs a template placeholder name (e.g. "@child_data") with
// the externally supplied Node it resolves to inside a Combined operator's
// materialised sub-expression.
type NamedChild struct {
	Name string
	Node Node
}

// CombinedNode is a macro node whose body is itself a sub-expression built
// from other operators, parameterised at construction. The treebuilder package
// is responsible for materialising that sub-expression (substituting
// {param} tokens, then recursively building with an OpExprMap seeded by
// NamedChildren) and calling SetDelegate with the resulting root.
//
// Once SetDelegate has run, CombinedNode.Buffer() is the *same storage* as
// the delegate's buffer (no copy), and GetResult simply forwards to the
// delegate.
type CombinedNode struct {
	base
	namedChildren []NamedChild
	delegate      Node
	expr          string
}

// NewCombinedNode constructs a Combined node with its named children
// recorded, before the inner sub-expression has been built. expr is the
// (pre-substitution) canonical expression used for diagnostics until
// SetDelegate attaches the materialised inner root.
func NewCombinedNode(opID OperatorID, initArgs InitArgs, namedChildren []NamedChild, expr string) *CombinedNode {
	return &CombinedNode{
		base:          newBase(opID, initArgs),
		namedChildren: namedChildren,
		expr:          expr,
	}
}

// NamedChildren returns the node's declared named children in declaration order.
func (n *CombinedNode) NamedChildren() []NamedChild { return n.namedChildren }

// NamedChild looks up a single named child by its template placeholder name.
func (n *CombinedNode) NamedChild(name string) (Node, bool) {
	for _, nc := range n.namedChildren {
		if nc.Name == name {
			return nc.Node, true
		}
	}

	return nil, false
}

// SetDelegate attaches the materialised inner sub-expression's root and
// aliases this node's buffer to the delegate's storage. Must be called
// exactly once, by the builder, before this node is ever pulled.
func (n *CombinedNode) SetDelegate(delegate Node) {
	n.delegate = delegate
	n.aliasBuffer(delegate.CurrentIdx(), delegate.Buffer())
}

// Delegate returns the inner sub-expression's root node.
func (n *CombinedNode) Delegate() Node { return n.delegate }

// Kind implements Node.
func (n *CombinedNode) Kind() NodeKind { return KindCombined }

// Children implements Node: named children in declaration order, then the
// inner delegate, matching the checkpoint and day-broadcast traversal order.
func (n *CombinedNode) Children() []Node {
	out := make([]Node, 0, len(n.namedChildren)+1)
	for _, nc := range n.namedChildren {
		out = append(out, nc.Node)
	}
	if n.delegate != nil {
		out = append(out, n.delegate)
	}

	return out
}

// GetResult implements Node by forwarding to the delegate; a Combined node
// requires no special handling in the evaluator beyond this.
func (n *CombinedNode) GetResult(req RequestIdx) (tensor.Tensor, error) {
	out, err := n.delegate.GetResult(req)
	if err != nil {
		return nil, err
	}
	n.currentIdx = n.delegate.CurrentIdx()

	return out, nil
}

// String implements Node.
func (n *CombinedNode) String() string { return n.expr }
