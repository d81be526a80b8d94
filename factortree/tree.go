package factortree

import (
	"github.com/katalvlaran/factortree/checkpoint"
	"github.com/katalvlaran/factortree/exprlang"
	"github.com/katalvlaran/factortree/kernels"
	"github.com/katalvlaran/factortree/optree"
	"github.com/katalvlaran/factortree/registry"
	"github.com/katalvlaran/factortree/tensor"
	"github.com/katalvlaran/factortree/treebuilder"
)

// Tree is the public facade: one registry-backed expression DAG, one
// monotone tick counter, rebuildable on demand via CreateTree.
type Tree struct {
	initArgs optree.InitArgs
	registry *registry.Registry

	root       optree.Node
	expr       string
	dataNodes  map[string]*optree.DataNode
	requestIdx optree.RequestIdx
}

// New returns an empty Tree configured with initArgs and the builtin
// operator registry populated once, deterministically.
func New(initArgs optree.InitArgs) *Tree {
	reg := registry.New()
	// RegisterBuiltins only fails on a duplicate or nil factory, both
	// programmer errors in the fixed builtin table; a fresh registry can
	// never hit either, so the error is asserted away rather than
	// threaded through New's signature.
	if err := kernels.RegisterBuiltins(reg); err != nil {
		panic(treeErrorf("New", err))
	}

	return &Tree{
		initArgs: initArgs,
		registry: reg,
	}
}

// CreateTree parses expression, builds its DAG against the builtin
// registry, and installs it as the tree's current root, idempotently
// replacing any prior tree. The tick counter resets to 0.
func (t *Tree) CreateTree(expression string) error {
	parsed, err := exprlang.Parse(expression)
	if err != nil {
		return treeErrorf("CreateTree", err)
	}

	root, err := treebuilder.Build(parsed, t.registry, t.initArgs)
	if err != nil {
		return treeErrorf("CreateTree", err)
	}

	dataNodes := make(map[string]*optree.DataNode)
	for _, n := range optree.CollectUnique(root) {
		if d, ok := n.(*optree.DataNode); ok {
			dataNodes[d.Field()] = d
		}
	}

	t.root = root
	t.expr = root.String()
	t.dataNodes = dataNodes
	t.requestIdx = 0

	return nil
}

// Update advances the tree by one tick: installs each supplied field's
// vector into its Data node, then pulls the root. Fields the expression
// doesn't reference are silently ignored; fields the expression references
// but fieldMap omits keep whatever their Data node last held (NaN if never
// supplied). The returned Tensor is a view into the root's buffer, valid
// until the next Update.
func (t *Tree) Update(fieldMap map[string]tensor.Tensor) (tensor.Tensor, error) {
	if t.root == nil {
		return nil, treeErrorf("Update", ErrNoTree)
	}

	next := t.requestIdx + 1
	for field, vec := range fieldMap {
		node, ok := t.dataNodes[field]
		if !ok {
			continue
		}
		if err := node.SetInput(next, vec); err != nil {
			return nil, treeErrorf("Update", err)
		}
	}

	out, err := t.root.GetResult(next)
	if err != nil {
		return nil, treeErrorf("Update", err)
	}
	t.requestIdx = next

	return out, nil
}

// OnDayBegin broadcasts the day-begin hook to every unique node, exactly
// once, resetting any intraday rolling state. Must be called between
// ticks, never during one.
func (t *Tree) OnDayBegin() error {
	if t.root == nil {
		return treeErrorf("OnDayBegin", ErrNoTree)
	}
	optree.BroadcastDayBegin(t.root)

	return nil
}

// OnDayEnd broadcasts the day-end hook to every unique node, exactly once.
func (t *Tree) OnDayEnd() error {
	if t.root == nil {
		return treeErrorf("OnDayEnd", ErrNoTree)
	}
	optree.BroadcastDayEnd(t.root)

	return nil
}

// SaveCheckpoint writes the tree's current rolling state to path.
func (t *Tree) SaveCheckpoint(path string) error {
	if t.root == nil {
		return treeErrorf("SaveCheckpoint", ErrNoTree)
	}

	return checkpoint.Save(path, t.root)
}

// LoadCheckpoint restores rolling state from path into the current tree.
// Must be called after CreateTree with the identical expression that
// produced the checkpoint; a structural mismatch surfaces as a
// *checkpoint.CheckpointError.
func (t *Tree) LoadCheckpoint(path string) error {
	if t.root == nil {
		return treeErrorf("LoadCheckpoint", ErrNoTree)
	}

	return checkpoint.Load(path, t.root)
}

// String returns the tree's canonical expression, or "" if no tree has
// been built yet.
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}

	return t.expr
}
