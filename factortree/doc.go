// Package factortree is the public facade over the expression compiler and
// incremental operator DAG evaluator: parse an expression, build its DAG
// against the builtin operator registry, drive ticks through Update, and
// checkpoint the tree's rolling state to disk.
//
//	tree := factortree.New(optree.InitArgs{Nstock: 3})
//	if err := tree.CreateTree("ts_mean(@x, 3)"); err != nil { ... }
//	out, err := tree.Update(map[string]tensor.Tensor{"x": {1, 2, 3}})
//
// A Tree is not safe for concurrent Update calls; independent Trees are
// independent. See optree for the node/kernel model this wraps.
package factortree
