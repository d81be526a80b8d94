package registry

import "github.com/katalvlaran/factortree/optree"

// Constructor builds the runtime node from args (the caller has already
// checked arity and per-position types against the owning Factory's
// Signature). opID is pre-assigned by the builder in construction order;
// expr is the canonical expression string for this call, used only for the
// constructed node's String().
type Constructor func(opID optree.OperatorID, initArgs optree.InitArgs, args []optree.Arg, expr string) (optree.Node, error)

// CombinedSpec describes a macro operator whose body is itself a
// sub-expression, materialised from Template by substituting named
// children and integer parameters. The treebuilder package owns the expansion
// logic; this struct only carries the declarative mapping from Signature
// positions to template placeholder names.
type CombinedSpec struct {
	// Template is the canonical inner expression with "{name}" holes for
	// each entry of ParamArgNames, and "@name" field references for each
	// entry of ChildArgNames.
	Template string

	// ChildArgNames maps each ArgNode-typed Signature position, in order,
	// to the field name it binds inside Template (e.g. "x" for "@x").
	ChildArgNames []string

	// ParamArgNames maps each ArgInt-typed Signature position, in order,
	// to the placeholder name it substitutes inside Template (e.g. "n"
	// for "{n}").
	ParamArgNames []string
}

// Factory is one registered operator: its name, its declared argument
// signature, and either a plain Constructor or a CombinedSpec describing
// how to expand it into a sub-expression. Exactly one of New or Combined is
// set.
type Factory struct {
	Name      string
	Signature []optree.ArgType
	New       Constructor
	Combined  *CombinedSpec
}

// IsCombined reports whether this Factory expands to a sub-expression
// rather than constructing a node directly.
func (f Factory) IsCombined() bool { return f.Combined != nil }
