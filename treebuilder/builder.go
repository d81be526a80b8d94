package treebuilder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/factortree/exprlang"
	"github.com/katalvlaran/factortree/optree"
	"github.com/katalvlaran/factortree/registry"
)

// opCounter assigns monotone optree.OperatorID values in construction
// order, threaded through an entire Build call (including any Combined
// operator's inner expansion).
type opCounter struct{ n optree.OperatorID }

func (c *opCounter) next() optree.OperatorID {
	id := c.n
	c.n++

	return id
}

// opExprMap is the canonical-expression-string → node sharing table. A
// fresh one backs each top-level Build call; Combined expansion seeds it
// temporarily with named-child bindings for the duration of the inner
// build only.
type opExprMap map[string]optree.Node

// Build walks a parsed expression and returns its DAG root, consulting reg
// for every call and sharing any two subexpressions whose canonical form
// coincides.
func Build(e *exprlang.Expr, reg *registry.Registry, initArgs optree.InitArgs) (optree.Node, error) {
	counter := &opCounter{}
	shared := make(opExprMap)

	return build(e, reg, initArgs, counter, shared)
}

func build(e *exprlang.Expr, reg *registry.Registry, initArgs optree.InitArgs, counter *opCounter, shared opExprMap) (optree.Node, error) {
	canon := exprlang.Canonicalize(e)
	if n, ok := shared[canon]; ok {
		return n, nil
	}

	switch e.Kind {
	case exprlang.KindField:
		n := optree.NewDataNode(counter.next(), initArgs, e.Field)
		shared[canon] = n

		return n, nil
	case exprlang.KindInt:
		n := optree.NewConstantNode(counter.next(), initArgs, float64(e.IntVal))
		shared[canon] = n

		return n, nil
	case exprlang.KindDouble:
		n := optree.NewConstantNode(counter.next(), initArgs, e.DblVal)
		shared[canon] = n

		return n, nil
	case exprlang.KindString:
		return nil, builderErrorf(canon, ErrUnknownLiteralArg)
	case exprlang.KindCall:
		return buildCall(e, canon, reg, initArgs, counter, shared)
	default:
		return nil, builderErrorf(canon, ErrUnknownLiteralArg)
	}
}

func buildCall(e *exprlang.Expr, canon string, reg *registry.Registry, initArgs optree.InitArgs, counter *opCounter, shared opExprMap) (optree.Node, error) {
	factory, ok := reg.Lookup(e.Name)
	if !ok {
		return nil, builderErrorf(e.Name, registry.ErrUnknownOperator)
	}
	if len(e.Args) != len(factory.Signature) {
		return nil, builderErrorf(e.Name, registry.ErrArityMismatch)
	}

	args := make([]optree.Arg, len(e.Args))
	for i, argExpr := range e.Args {
		arg, err := buildArg(argExpr, factory.Signature[i], reg, initArgs, counter, shared)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	if factory.IsCombined() {
		return buildCombined(factory, args, canon, reg, initArgs, counter, shared)
	}

	opID := counter.next()
	node, err := factory.New(opID, initArgs, args, canon)
	if err != nil {
		return nil, builderErrorf(e.Name, err)
	}
	shared[canon] = node

	return node, nil
}

func buildArg(argExpr *exprlang.Expr, want optree.ArgType, reg *registry.Registry, initArgs optree.InitArgs, counter *opCounter, shared opExprMap) (optree.Arg, error) {
	switch want {
	case optree.ArgNode:
		child, err := build(argExpr, reg, initArgs, counter, shared)
		if err != nil {
			return optree.Arg{}, err
		}

		return optree.NodeArg(child), nil
	case optree.ArgInt:
		if argExpr.Kind != exprlang.KindInt {
			return optree.Arg{}, builderErrorf("expected integer literal", registry.ErrTypeMismatch)
		}

		return optree.IntArg(argExpr.IntVal), nil
	case optree.ArgDouble:
		if argExpr.Kind != exprlang.KindDouble {
			return optree.Arg{}, builderErrorf("expected double literal", registry.ErrTypeMismatch)
		}

		return optree.DoubleArg(argExpr.DblVal), nil
	case optree.ArgString:
		if argExpr.Kind != exprlang.KindString {
			return optree.Arg{}, builderErrorf("expected string literal", registry.ErrTypeMismatch)
		}

		return optree.StringArg(argExpr.StrVal), nil
	default:
		return optree.Arg{}, builderErrorf("unknown arg type", registry.ErrTypeMismatch)
	}
}

// buildCombined materialises a Combined operator's inner sub-expression:
// substitutes the call's integer parameters into the registered template,
// reparses it, and builds it against shared seeded with "@name" bindings
// for the call's Node-typed arguments, so the template's own field
// references resolve to the caller's nodes instead of new Data nodes.
func buildCombined(factory registry.Factory, args []optree.Arg, canon string, reg *registry.Registry, initArgs optree.InitArgs, counter *opCounter, shared opExprMap) (optree.Node, error) {
	spec := factory.Combined
	template := spec.Template

	var namedChildren []optree.NamedChild
	childIdx, paramIdx := 0, 0
	for i, t := range factory.Signature {
		switch t {
		case optree.ArgNode:
			name := spec.ChildArgNames[childIdx]
			childIdx++
			namedChildren = append(namedChildren, optree.NamedChild{Name: name, Node: args[i].Node()})
		case optree.ArgInt:
			name := spec.ParamArgNames[paramIdx]
			paramIdx++
			template = strings.ReplaceAll(template, "{"+name+"}", strconv.FormatInt(args[i].Int(), 10))
		}
	}

	opID := counter.next()
	combined := optree.NewCombinedNode(opID, initArgs, namedChildren, canon)

	innerExpr, err := exprlang.Parse(template)
	if err != nil {
		return nil, builderErrorf(factory.Name, err)
	}
	if err := checkTemplateFields(innerExpr, namedChildren); err != nil {
		return nil, builderErrorf(factory.Name, err)
	}

	type savedEntry struct {
		val optree.Node
		had bool
	}
	saved := make(map[string]savedEntry, len(namedChildren))
	for _, nc := range namedChildren {
		key := "@" + nc.Name
		old, had := shared[key]
		saved[key] = savedEntry{val: old, had: had}
		shared[key] = nc.Node
	}

	innerRoot, buildErr := build(innerExpr, reg, initArgs, counter, shared)

	for key, se := range saved {
		if se.had {
			shared[key] = se.val
		} else {
			delete(shared, key)
		}
	}

	if buildErr != nil {
		return nil, buildErr
	}

	combined.SetDelegate(innerRoot)
	shared[canon] = combined

	return combined, nil
}

// checkTemplateFields verifies every field reference inside a Combined
// operator's materialised template is among the call's bound named
// children. A template that mentions an unbound "@name" is a registration
// mistake, detected here at build time instead of surfacing as a silently
// NaN-filled Data node on the first tick.
func checkTemplateFields(e *exprlang.Expr, namedChildren []optree.NamedChild) error {
	switch e.Kind {
	case exprlang.KindField:
		for _, nc := range namedChildren {
			if nc.Name == e.Field {
				return nil
			}
		}

		return builderErrorf("@"+e.Field, registry.ErrUnknownField)
	case exprlang.KindCall:
		for _, arg := range e.Args {
			if err := checkTemplateFields(arg, namedChildren); err != nil {
				return err
			}
		}
	}

	return nil
}
