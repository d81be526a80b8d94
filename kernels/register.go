package kernels

import (
	"github.com/katalvlaran/factortree/optree"
	"github.com/katalvlaran/factortree/registry"
)

// RegisterBuiltins populates r with every kernel this package provides.
// Registration is eager and deterministic, called once at tree-engine
// startup (see factortree.New) so that an unknown operator is detected at
// build time rather than on the first tick.
func RegisterBuiltins(r *registry.Registry) error {
	unaries := []registry.Factory{
		{
			Name:      "identity",
			Signature: []optree.ArgType{optree.ArgNode},
			New:       buildUnary(identityKernel{}),
		},
		{
			Name:      "cs_rank",
			Signature: []optree.ArgType{optree.ArgNode},
			New:       buildUnary(csRankKernel{}),
		},
		{
			Name:      "cs_demean",
			Signature: []optree.ArgType{optree.ArgNode},
			New:       buildUnary(csDemeanKernel{}),
		},
	}
	for _, f := range unaries {
		if err := r.Register(f); err != nil {
			return err
		}
	}

	binaries := []registry.Factory{
		{Name: "add", Signature: []optree.ArgType{optree.ArgNode, optree.ArgNode}, New: buildBinary(addKernel{})},
		{Name: "subtract", Signature: []optree.ArgType{optree.ArgNode, optree.ArgNode}, New: buildBinary(subtractKernel{})},
		{Name: "multiply", Signature: []optree.ArgType{optree.ArgNode, optree.ArgNode}, New: buildBinary(multiplyKernel{})},
		{Name: "divide", Signature: []optree.ArgType{optree.ArgNode, optree.ArgNode}, New: buildBinary(divideKernel{})},
	}
	for _, f := range binaries {
		if err := r.Register(f); err != nil {
			return err
		}
	}

	rolling := []struct {
		name string
		new  func(window, nstock int) (optree.UnaryKernel, error)
	}{
		{"ts_mean", func(w, n int) (optree.UnaryKernel, error) { return newTsMeanKernel(w, n) }},
		{"ts_sum", func(w, n int) (optree.UnaryKernel, error) { return newTsSumKernel(w, n) }},
		{"ts_std", func(w, n int) (optree.UnaryKernel, error) { return newTsStdKernel(w, n) }},
		{"ts_delay", func(w, n int) (optree.UnaryKernel, error) { return newTsDelayKernel(w, n) }},
	}
	for _, rr := range rolling {
		rr := rr
		f := registry.Factory{
			Name:      rr.name,
			Signature: []optree.ArgType{optree.ArgNode, optree.ArgInt},
			New: func(opID optree.OperatorID, initArgs optree.InitArgs, args []optree.Arg, expr string) (optree.Node, error) {
				window := int(args[1].Int())
				kernel, err := rr.new(window, initArgs.Nstock)
				if err != nil {
					return nil, kernelsErrorf(rr.name, err)
				}

				return optree.NewUnaryNode(opID, initArgs, args[0].Node(), kernel, expr), nil
			},
		}
		if err := r.Register(f); err != nil {
			return err
		}
	}

	return r.Register(registry.Factory{
		Name:      "ts_zscore",
		Signature: []optree.ArgType{optree.ArgNode, optree.ArgInt},
		Combined: &registry.CombinedSpec{
			Template:      "divide(subtract(@x,ts_mean(@x,{n})),ts_std(@x,{n}))",
			ChildArgNames: []string{"x"},
			ParamArgNames: []string{"n"},
		},
	})
}

// buildUnary adapts a stateless optree.UnaryKernel value into a
// registry.Constructor.
func buildUnary(kernel optree.UnaryKernel) registry.Constructor {
	return func(opID optree.OperatorID, initArgs optree.InitArgs, args []optree.Arg, expr string) (optree.Node, error) {
		return optree.NewUnaryNode(opID, initArgs, args[0].Node(), kernel, expr), nil
	}
}

// buildBinary adapts a stateless optree.BinaryKernel value into a
// registry.Constructor.
func buildBinary(kernel optree.BinaryKernel) registry.Constructor {
	return func(opID optree.OperatorID, initArgs optree.InitArgs, args []optree.Arg, expr string) (optree.Node, error) {
		return optree.NewBinaryNode(opID, initArgs, args[0].Node(), args[1].Node(), kernel, expr), nil
	}
}
