package registry

import "github.com/katalvlaran/factortree/optree"

// Registry is a read-only-after-init table of Factory entries keyed by
// operator name. A Registry is built once (via Register calls, typically
// from a single RegisterBuiltins-style entry point) and then shared
// read-only across every tree that consults it; it carries no mutable
// state once construction finishes.
type Registry struct {
	factories map[string]Factory
}

// New returns an empty Registry ready to accept Register calls.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds f to the table. Registering the same name twice is a
// programmer error and returns ErrDuplicateOperator; a Factory with neither
// New nor Combined set returns ErrNilFactory.
func (r *Registry) Register(f Factory) error {
	if f.New == nil && f.Combined == nil {
		return registryErrorf("Register", ErrNilFactory)
	}
	if _, exists := r.factories[f.Name]; exists {
		return registryErrorf("Register("+f.Name+")", ErrDuplicateOperator)
	}
	r.factories[f.Name] = f

	return nil
}

// Lookup returns the Factory registered under name, if any.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]

	return f, ok
}

// ValidateArgs checks args against f.Signature for arity and per-position
// type agreement. The treebuilder package does not call it: it checks arity
// and argument types itself while building the call's arguments.
func (r *Registry) ValidateArgs(f Factory, args []optree.Arg) error {
	if len(args) != len(f.Signature) {
		return registryErrorf(f.Name, ErrArityMismatch)
	}
	for i, want := range f.Signature {
		if args[i].Type() != want {
			return registryErrorf(f.Name, ErrTypeMismatch)
		}
	}

	return nil
}
