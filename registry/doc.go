// Package registry is the process-wide, initialize-once table mapping an
// operator name (e.g. "ts_mean") to a Factory that validates arguments and
// constructs the corresponding optree.Node.
//
// Registration is eager and deterministic: kernels.RegisterBuiltins
// populates the table once, at tree-engine startup, so that an unknown
// operator or a bad arity surfaces at build time rather than lazily on the
// first tick. There is no global mutable state beyond the table itself.
// Registry does not freeze the table: Register remains callable after
// kernels.RegisterBuiltins returns.
package registry
