// Package kernels provides the concrete operator kernels exercised by the
// registry: stateless arithmetic and identity, stateful rolling time-series
// operators, cross-sectional operators, and one Combined operator.
//
// Each kernel is a small plain value implementing optree.UnaryKernel or
// optree.BinaryKernel. Kernels that reset at day boundaries additionally
// implement optree.DayAware; kernels carrying rolling state additionally
// implement optree.StatefulKernel. Kernels that need neither simply don't
// implement those interfaces — the node wrapper type-asserts for them and
// no-ops otherwise.
//
// RegisterBuiltins populates a registry.Registry with every kernel in this
// package, eagerly and deterministically, matching the "no lazy
// initialization" rule for process-wide tables.
package kernels
