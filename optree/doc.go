// Package optree defines the runtime DAG that a factor tree evaluates: the
// five node kinds (Data, Constant, Unary, Binary, Combined), the demand-pull
// evaluation protocol each kind obeys, and the plumbing shared by every
// kernel (rolling state hooks, day-boundary callbacks, checkpoint state
// blocks).
//
// Node kinds:
//
//	Data      — leaf; caller installs a Tensor each tick via SetInput
//	Constant  — leaf; fixed scalar broadcast at construction, never recomputed
//	Unary     — one child; kernel computes out from the child's output
//	Binary    — two children; kernel computes out from both children's output
//	Combined  — n named children; delegates to an inner sub-expression's root
//
// Every node satisfies the Node interface. Unary and Binary are generic
// wrappers parameterised by the concrete kernel type (see kernel.go); the
// kernel itself is a plain value exposing Update(input..., output). This
// keeps the pull/memoisation logic in exactly one place per arity instead of
// duplicated per operator, splitting walker-holds-state from a stateless
// pull loop.
//
// The tick protocol (GetResult) and the day-boundary broadcast
// (OnDayBegin/OnDayEnd, deduplicated by OperatorID) live entirely in this
// package; it is the sole place that protocol is implemented.
package optree
