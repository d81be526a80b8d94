package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors a caller branches on with errors.Is. Context is attached
// via registryErrorf; the sentinels themselves are never wrapped with a
// formatted string at the definition site.
var (
	// ErrUnknownOperator indicates an expression referenced an operator name
	// with no registered Factory.
	ErrUnknownOperator = errors.New("registry: unknown operator")

	// ErrArityMismatch indicates a call supplied a different number of
	// arguments than the Factory's Signature declares.
	ErrArityMismatch = errors.New("registry: arity mismatch")

	// ErrTypeMismatch indicates a call supplied an argument whose ArgType
	// does not match the Factory's Signature at that position.
	ErrTypeMismatch = errors.New("registry: type mismatch")

	// ErrUnknownField indicates a Combined operator's template referenced a
	// named child that was not among the arguments bound to it.
	ErrUnknownField = errors.New("registry: unknown named child")

	// ErrDuplicateOperator indicates Register was called twice for the same
	// operator name; this is a programmer error, not a runtime condition.
	ErrDuplicateOperator = errors.New("registry: duplicate operator name")

	// ErrNilFactory indicates a Factory with a nil constructor (and not
	// marked Combined) was registered.
	ErrNilFactory = errors.New("registry: nil factory constructor")
)

// registryErrorf wraps err with the operator/call-site context op, matching
// the package-private xxxErrorf helper convention used throughout this
// module's sibling packages.
func registryErrorf(op string, err error) error {
	return fmt.Errorf("registry: %s: %w", op, err)
}
