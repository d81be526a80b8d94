package treebuilder

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Build; callers branch with errors.Is. These
// mirror registry's BuildError family plus the parse failures exprlang.Parse
// can produce while reparsing a Combined template (those are wrapped with the
// operator name and still match errors.Is(err, exprlang.ErrParse)).
// ErrUnknownLiteralArg indicates a string literal appeared where a node
// (a sub-expression) was required. A non-matching argument at an Int,
// Double, or String position surfaces as registry.ErrTypeMismatch instead.
// The unknown-named-child build failure is surfaced via
// registry.ErrUnknownField, where the CombinedSpec that caused it lives.
var ErrUnknownLiteralArg = errors.New("treebuilder: argument is not a literal")

func builderErrorf(op string, err error) error {
	return fmt.Errorf("treebuilder: %s: %w", op, err)
}
