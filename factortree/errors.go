package factortree

import (
	"errors"
	"fmt"
)

// ErrNoTree indicates Update, OnDayBegin/End, or a checkpoint call was made
// before CreateTree ever succeeded.
var ErrNoTree = errors.New("factortree: no tree built")

func treeErrorf(op string, err error) error {
	return fmt.Errorf("factortree: %s: %w", op, err)
}
