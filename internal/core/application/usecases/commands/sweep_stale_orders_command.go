package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrSweepStaleOrdersCommandIsNotConstructed = errors.New(
	"SweepStaleOrdersCommand must be created via NewSweepStaleOrdersCommand constructor",
)

// SweepStaleOrdersCommand moves every InProcess order past the staleness
// threshold to Delayed.
type SweepStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepStaleOrdersCommand() SweepStaleOrdersCommand {
	return SweepStaleOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleOrdersCommandIsNotConstructed)
}
