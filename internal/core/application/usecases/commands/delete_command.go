package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrDeleteCommandIsNotConstructed = errors.New(
	"DeleteCommand must be created via NewDeleteCommand constructor",
)

// DeleteCommand removes the record with the given id from one entity store.
// The id is never reissued afterwards.
type DeleteCommand struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCommand(id kernel.ID) DeleteCommand {
	return DeleteCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
}

func (c DeleteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCommandIsNotConstructed)
}

func (c DeleteCommand) ID() kernel.ID {
	return c.id
}
