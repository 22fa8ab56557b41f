package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// getActorInRole loads the acting user and verifies its role inside the
// current transaction. Every command re-derives the actor from storage at
// call time; nothing about the actor is trusted from earlier requests.
func getActorInRole(
	ctx context.Context,
	repo ports.UserRepository,
	actorID kernel.UUID,
	role user.Role,
) (*user.User, error) {
	actor, err := repo.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role() != role {
		return nil, errs.NewNotAuthorizedError(actorID.String(), role.String()+" operation")
	}
	return actor, nil
}
