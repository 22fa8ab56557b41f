package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// MergeCartCommandHandler handles folding a guest cart into the consumer's
// stored cart. Entries are aggregated and clamped by the domain rules, entries
// referencing unknown items are dropped rather than failing the whole merge,
// and all surviving adds land in one transaction.
type MergeCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewMergeCartCommandHandler creates a handler for guest-cart merges.
func NewMergeCartCommandHandler(uowFactory CartUoWFactory) MergeCartCommandHandler {
	return MergeCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the merge command and returns the cart's resulting total
// quantity. A merge whose entries all aggregate to nothing leaves the cart
// untouched and reports its current size.
func (h *MergeCartCommandHandler) Handle(ctx context.Context, cmd MergeCartCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	entries := user.AggregateMergeEntries(cmd.toDomain())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := getActorInRole(ctx, uow.UserRepository(), cmd.ActorID(), user.Consumer); err != nil {
		return 0, err
	}

	cartRepo := uow.CartRepository()

	if len(entries) > 0 {
		ids := make([]kernel.UUID, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ItemID)
		}
		known, err := uow.ItemRepository().GetAllByIDs(ctx, ids)
		if err != nil {
			return 0, err
		}

		for _, e := range entries {
			if _, ok := known[e.ItemID]; !ok {
				continue
			}
			if _, err := cartRepo.AddQuantity(ctx, cmd.ActorID(), e.ItemID, e.Quantity); err != nil {
				return 0, err
			}
		}
	}

	cart, err := cartRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cart.TotalQuantity(), nil
}
