package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrMergeCartCommandIsNotConstructed = errors.New(
		"MergeCartCommand must be created via NewMergeCartCommand constructor",
	)
	ErrMergeEntriesAreRequired = errors.New("merge entries are required")
)

// MergeCartEntry is one raw entry of a guest-cart merge request as received
// from the client. Quantities may repeat per item and may be non-positive;
// normalization happens in the domain.
type MergeCartEntry struct {
	ItemID   kernel.UUID
	Quantity int
}

// MergeCartCommand represents folding a guest cart into the consumer's stored
// cart after login.
type MergeCartCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	entries []MergeCartEntry

	guard guard.ConstructorGuard
}

// NewMergeCartCommand creates a command to merge guest-cart entries into the
// actor's cart. The raw entries are carried as-is; aggregation and clamping
// happen when the command is handled.
func NewMergeCartCommand(actorID kernel.UUID, entries []MergeCartEntry) (MergeCartCommand, error) {
	cmd := MergeCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setEntries(entries),
	); err != nil {
		return MergeCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MergeCartCommand) Validate() error {
	return c.guard.Validate(ErrMergeCartCommandIsNotConstructed)
}

// ActorID returns the acting consumer's identifier.
func (c MergeCartCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Entries returns the raw merge entries.
func (c MergeCartCommand) Entries() []MergeCartEntry {
	return c.entries
}

func (c *MergeCartCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *MergeCartCommand) setEntries(entries []MergeCartEntry) error {
	if len(entries) == 0 {
		return ErrMergeEntriesAreRequired
	}
	c.entries = entries
	return nil
}

// toDomain converts the raw entries to the domain's merge representation.
func (c MergeCartCommand) toDomain() []user.MergeEntry {
	domain := make([]user.MergeEntry, 0, len(c.entries))
	for _, e := range c.entries {
		domain = append(domain, user.MergeEntry{ItemID: e.ItemID, Quantity: e.Quantity})
	}
	return domain
}
