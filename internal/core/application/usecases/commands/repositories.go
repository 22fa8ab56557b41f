// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the repositories it
// touches, so tests mock only what a command actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// CartUoW manages transactions for cart mutations. Cart commands verify
	// the actor and the referenced item inside the same transaction as the
	// cart write.
	CartUoW interface {
		TxManager
		UserRepoFactory
		CartRepoFactory
		ItemRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the order placement transaction: reading the cart
	// and catalog, inserting the order, and clearing the cart are one atomic
	// operation.
	CheckoutUoW interface {
		TxManager
		UserRepoFactory
		CartRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order status transitions. Transition
	// commands re-derive the order's shop and the actor inside the
	// transaction.
	OrderUoW interface {
		TxManager
		UserRepoFactory
		ShopRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions for shop and item maintenance.
	CatalogUoW interface {
		TxManager
		UserRepoFactory
		ShopRepoFactory
		ItemRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// IdentityUoW manages transactions for registration, login, and profile
	// maintenance.
	IdentityUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	// IdentityUoWFactory creates new identity unit of work instances.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)
