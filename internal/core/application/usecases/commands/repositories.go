// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization against the acting identity, transaction management, and
// persistence.
package commands

import (
	"context"

	"shipledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within
	// a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// PartnerRepoFactory provides access to the partner repository within
	// a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// SalesAgentRepoFactory provides access to the sales agent repository
	// within a transaction.
	SalesAgentRepoFactory interface {
		SalesAgentRepository() ports.SalesAgentRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order ledger mutations. The sales
	// agent repository rides along because order writes snapshot the
	// linked agent's commission rate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		SalesAgentRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InvoiceUoW manages transactions for invoice lifecycle operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// CatalogUoW manages transactions for partner and sales agent
	// administration. The order repository rides along because deleting a
	// catalog entry is blocked while orders still reference it.
	CatalogUoW interface {
		TxManager
		PartnerRepoFactory
		SalesAgentRepoFactory
		OrderRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UserUoW manages transactions for login account administration. The
	// partner repository rides along because creating a PARTNER account
	// provisions its linked Partner profile.
	UserUoW interface {
		TxManager
		UserRepoFactory
		PartnerRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
