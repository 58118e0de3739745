// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"waterdrop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition it needs, so tests only
// mock the repositories the command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CouponRepoFactory provides access to the coupon repository within a transaction.
	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// PayoutRepoFactory provides access to the payout repository within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for order placement, which reads the
	// catalog, redeems coupons and persists the new order atomically.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CouponRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// AssignmentUoW manages transactions that touch both an order and a
	// delivery partner: assignment, acceptance and delivery completion.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// LifecycleUoW manages status change transactions, which update the
	// order, credit the partner on delivery and look up the customer's
	// device token for notification.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		UserRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CouponUoW manages transactions for coupon administration.
	CouponUoW interface {
		TxManager
		CouponRepoFactory
	}

	// CouponUoWFactory creates new coupon unit of work instances.
	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// PayoutUoW manages transactions for payout creation and processing.
	// Creation reads delivered orders, so the order repository rides along.
	PayoutUoW interface {
		TxManager
		PayoutRepoFactory
		OrderRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}

	// UserUoW manages transactions for account operations. Registering a
	// delivery partner account creates the partner aggregate alongside it.
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
