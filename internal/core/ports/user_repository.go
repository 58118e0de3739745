package ports

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	// Add persists a new user to storage. Fails with a constraint
	// violation when the phone number is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByPhone retrieves a user by the phone number they sign in with.
	GetByPhone(ctx context.Context, phone string) (*user.User, error)
}
