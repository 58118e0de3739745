package ports

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog entries.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the whole catalog, including unavailable entries.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllAvailable retrieves the orderable catalog.
	GetAllAvailable(ctx context.Context) ([]*product.Product, error)
}
