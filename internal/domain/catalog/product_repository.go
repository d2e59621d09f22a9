package catalog

import (
	"context"
)

// ProductRepository defines the interface for product persistence.
// Implementations provide at-most-one-writer-per-save semantics and atomic
// existence checks; the domain does not guard against check-then-save races.
type ProductRepository interface {
	// FindByID finds a product by its internal id, nil when absent
	FindByID(ctx context.Context, id int64, includeInactive bool) (*Product, error)

	// FindBySKU finds a product by its SKU code
	FindBySKU(ctx context.Context, sku string, includeInactive bool) (*Product, error)

	// FindAll returns all products
	FindAll(ctx context.Context, includeInactive bool) ([]*Product, error)

	// FindByCategory returns all products of the given category
	FindByCategory(ctx context.Context, category ProductCategory, includeInactive bool) ([]*Product, error)

	// ExistsBySKU checks if a product with the given SKU exists
	ExistsBySKU(ctx context.Context, sku string, includeInactive bool) (bool, error)

	// Save creates or updates a product, assigning the internal id on the
	// first save
	Save(ctx context.Context, product *Product) (*Product, error)

	// Delete soft-deletes a product by id, returning false when absent
	Delete(ctx context.Context, id int64) (bool, error)
}
