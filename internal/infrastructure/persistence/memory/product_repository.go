package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/lanchonete/backend/internal/domain/catalog"
)

// ProductRepository is an in-memory implementation of
// catalog.ProductRepository. Safe for concurrent use.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]*catalog.Product
	nextID   int64
}

// NewProductRepository creates an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]*catalog.Product),
	}
}

// FindByID finds a product by its internal id, nil when absent
func (r *ProductRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok || (!includeInactive && !product.IsActive) {
		return nil, nil
	}
	return product, nil
}

// FindBySKU finds a product by its SKU code. Matching is case-insensitive
// since SKUs are normalized to upper case on creation.
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string, includeInactive bool) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if !strings.EqualFold(product.SKU.Value(), sku) {
			continue
		}
		if !includeInactive && !product.IsActive {
			continue
		}
		return product, nil
	}
	return nil, nil
}

// FindAll returns all products
func (r *ProductRepository) FindAll(ctx context.Context, includeInactive bool) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*catalog.Product, 0, len(r.products))
	for _, product := range r.products {
		if !includeInactive && !product.IsActive {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// FindByCategory returns all products of the given category
func (r *ProductRepository) FindByCategory(ctx context.Context, category catalog.ProductCategory, includeInactive bool) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []*catalog.Product
	for _, product := range r.products {
		if product.Category != category {
			continue
		}
		if !includeInactive && !product.IsActive {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// ExistsBySKU checks if a product with the given SKU exists
func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string, includeInactive bool) (bool, error) {
	product, err := r.FindBySKU(ctx, sku, includeInactive)
	return product != nil, err
}

// Save creates or updates a product, assigning the internal id on the first
// save
func (r *ProductRepository) Save(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !product.HasInternalID() {
		r.nextID++
		product.SetInternalID(r.nextID)
	}
	r.products[*product.InternalID] = product
	return product, nil
}

// Delete soft-deletes a product by id, returning false when absent or
// already inactive
func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || !product.IsActive {
		return false, nil
	}
	if err := product.Deactivate(); err != nil {
		return false, err
	}
	return true, nil
}
