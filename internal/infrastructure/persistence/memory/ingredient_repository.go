package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/lanchonete/backend/internal/domain/catalog"
)

// IngredientRepository is an in-memory implementation of
// catalog.IngredientRepository. Safe for concurrent use.
type IngredientRepository struct {
	mu          sync.RWMutex
	ingredients map[int64]*catalog.Ingredient
	nextID      int64
}

// NewIngredientRepository creates an empty in-memory ingredient repository
func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{
		ingredients: make(map[int64]*catalog.Ingredient),
	}
}

// FindByID finds an ingredient by its internal id, nil when absent
func (r *IngredientRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*catalog.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ingredient, ok := r.ingredients[id]
	if !ok || (!includeInactive && !ingredient.IsActive) {
		return nil, nil
	}
	return ingredient, nil
}

// FindByName finds an ingredient by its normalized name. Matching is
// case-insensitive.
func (r *IngredientRepository) FindByName(ctx context.Context, name string, includeInactive bool) (*catalog.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ingredient := range r.ingredients {
		if !strings.EqualFold(ingredient.Name.Value(), name) {
			continue
		}
		if !includeInactive && !ingredient.IsActive {
			continue
		}
		return ingredient, nil
	}
	return nil, nil
}

// FindAll returns all ingredients
func (r *IngredientRepository) FindAll(ctx context.Context, includeInactive bool) ([]*catalog.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ingredients := make([]*catalog.Ingredient, 0, len(r.ingredients))
	for _, ingredient := range r.ingredients {
		if !includeInactive && !ingredient.IsActive {
			continue
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// FindByType returns all ingredients of the given type
func (r *IngredientRepository) FindByType(ctx context.Context, ingredientType catalog.IngredientType, includeInactive bool) ([]*catalog.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ingredients []*catalog.Ingredient
	for _, ingredient := range r.ingredients {
		if ingredient.Type != ingredientType {
			continue
		}
		if !includeInactive && !ingredient.IsActive {
			continue
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// FindByAppliesTo returns all ingredients flagged for the given category
func (r *IngredientRepository) FindByAppliesTo(ctx context.Context, category catalog.ProductCategory, includeInactive bool) ([]*catalog.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ingredients []*catalog.Ingredient
	for _, ingredient := range r.ingredients {
		if !ingredient.AppliesTo(category) {
			continue
		}
		if !includeInactive && !ingredient.IsActive {
			continue
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// ExistsByName checks if an ingredient with the given name exists
func (r *IngredientRepository) ExistsByName(ctx context.Context, name string, includeInactive bool) (bool, error) {
	ingredient, err := r.FindByName(ctx, name, includeInactive)
	return ingredient != nil, err
}

// Save creates or updates an ingredient, assigning the internal id on the
// first save
func (r *IngredientRepository) Save(ctx context.Context, ingredient *catalog.Ingredient) (*catalog.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !ingredient.HasInternalID() {
		r.nextID++
		ingredient.SetInternalID(r.nextID)
	}
	r.ingredients[*ingredient.InternalID] = ingredient
	return ingredient, nil
}

// Delete soft-deletes an ingredient by id, returning false when absent or
// already inactive
func (r *IngredientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ingredient, ok := r.ingredients[id]
	if !ok || !ingredient.IsActive {
		return false, nil
	}
	if err := ingredient.Deactivate(); err != nil {
		return false, err
	}
	return true, nil
}
