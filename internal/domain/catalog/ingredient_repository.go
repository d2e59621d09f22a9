package catalog

import (
	"context"
)

// IngredientRepository defines the interface for ingredient persistence.
// Implementations provide at-most-one-writer-per-save semantics and atomic
// existence checks; the domain does not guard against check-then-save races.
type IngredientRepository interface {
	// FindByID finds an ingredient by its internal id, nil when absent
	FindByID(ctx context.Context, id int64, includeInactive bool) (*Ingredient, error)

	// FindByName finds an ingredient by its normalized name
	FindByName(ctx context.Context, name string, includeInactive bool) (*Ingredient, error)

	// FindAll returns all ingredients
	FindAll(ctx context.Context, includeInactive bool) ([]*Ingredient, error)

	// FindByType returns all ingredients of the given type
	FindByType(ctx context.Context, ingredientType IngredientType, includeInactive bool) ([]*Ingredient, error)

	// FindByAppliesTo returns all ingredients flagged for the given category
	FindByAppliesTo(ctx context.Context, category ProductCategory, includeInactive bool) ([]*Ingredient, error)

	// ExistsByName checks if an ingredient with the given name exists
	ExistsByName(ctx context.Context, name string, includeInactive bool) (bool, error)

	// Save creates or updates an ingredient, assigning the internal id on the
	// first save
	Save(ctx context.Context, ingredient *Ingredient) (*Ingredient, error)

	// Delete soft-deletes an ingredient by id, returning false when absent
	Delete(ctx context.Context, id int64) (bool, error)
}
