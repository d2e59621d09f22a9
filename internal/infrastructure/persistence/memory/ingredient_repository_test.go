package memory

import (
	"context"
	"testing"

	"github.com/lanchonete/backend/internal/domain/catalog"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIngredient(t *testing.T, name string, ingredientType catalog.IngredientType) *catalog.Ingredient {
	t.Helper()
	price, err := valueobject.NewMoneyFromString("2.50")
	require.NoError(t, err)

	burger := catalog.TypeAllowsCategory(ingredientType, catalog.ProductCategoryBurger)
	side := catalog.TypeAllowsCategory(ingredientType, catalog.ProductCategorySide)
	drink := catalog.TypeAllowsCategory(ingredientType, catalog.ProductCategoryDrink)
	dessert := catalog.TypeAllowsCategory(ingredientType, catalog.ProductCategoryDessert)

	ingredient, err := catalog.NewIngredient(name, price, ingredientType, true, burger, side, drink, dessert)
	require.NoError(t, err)
	return ingredient
}

func TestIngredientRepositorySaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewIngredientRepository()

	saved, err := repo.Save(ctx, newIngredient(t, "cheddar", catalog.IngredientTypeCheese))
	require.NoError(t, err)
	require.NotNil(t, saved.InternalID)

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, *saved.InternalID, false)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Cheddar", found.Name.Value())
	})

	t.Run("by name is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "CHEDDAR", false)
		require.NoError(t, err)
		require.NotNil(t, found)

		exists, err := repo.ExistsByName(ctx, "cheddar", false)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unknown name returns nil without error", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "gruyere", true)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestIngredientRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewIngredientRepository()

	_, err := repo.Save(ctx, newIngredient(t, "cheddar", catalog.IngredientTypeCheese))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newIngredient(t, "whole milk", catalog.IngredientTypeMilk))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newIngredient(t, "crushed ice", catalog.IngredientTypeIce))
	require.NoError(t, err)

	t.Run("by type", func(t *testing.T) {
		milks, err := repo.FindByType(ctx, catalog.IngredientTypeMilk, false)
		require.NoError(t, err)
		require.Len(t, milks, 1)
		assert.Equal(t, "Whole Milk", milks[0].Name.Value())
	})

	t.Run("by applies-to category", func(t *testing.T) {
		drinkable, err := repo.FindByAppliesTo(ctx, catalog.ProductCategoryDrink, false)
		require.NoError(t, err)
		assert.Len(t, drinkable, 2)

		burgerable, err := repo.FindByAppliesTo(ctx, catalog.ProductCategoryBurger, false)
		require.NoError(t, err)
		assert.Len(t, burgerable, 1)
	})

	t.Run("all", func(t *testing.T) {
		all, err := repo.FindAll(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestIngredientRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewIngredientRepository()

	saved, err := repo.Save(ctx, newIngredient(t, "cheddar", catalog.IngredientTypeCheese))
	require.NoError(t, err)
	id := *saved.InternalID

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(ctx, id, false)
	require.NoError(t, err)
	assert.Nil(t, found)

	inactive, err := repo.FindByID(ctx, id, true)
	require.NoError(t, err)
	require.NotNil(t, inactive)
	assert.False(t, inactive.IsActive)

	again, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, again)
}
