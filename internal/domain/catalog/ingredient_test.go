package catalog

import (
	"testing"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func makeIngredient(t *testing.T, ingredientType IngredientType, burger, side, drink, dessert bool) *Ingredient {
	t.Helper()
	ingredient, err := NewIngredient("Test Ingredient", mustMoney(t, "1.00"), ingredientType, true,
		burger, side, drink, dessert)
	require.NoError(t, err)
	return ingredient
}

func TestNewIngredient(t *testing.T) {
	t.Run("creates bread ingredient for burgers", func(t *testing.T) {
		ingredient, err := NewIngredient("Bun", mustMoney(t, "2.50"), IngredientTypeBread, true,
			true, false, false, false)

		require.NoError(t, err)
		assert.Equal(t, "Bun", ingredient.Name.Value())
		assert.Equal(t, IngredientTypeBread, ingredient.Type)
		assert.True(t, ingredient.AppliesToBurger)
		assert.True(t, ingredient.IsActive)
		assert.Len(t, ingredient.GetDomainEvents(), 1)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewIngredient("", mustMoney(t, "1.00"), IngredientTypeBread, true,
			true, false, false, false)
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		_, err := NewIngredient("Mystery", mustMoney(t, "1.00"), IngredientType("PLASTIC"), true,
			true, false, false, false)
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "PLASTIC")
	})

	t.Run("fails when no applies-to flag is set", func(t *testing.T) {
		_, err := NewIngredient("Bun", mustMoney(t, "1.00"), IngredientTypeBread, true,
			false, false, false, false)
		assert.Error(t, err)
		assert.True(t, shared.IsBusinessRuleError(err))
		assert.Contains(t, err.Error(), "at least one")
	})

	t.Run("fails when ice is flagged for burgers", func(t *testing.T) {
		_, err := NewIngredient("Ice Cubes", mustMoney(t, "0.50"), IngredientTypeIce, true,
			true, false, true, false)
		assert.Error(t, err)
		assert.True(t, shared.IsBusinessRuleError(err))
		assert.Contains(t, err.Error(), "ICE")
		assert.Contains(t, err.Error(), "BURGER")
	})

	t.Run("fails when bread is flagged for drinks", func(t *testing.T) {
		_, err := NewIngredient("Bun", mustMoney(t, "1.00"), IngredientTypeBread, true,
			true, false, true, false)
		assert.Error(t, err)
		assert.True(t, shared.IsBusinessRuleError(err))
	})
}

func TestIngredientCompatibilityMatrix(t *testing.T) {
	burgerAndSide := []IngredientType{
		IngredientTypeBread, IngredientTypeMeat, IngredientTypeCheese,
		IngredientTypeVegetable, IngredientTypeSalad, IngredientTypeSauce,
	}

	for _, ingredientType := range burgerAndSide {
		t.Run(string(ingredientType)+" applies to burger and side only", func(t *testing.T) {
			assert.True(t, TypeAllowsCategory(ingredientType, ProductCategoryBurger))
			assert.True(t, TypeAllowsCategory(ingredientType, ProductCategorySide))
			assert.False(t, TypeAllowsCategory(ingredientType, ProductCategoryDrink))
			assert.False(t, TypeAllowsCategory(ingredientType, ProductCategoryDessert))
		})
	}

	for _, ingredientType := range []IngredientType{IngredientTypeIce, IngredientTypeMilk} {
		t.Run(string(ingredientType)+" applies to drink only", func(t *testing.T) {
			assert.True(t, TypeAllowsCategory(ingredientType, ProductCategoryDrink))
			assert.False(t, TypeAllowsCategory(ingredientType, ProductCategoryBurger))
			assert.False(t, TypeAllowsCategory(ingredientType, ProductCategorySide))
			assert.False(t, TypeAllowsCategory(ingredientType, ProductCategoryDessert))
		})
	}

	t.Run("TOPPING applies to dessert only", func(t *testing.T) {
		assert.True(t, TypeAllowsCategory(IngredientTypeTopping, ProductCategoryDessert))
		assert.False(t, TypeAllowsCategory(IngredientTypeTopping, ProductCategoryBurger))
		assert.False(t, TypeAllowsCategory(IngredientTypeTopping, ProductCategorySide))
		assert.False(t, TypeAllowsCategory(IngredientTypeTopping, ProductCategoryDrink))
	})

	t.Run("drink flag requires ice or milk", func(t *testing.T) {
		for _, ingredientType := range IngredientTypes() {
			_, err := NewIngredient("X", mustMoney(t, "1.00"), ingredientType, true,
				false, false, true, false)
			if ingredientType == IngredientTypeIce || ingredientType == IngredientTypeMilk {
				assert.NoError(t, err, ingredientType)
			} else {
				assert.Error(t, err, ingredientType)
			}
		}
	})
}

func TestIngredientAppliesTo(t *testing.T) {
	ingredient := makeIngredient(t, IngredientTypeCheese, true, true, false, false)

	assert.True(t, ingredient.AppliesTo(ProductCategoryBurger))
	assert.True(t, ingredient.AppliesTo(ProductCategorySide))
	assert.False(t, ingredient.AppliesTo(ProductCategoryDrink))
	assert.False(t, ingredient.AppliesTo(ProductCategoryDessert))
	assert.False(t, ingredient.AppliesTo(ProductCategory("PIZZA")))
}

func TestIngredientUpdate(t *testing.T) {
	t.Run("re-validates the full new field set", func(t *testing.T) {
		ingredient := makeIngredient(t, IngredientTypeBread, true, false, false, false)

		err := ingredient.Update("Whole Wheat Bun", mustMoney(t, "3.00"), IngredientTypeBread,
			true, true, false, false)
		require.NoError(t, err)
		assert.Equal(t, "Whole Wheat Bun", ingredient.Name.Value())
		assert.True(t, ingredient.AppliesToSide)
	})

	t.Run("rejects an incompatible combination atomically", func(t *testing.T) {
		ingredient := makeIngredient(t, IngredientTypeBread, true, false, false, false)

		err := ingredient.Update("Bun", mustMoney(t, "1.00"), IngredientTypeBread,
			true, false, true, false)
		assert.Error(t, err)
		// No partial mutation survives
		assert.Equal(t, "Test Ingredient", ingredient.Name.Value())
		assert.False(t, ingredient.AppliesToDrink)
	})
}

func TestIngredientDeactivate(t *testing.T) {
	ingredient := makeIngredient(t, IngredientTypeMilk, false, false, true, false)

	require.NoError(t, ingredient.Deactivate())
	assert.False(t, ingredient.IsActive)

	err := ingredient.Deactivate()
	assert.Error(t, err)
	assert.True(t, shared.IsBusinessRuleError(err))
}

func TestReconstructIngredient(t *testing.T) {
	ingredient := ReconstructIngredient(3, "Stored Name", mustMoney(t, "2.00"),
		IngredientTypeSauce, true, true, true, false, false, testTime())

	require.NotNil(t, ingredient.InternalID)
	assert.Equal(t, int64(3), *ingredient.InternalID)
	assert.Equal(t, "Stored Name", ingredient.Name.Value())
	assert.Empty(t, ingredient.GetDomainEvents())
}
