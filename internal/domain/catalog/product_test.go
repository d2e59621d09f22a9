package catalog

import (
	"testing"
	"time"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func burgerItems(t *testing.T) []ReceiptItem {
	t.Helper()
	bun := makeIngredient(t, IngredientTypeBread, true, false, false, false)
	patty := makeIngredient(t, IngredientTypeMeat, true, false, false, false)
	return []ReceiptItem{
		{Ingredient: bun, Quantity: 2},
		{Ingredient: patty, Quantity: 1},
	}
}

func TestNewReceiptItem(t *testing.T) {
	ingredient := makeIngredient(t, IngredientTypeBread, true, false, false, false)

	t.Run("creates item with valid quantity", func(t *testing.T) {
		item, err := NewReceiptItem(ingredient, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.Same(t, ingredient, item.Ingredient)
	})

	t.Run("fails with nil ingredient", func(t *testing.T) {
		_, err := NewReceiptItem(nil, 1)
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewReceiptItem(ingredient, 0)
		assert.Error(t, err)
	})
}

func TestReceiptItemSubtotal(t *testing.T) {
	ingredient := makeIngredient(t, IngredientTypeBread, true, false, false, false)
	item, err := NewReceiptItem(ingredient, 3)
	require.NoError(t, err)
	assert.Equal(t, "3.00", item.Subtotal().String())
}

func TestNewProduct(t *testing.T) {
	t.Run("creates burger product successfully", func(t *testing.T) {
		product, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategoryBurger, "BURG-2024-CLS", burgerItems(t), true)

		require.NoError(t, err)
		assert.Equal(t, "Classic Burger", product.Name.Value())
		assert.Equal(t, ProductCategoryBurger, product.Category)
		assert.Equal(t, "BURG-2024-CLS", product.SKU.Value())
		assert.Len(t, product.ReceiptItems, 2)
		assert.True(t, product.IsActive)
		assert.Len(t, product.GetDomainEvents(), 1)
	})

	t.Run("fails with empty receipt items", func(t *testing.T) {
		_, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategoryBurger, "BURG-2024-CLS", nil, true)

		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "at least one")
	})

	t.Run("fails with invalid category", func(t *testing.T) {
		_, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategory("PIZZA"), "BURG-2024-CLS", burgerItems(t), true)

		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with invalid sku", func(t *testing.T) {
		_, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategoryBurger, "INVALID", burgerItems(t), true)

		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails when a drink product uses a bread ingredient", func(t *testing.T) {
		bread := makeIngredient(t, IngredientTypeBread, true, false, false, false)

		_, err := NewProduct("Juice", mustMoney(t, "5.00"),
			ProductCategoryDrink, "DRK-1234-AAA", []ReceiptItem{{Ingredient: bread, Quantity: 1}}, true)

		assert.Error(t, err)
		assert.True(t, shared.IsBusinessRuleError(err))
		assert.Contains(t, err.Error(), "must apply to drink")
	})

	t.Run("drink product with ice and milk succeeds", func(t *testing.T) {
		ice := makeIngredient(t, IngredientTypeIce, false, false, true, false)
		milk := makeIngredient(t, IngredientTypeMilk, false, false, true, false)

		product, err := NewProduct("Milkshake", mustMoney(t, "7.50"),
			ProductCategoryDrink, "DRK-2024-MLK",
			[]ReceiptItem{{Ingredient: milk, Quantity: 2}, {Ingredient: ice, Quantity: 1}}, true)

		require.NoError(t, err)
		assert.Equal(t, ProductCategoryDrink, product.Category)
	})

	t.Run("dessert product requires topping ingredients", func(t *testing.T) {
		topping := makeIngredient(t, IngredientTypeTopping, false, false, false, true)

		_, err := NewProduct("Sundae", mustMoney(t, "4.00"),
			ProductCategoryDessert, "DES-2024-SUN", []ReceiptItem{{Ingredient: topping, Quantity: 1}}, true)
		require.NoError(t, err)

		cheese := makeIngredient(t, IngredientTypeCheese, true, false, false, false)
		_, err = NewProduct("Sundae", mustMoney(t, "4.00"),
			ProductCategoryDessert, "DES-2024-SUN", []ReceiptItem{{Ingredient: cheese, Quantity: 1}}, true)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must apply to dessert")
	})

	t.Run("fails with a zero receipt item quantity", func(t *testing.T) {
		bun := makeIngredient(t, IngredientTypeBread, true, false, false, false)

		_, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategoryBurger, "BURG-2024-CLS", []ReceiptItem{{Ingredient: bun, Quantity: 0}}, true)
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestProductUpdate(t *testing.T) {
	t.Run("commits a valid new field set", func(t *testing.T) {
		product, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategoryBurger, "BURG-2024-CLS", burgerItems(t), true)
		require.NoError(t, err)

		sideItems := []ReceiptItem{
			{Ingredient: makeIngredient(t, IngredientTypeVegetable, true, true, false, false), Quantity: 1},
		}
		err = product.Update("Garden Salad", mustMoney(t, "6.50"),
			ProductCategorySide, "SIDE-2024-SAL", sideItems)

		require.NoError(t, err)
		assert.Equal(t, "Garden Salad", product.Name.Value())
		assert.Equal(t, ProductCategorySide, product.Category)
		assert.Equal(t, "SIDE-2024-SAL", product.SKU.Value())
	})

	t.Run("a failed validation leaves the product untouched", func(t *testing.T) {
		product, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
			ProductCategoryBurger, "BURG-2024-CLS", burgerItems(t), true)
		require.NoError(t, err)

		// Burger ingredients do not apply to drinks, so this must fail
		err = product.Update("Burger Juice", mustMoney(t, "5.00"),
			ProductCategoryDrink, "DRK-2024-BAD", product.ReceiptItems)

		assert.Error(t, err)
		assert.True(t, shared.IsBusinessRuleError(err))
		assert.Equal(t, "Classic Burger", product.Name.Value())
		assert.Equal(t, ProductCategoryBurger, product.Category)
		assert.Equal(t, "BURG-2024-CLS", product.SKU.Value())
		assert.Equal(t, "9.90", product.Price.String())
	})
}

func TestProductDeactivate(t *testing.T) {
	product, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
		ProductCategoryBurger, "BURG-2024-CLS", burgerItems(t), true)
	require.NoError(t, err)

	require.NoError(t, product.Deactivate())
	assert.False(t, product.IsActive)

	err = product.Deactivate()
	assert.Error(t, err)
	assert.True(t, shared.IsBusinessRuleError(err))
}

func TestProductIngredientsCost(t *testing.T) {
	// Two buns at 1.00 each plus one patty at 1.00
	product, err := NewProduct("Classic Burger", mustMoney(t, "9.90"),
		ProductCategoryBurger, "BURG-2024-CLS", burgerItems(t), true)
	require.NoError(t, err)

	assert.Equal(t, "3.00", product.IngredientsCost().String())
}

func TestParseProductCategory(t *testing.T) {
	t.Run("parses known categories case-insensitively", func(t *testing.T) {
		for raw, want := range map[string]ProductCategory{
			"BURGER":  ProductCategoryBurger,
			"side":    ProductCategorySide,
			" Drink ": ProductCategoryDrink,
			"dessert": ProductCategoryDessert,
		} {
			category, err := ParseProductCategory(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, category)
		}
	})

	t.Run("fails on unknown category", func(t *testing.T) {
		_, err := ParseProductCategory("pizza")
		assert.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestReconstructProduct(t *testing.T) {
	product := ReconstructProduct(9, "Stored Burger", mustMoney(t, "8.00"),
		ProductCategoryBurger, "BURG-2024-STD", burgerItems(t), true, testTime())

	require.NotNil(t, product.InternalID)
	assert.Equal(t, int64(9), *product.InternalID)
	assert.Equal(t, testTime(), product.CreatedAt)
	assert.Empty(t, product.GetDomainEvents())
}
