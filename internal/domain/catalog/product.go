package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
)

// ProductCategory classifies what kind of menu item a product is
type ProductCategory string

const (
	ProductCategoryBurger  ProductCategory = "BURGER"
	ProductCategorySide    ProductCategory = "SIDE"
	ProductCategoryDrink   ProductCategory = "DRINK"
	ProductCategoryDessert ProductCategory = "DESSERT"
)

// ProductCategories lists every valid product category
func ProductCategories() []ProductCategory {
	return []ProductCategory{
		ProductCategoryBurger,
		ProductCategorySide,
		ProductCategoryDrink,
		ProductCategoryDessert,
	}
}

// ParseProductCategory converts a raw string into a ProductCategory
func ParseProductCategory(raw string) (ProductCategory, error) {
	category := ProductCategory(strings.ToUpper(strings.TrimSpace(raw)))
	for _, valid := range ProductCategories() {
		if category == valid {
			return category, nil
		}
	}
	return "", shared.NewValidationError("category", fmt.Sprintf("Invalid product category: %s", raw))
}

// ReceiptItem pairs an ingredient with the quantity used in a product's
// default composition. The ingredient is referenced by identity, not owned:
// its lifecycle is independent and it only needs to exist and be compatible
// at validation time.
type ReceiptItem struct {
	Ingredient *Ingredient
	Quantity   int
}

// NewReceiptItem creates a validated receipt item
func NewReceiptItem(ingredient *Ingredient, quantity int) (ReceiptItem, error) {
	if ingredient == nil {
		return ReceiptItem{}, shared.NewValidationError("ingredient", "Receipt item ingredient cannot be nil")
	}
	if quantity < 1 {
		return ReceiptItem{}, shared.NewValidationError("quantity", "Receipt item quantity must be at least 1")
	}
	return ReceiptItem{Ingredient: ingredient, Quantity: quantity}, nil
}

// Subtotal returns the ingredient price multiplied by the quantity
func (r ReceiptItem) Subtotal() valueobject.Money {
	return r.Ingredient.Price.MultiplyByInt(int64(r.Quantity))
}

// Product is the aggregate root for menu products. Its receipt items must be
// non-empty and every referenced ingredient must apply to the product's
// category.
type Product struct {
	shared.BaseAggregateRoot
	Name         valueobject.Name
	Price        valueobject.Money
	Category     ProductCategory
	SKU          valueobject.SKU
	ReceiptItems []ReceiptItem
	IsActive     bool
}

// NewProduct creates a validated product from raw input
func NewProduct(
	name string,
	price valueobject.Money,
	category ProductCategory,
	sku string,
	receiptItems []ReceiptItem,
	isActive bool,
) (*Product, error) {
	productName, err := valueobject.NewName(name)
	if err != nil {
		return nil, err
	}
	productSKU, err := valueobject.NewSKU(sku)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if err := validateReceiptItems(category, receiptItems); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              productName,
		Price:             price,
		Category:          category,
		SKU:               productSKU,
		ReceiptItems:      receiptItems,
		IsActive:          isActive,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// ReconstructProduct rebuilds a product from storage without re-validating.
// Storage data is trusted; externally-supplied input must go through
// NewProduct instead.
func ReconstructProduct(
	internalID int64,
	name string,
	price valueobject.Money,
	category ProductCategory,
	sku string,
	receiptItems []ReceiptItem,
	isActive bool,
	createdAt time.Time,
) *Product {
	product := &Product{
		Name:         valueobject.NameFromTrusted(name),
		Price:        price,
		Category:     category,
		SKU:          valueobject.SKUFromTrusted(sku),
		ReceiptItems: receiptItems,
		IsActive:     isActive,
	}
	product.SetInternalID(internalID)
	product.CreatedAt = createdAt
	return product
}

// Update re-validates all invariants against the new field values before
// committing the mutation. A failed validation leaves the product untouched.
func (p *Product) Update(
	name string,
	price valueobject.Money,
	category ProductCategory,
	sku string,
	receiptItems []ReceiptItem,
) error {
	productName, err := valueobject.NewName(name)
	if err != nil {
		return err
	}
	productSKU, err := valueobject.NewSKU(sku)
	if err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	if err := validateReceiptItems(category, receiptItems); err != nil {
		return err
	}

	p.Name = productName
	p.Price = price
	p.Category = category
	p.SKU = productSKU
	p.ReceiptItems = receiptItems

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// Deactivate marks the product inactive. There is no reactivation path.
func (p *Product) Deactivate() error {
	if !p.IsActive {
		return shared.NewBusinessRuleError("deactivate", "Product is already inactive")
	}
	p.IsActive = false
	p.AddDomainEvent(NewProductDeletedEvent(p))
	return nil
}

// IngredientsCost returns the sum of the receipt item subtotals
func (p *Product) IngredientsCost() valueobject.Money {
	total := valueobject.ZeroMoney()
	for _, item := range p.ReceiptItems {
		total = total.Add(item.Subtotal())
	}
	return total
}

func validateCategory(category ProductCategory) error {
	for _, valid := range ProductCategories() {
		if category == valid {
			return nil
		}
	}
	return shared.NewValidationError("category", fmt.Sprintf("Invalid product category: %s", category))
}

// validateReceiptItems enforces the composition rules: at least one item, and
// every referenced ingredient flagged for the product's category.
func validateReceiptItems(category ProductCategory, items []ReceiptItem) error {
	if len(items) == 0 {
		return shared.NewValidationError("default_ingredient", "Product must have at least one receipt item")
	}
	for _, item := range items {
		if item.Ingredient == nil {
			return shared.NewValidationError("default_ingredient", "Receipt item ingredient cannot be nil")
		}
		if item.Quantity < 1 {
			return shared.NewValidationError("default_ingredient", "Receipt item quantity must be at least 1")
		}
		if !item.Ingredient.AppliesTo(category) {
			return shared.NewBusinessRuleError("product_composition",
				fmt.Sprintf("Ingredient %s must apply to %s",
					item.Ingredient.Name.Value(), strings.ToLower(string(category))))
		}
	}
	return nil
}

// String returns a short description for logging
func (p *Product) String() string {
	return fmt.Sprintf("Product(%s, %s, %s)", p.Name.Value(), p.Category, p.SKU.Value())
}
