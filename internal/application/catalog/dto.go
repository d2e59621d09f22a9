package catalog

import (
	"time"

	"github.com/lanchonete/backend/internal/domain/catalog"
)

// =============================================================================
// Ingredient DTOs
// =============================================================================

// CreateIngredientRequest represents a request to create a new ingredient
type CreateIngredientRequest struct {
	Name             string `json:"name" validate:"required,min=1"`
	Price            string `json:"price" validate:"required"`
	Type             string `json:"type" validate:"required"`
	AppliesToBurger  bool   `json:"applies_to_burger"`
	AppliesToSide    bool   `json:"applies_to_side"`
	AppliesToDrink   bool   `json:"applies_to_drink"`
	AppliesToDessert bool   `json:"applies_to_dessert"`
}

// UpdateIngredientRequest represents a request to update an ingredient
type UpdateIngredientRequest struct {
	InternalID       int64  `json:"internal_id" validate:"required,min=1"`
	Name             string `json:"name" validate:"required,min=1"`
	Price            string `json:"price" validate:"required"`
	Type             string `json:"type" validate:"required"`
	AppliesToBurger  bool   `json:"applies_to_burger"`
	AppliesToSide    bool   `json:"applies_to_side"`
	AppliesToDrink   bool   `json:"applies_to_drink"`
	AppliesToDessert bool   `json:"applies_to_dessert"`
}

// IngredientResponse represents an ingredient in responses
type IngredientResponse struct {
	InternalID       *int64    `json:"internal_id"`
	Name             string    `json:"name"`
	Price            string    `json:"price"`
	Type             string    `json:"type"`
	IsActive         bool      `json:"is_active"`
	AppliesToBurger  bool      `json:"applies_to_burger"`
	AppliesToSide    bool      `json:"applies_to_side"`
	AppliesToDrink   bool      `json:"applies_to_drink"`
	AppliesToDessert bool      `json:"applies_to_dessert"`
	CreatedAt        time.Time `json:"created_at"`
}

// IngredientListResponse represents a list of ingredients in responses
type IngredientListResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
	TotalCount  int                  `json:"total_count"`
}

// ToIngredientResponse converts an ingredient entity to a response DTO
func ToIngredientResponse(ingredient *catalog.Ingredient) IngredientResponse {
	return IngredientResponse{
		InternalID:       ingredient.InternalID,
		Name:             ingredient.Name.Value(),
		Price:            ingredient.Price.String(),
		Type:             string(ingredient.Type),
		IsActive:         ingredient.IsActive,
		AppliesToBurger:  ingredient.AppliesToBurger,
		AppliesToSide:    ingredient.AppliesToSide,
		AppliesToDrink:   ingredient.AppliesToDrink,
		AppliesToDessert: ingredient.AppliesToDessert,
		CreatedAt:        ingredient.CreatedAt,
	}
}

// ToIngredientListResponse converts ingredient entities to a list response DTO
func ToIngredientListResponse(ingredients []*catalog.Ingredient) IngredientListResponse {
	responses := make([]IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, ToIngredientResponse(ingredient))
	}
	return IngredientListResponse{
		Ingredients: responses,
		TotalCount:  len(responses),
	}
}

// =============================================================================
// Product DTOs
// =============================================================================

// ReceiptItemRequest references an ingredient by id with a quantity
type ReceiptItemRequest struct {
	IngredientID int64 `json:"ingredient_id" validate:"required,min=1"`
	Quantity     int   `json:"quantity" validate:"required,min=1"`
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name         string               `json:"name" validate:"required,min=1"`
	Price        string               `json:"price" validate:"required"`
	Category     string               `json:"category" validate:"required"`
	SKU          string               `json:"sku" validate:"required"`
	ReceiptItems []ReceiptItemRequest `json:"receipt_items" validate:"required,min=1,dive"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	InternalID   int64                `json:"internal_id" validate:"required,min=1"`
	Name         string               `json:"name" validate:"required,min=1"`
	Price        string               `json:"price" validate:"required"`
	Category     string               `json:"category" validate:"required"`
	SKU          string               `json:"sku" validate:"required"`
	ReceiptItems []ReceiptItemRequest `json:"receipt_items" validate:"required,min=1,dive"`
}

// ReceiptItemResponse represents a receipt item in responses
type ReceiptItemResponse struct {
	IngredientID   *int64 `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       int    `json:"quantity"`
	Subtotal       string `json:"subtotal"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	InternalID      *int64                `json:"internal_id"`
	Name            string                `json:"name"`
	Price           string                `json:"price"`
	Category        string                `json:"category"`
	SKU             string                `json:"sku"`
	ReceiptItems    []ReceiptItemResponse `json:"receipt_items"`
	IngredientsCost string                `json:"ingredients_cost"`
	IsActive        bool                  `json:"is_active"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ProductListResponse represents a list of products in responses
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
}

// ToProductResponse converts a product entity to a response DTO
func ToProductResponse(product *catalog.Product) ProductResponse {
	items := make([]ReceiptItemResponse, 0, len(product.ReceiptItems))
	for _, item := range product.ReceiptItems {
		items = append(items, ReceiptItemResponse{
			IngredientID:   item.Ingredient.InternalID,
			IngredientName: item.Ingredient.Name.Value(),
			Quantity:       item.Quantity,
			Subtotal:       item.Subtotal().String(),
		})
	}
	return ProductResponse{
		InternalID:      product.InternalID,
		Name:            product.Name.Value(),
		Price:           product.Price.String(),
		Category:        string(product.Category),
		SKU:             product.SKU.Value(),
		ReceiptItems:    items,
		IngredientsCost: product.IngredientsCost().String(),
		IsActive:        product.IsActive,
		CreatedAt:       product.CreatedAt,
	}
}

// ToProductListResponse converts product entities to a list response DTO
func ToProductListResponse(products []*catalog.Product) ProductListResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ToProductResponse(product))
	}
	return ProductListResponse{
		Products:   responses,
		TotalCount: len(responses),
	}
}
