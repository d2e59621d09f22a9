package catalog

import (
	"github.com/lanchonete/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated = "ProductCreated"
	EventTypeProductUpdated = "ProductUpdated"
	EventTypeProductDeleted = "ProductDeleted"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	SKU      string          `json:"sku"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct),
		Name:            product.Name.Value(),
		Category:        product.Category,
		SKU:             product.SKU.Value(),
	}
}

// ProductUpdatedEvent is published when a product is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	InternalID int64           `json:"internal_id"`
	Name       string          `json:"name"`
	Category   ProductCategory `json:"category"`
	SKU        string          `json:"sku"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	event := &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct),
		Name:            product.Name.Value(),
		Category:        product.Category,
		SKU:             product.SKU.Value(),
	}
	if product.HasInternalID() {
		event.InternalID = *product.InternalID
	}
	return event
}

// ProductDeletedEvent is published when a product is deactivated
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	InternalID int64  `json:"internal_id"`
	SKU        string `json:"sku"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	event := &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct),
		SKU:             product.SKU.Value(),
	}
	if product.HasInternalID() {
		event.InternalID = *product.InternalID
	}
	return event
}
