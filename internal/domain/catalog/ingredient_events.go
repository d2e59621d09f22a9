package catalog

import (
	"github.com/lanchonete/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeIngredient = "Ingredient"

// Event type constants
const (
	EventTypeIngredientCreated = "IngredientCreated"
	EventTypeIngredientUpdated = "IngredientUpdated"
	EventTypeIngredientDeleted = "IngredientDeleted"
)

// IngredientCreatedEvent is published when a new ingredient is created
type IngredientCreatedEvent struct {
	shared.BaseDomainEvent
	Name string         `json:"name"`
	Type IngredientType `json:"ingredient_type"`
}

// NewIngredientCreatedEvent creates a new IngredientCreatedEvent
func NewIngredientCreatedEvent(ingredient *Ingredient) *IngredientCreatedEvent {
	return &IngredientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIngredientCreated, AggregateTypeIngredient),
		Name:            ingredient.Name.Value(),
		Type:            ingredient.Type,
	}
}

// IngredientUpdatedEvent is published when an ingredient is updated
type IngredientUpdatedEvent struct {
	shared.BaseDomainEvent
	InternalID int64          `json:"internal_id"`
	Name       string         `json:"name"`
	Type       IngredientType `json:"ingredient_type"`
}

// NewIngredientUpdatedEvent creates a new IngredientUpdatedEvent
func NewIngredientUpdatedEvent(ingredient *Ingredient) *IngredientUpdatedEvent {
	event := &IngredientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIngredientUpdated, AggregateTypeIngredient),
		Name:            ingredient.Name.Value(),
		Type:            ingredient.Type,
	}
	if ingredient.HasInternalID() {
		event.InternalID = *ingredient.InternalID
	}
	return event
}

// IngredientDeletedEvent is published when an ingredient is deactivated
type IngredientDeletedEvent struct {
	shared.BaseDomainEvent
	InternalID int64  `json:"internal_id"`
	Name       string `json:"name"`
}

// NewIngredientDeletedEvent creates a new IngredientDeletedEvent
func NewIngredientDeletedEvent(ingredient *Ingredient) *IngredientDeletedEvent {
	event := &IngredientDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIngredientDeleted, AggregateTypeIngredient),
		Name:            ingredient.Name.Value(),
	}
	if ingredient.HasInternalID() {
		event.InternalID = *ingredient.InternalID
	}
	return event
}
