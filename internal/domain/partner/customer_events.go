package partner

import (
	"github.com/lanchonete/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCustomer = "Customer"

// Event type constants
const (
	EventTypeCustomerCreated = "CustomerCreated"
	EventTypeCustomerUpdated = "CustomerUpdated"
	EventTypeCustomerDeleted = "CustomerDeleted"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	FullName    string `json:"full_name"`
	Email       string `json:"email,omitempty"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer),
		FullName:        customer.FullName(),
		Email:           customer.Email.Value(),
		IsAnonymous:     customer.IsAnonymous,
	}
}

// CustomerUpdatedEvent is published when a customer is updated
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	InternalID int64  `json:"internal_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
}

// NewCustomerUpdatedEvent creates a new CustomerUpdatedEvent
func NewCustomerUpdatedEvent(customer *Customer) *CustomerUpdatedEvent {
	event := &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerUpdated, AggregateTypeCustomer),
		FullName:        customer.FullName(),
		Email:           customer.Email.Value(),
	}
	if customer.HasInternalID() {
		event.InternalID = *customer.InternalID
	}
	return event
}

// CustomerDeletedEvent is published when a customer is soft-deleted
type CustomerDeletedEvent struct {
	shared.BaseDomainEvent
	InternalID int64 `json:"internal_id"`
}

// NewCustomerDeletedEvent creates a new CustomerDeletedEvent
func NewCustomerDeletedEvent(customer *Customer) *CustomerDeletedEvent {
	event := &CustomerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerDeleted, AggregateTypeCustomer),
	}
	if customer.HasInternalID() {
		event.InternalID = *customer.InternalID
	}
	return event
}
