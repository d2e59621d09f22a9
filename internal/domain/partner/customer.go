package partner

import (
	"fmt"
	"time"

	"github.com/lanchonete/backend/internal/domain/shared"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
)

// DefaultAnonymousEmail is the sentinel address of the single anonymous
// customer unless overridden through configuration.
const DefaultAnonymousEmail = "anonymous@lanchonete.local"

var anonymousEmail = DefaultAnonymousEmail

// SetAnonymousEmail overrides the anonymous customer sentinel address. Called
// once from configuration wiring at startup; empty values are ignored.
func SetAnonymousEmail(email string) {
	if email != "" {
		anonymousEmail = email
	}
}

// AnonymousEmail returns the sentinel address of the anonymous customer
func AnonymousEmail() string {
	return anonymousEmail
}

// AnonymousDisplayName is what DisplayName returns for the anonymous customer
const AnonymousDisplayName = "Anonymous Customer"

// deletedFirstName replaces the first name when a customer is soft-deleted
const deletedFirstName = "Deleted"

// Customer is the aggregate root for customers. At most one anonymous
// customer exists system-wide; the repository enforces that through
// GetAnonymous, not the entity itself.
type Customer struct {
	shared.BaseAggregateRoot
	FirstName   valueobject.Name
	LastName    valueobject.Name
	Email       valueobject.Email
	Document    valueobject.Document
	IsActive    bool
	IsAnonymous bool
}

// NewRegisteredCustomer creates a validated, registered (non-anonymous)
// customer from raw input. A registered customer must have a non-empty email.
func NewRegisteredCustomer(firstName, lastName, email, document string) (*Customer, error) {
	first, err := valueobject.NewName(firstName)
	if err != nil {
		return nil, err
	}
	last, err := valueobject.NewName(lastName)
	if err != nil {
		return nil, err
	}
	mail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	doc, err := valueobject.NewDocument(document)
	if err != nil {
		return nil, err
	}
	if mail.IsEmpty() {
		return nil, shared.NewValidationError("email", "Registered customer must have an email")
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FirstName:         first,
		LastName:          last,
		Email:             mail,
		Document:          doc,
		IsActive:          true,
		IsAnonymous:       false,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// NewAnonymousCustomer creates the anonymous sentinel customer. Its email is
// fixed to the configured anonymous address.
func NewAnonymousCustomer() *Customer {
	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FirstName:         valueobject.NameFromTrusted("Anonymous"),
		LastName:          valueobject.NameFromTrusted("Customer"),
		Email:             valueobject.EmailFromTrusted(anonymousEmail),
		Document:          valueobject.DocumentFromTrusted(""),
		IsActive:          true,
		IsAnonymous:       true,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer
}

// ReconstructCustomer rebuilds a customer from storage without re-validating.
// Storage data is trusted; externally-supplied input must go through the
// NewRegisteredCustomer factory instead.
func ReconstructCustomer(
	internalID int64,
	firstName, lastName, email, document string,
	isActive, isAnonymous bool,
	createdAt time.Time,
) *Customer {
	customer := &Customer{
		FirstName:   valueobject.NameFromTrusted(firstName),
		LastName:    valueobject.NameFromTrusted(lastName),
		Email:       valueobject.EmailFromTrusted(email),
		Document:    valueobject.DocumentFromTrusted(document),
		IsActive:    isActive,
		IsAnonymous: isAnonymous,
	}
	customer.SetInternalID(internalID)
	customer.CreatedAt = createdAt
	return customer
}

// FullName returns the customer's first and last name joined by a space
func (c *Customer) FullName() string {
	return c.FirstName.Value() + " " + c.LastName.Value()
}

// DisplayName returns the name shown on orders and receipts
func (c *Customer) DisplayName() string {
	if c.IsAnonymous {
		return AnonymousDisplayName
	}
	return c.FullName()
}

// IsRegistered returns true for non-anonymous customers
func (c *Customer) IsRegistered() bool {
	return !c.IsAnonymous
}

// CanPlaceOrder reports whether the customer is eligible to place orders:
// an active anonymous customer always is; a registered one needs full contact
// info (non-empty email and document).
func (c *Customer) CanPlaceOrder() bool {
	if !c.IsActive {
		return false
	}
	if c.IsAnonymous {
		return true
	}
	return !c.Email.IsEmpty() && !c.Document.IsEmpty()
}

// SoftDelete deactivates the customer and scrubs its identifying fields.
// It fails for an already inactive customer, a customer that was never
// persisted, and the anonymous customer, which is never deletable.
func (c *Customer) SoftDelete() error {
	if !c.IsActive {
		return shared.NewBusinessRuleError("soft_delete", "Cannot delete an inactive customer")
	}
	if !c.HasInternalID() {
		return shared.NewBusinessRuleError("soft_delete", "Cannot delete a customer without ID")
	}
	if c.IsAnonymous {
		return shared.NewBusinessRuleError("soft_delete", "Cannot delete the anonymous customer")
	}

	placeholder := fmt.Sprintf("deleted.%d@%s", *c.InternalID, valueobject.EmailFromTrusted(anonymousEmail).Domain())
	c.FirstName = valueobject.NameFromTrusted(deletedFirstName)
	c.Email = valueobject.EmailFromTrusted(placeholder)
	c.Document = valueobject.DocumentFromTrusted("")
	c.IsActive = false

	c.AddDomainEvent(NewCustomerDeletedEvent(c))

	return nil
}

// String returns a short description for logging
func (c *Customer) String() string {
	if c.HasInternalID() {
		return fmt.Sprintf("Customer(%d, %s)", *c.InternalID, c.DisplayName())
	}
	return fmt.Sprintf("Customer(unsaved, %s)", c.DisplayName())
}
