package partner

import (
	"context"
)

// CustomerRepository defines the interface for customer persistence.
// Implementations provide at-most-one-writer-per-save semantics and atomic
// existence checks; the domain does not guard against check-then-save races.
type CustomerRepository interface {
	// FindByID finds a customer by its internal id, nil when absent
	FindByID(ctx context.Context, id int64, includeInactive bool) (*Customer, error)

	// FindByDocument finds a customer by its bare-digit document value
	FindByDocument(ctx context.Context, document string, includeInactive bool) (*Customer, error)

	// FindByEmail finds a customer by email address
	FindByEmail(ctx context.Context, email string, includeInactive bool) (*Customer, error)

	// FindAll returns all customers
	FindAll(ctx context.Context, includeInactive bool) ([]*Customer, error)

	// ExistsByDocument checks if a customer with the given document exists
	ExistsByDocument(ctx context.Context, document string, includeInactive bool) (bool, error)

	// ExistsByEmail checks if a customer with the given email exists
	ExistsByEmail(ctx context.Context, email string, includeInactive bool) (bool, error)

	// Save creates or updates a customer, assigning the internal id on the
	// first save
	Save(ctx context.Context, customer *Customer) (*Customer, error)

	// Delete soft-deletes a customer by id, returning false when absent
	Delete(ctx context.Context, id int64) (bool, error)

	// GetAnonymous returns the single anonymous customer, creating it when it
	// does not exist yet. The operation is idempotent.
	GetAnonymous(ctx context.Context) (*Customer, error)
}
