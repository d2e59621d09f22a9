package memory

import (
	"context"
	"sync"

	"github.com/lanchonete/backend/internal/domain/partner"
)

// CustomerRepository is an in-memory implementation of
// partner.CustomerRepository. Internal ids are assigned monotonically on the
// first save. Safe for concurrent use.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[int64]*partner.Customer
	nextID    int64
}

// NewCustomerRepository creates an empty in-memory customer repository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[int64]*partner.Customer),
	}
}

// FindByID finds a customer by its internal id, nil when absent
func (r *CustomerRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*partner.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok || (!includeInactive && !customer.IsActive) {
		return nil, nil
	}
	return customer, nil
}

// FindByDocument finds a customer by its bare-digit document value
func (r *CustomerRepository) FindByDocument(ctx context.Context, document string, includeInactive bool) (*partner.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.Document.IsEmpty() || customer.Document.Value() != document {
			continue
		}
		if !includeInactive && !customer.IsActive {
			continue
		}
		return customer, nil
	}
	return nil, nil
}

// FindByEmail finds a customer by email address
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string, includeInactive bool) (*partner.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.Email.IsEmpty() || customer.Email.Value() != email {
			continue
		}
		if !includeInactive && !customer.IsActive {
			continue
		}
		return customer, nil
	}
	return nil, nil
}

// FindAll returns all customers
func (r *CustomerRepository) FindAll(ctx context.Context, includeInactive bool) ([]*partner.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*partner.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		if !includeInactive && !customer.IsActive {
			continue
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// ExistsByDocument checks if a customer with the given document exists
func (r *CustomerRepository) ExistsByDocument(ctx context.Context, document string, includeInactive bool) (bool, error) {
	customer, err := r.FindByDocument(ctx, document, includeInactive)
	return customer != nil, err
}

// ExistsByEmail checks if a customer with the given email exists
func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string, includeInactive bool) (bool, error) {
	customer, err := r.FindByEmail(ctx, email, includeInactive)
	return customer != nil, err
}

// Save creates or updates a customer, assigning the internal id on the first
// save
func (r *CustomerRepository) Save(ctx context.Context, customer *partner.Customer) (*partner.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !customer.HasInternalID() {
		r.nextID++
		customer.SetInternalID(r.nextID)
	}
	r.customers[*customer.InternalID] = customer
	return customer, nil
}

// Delete soft-deletes a customer by id, returning false when absent or
// already inactive
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[id]
	if !ok || !customer.IsActive {
		return false, nil
	}
	if err := customer.SoftDelete(); err != nil {
		return false, err
	}
	return true, nil
}

// GetAnonymous returns the single anonymous customer, creating it on first
// use
func (r *CustomerRepository) GetAnonymous(ctx context.Context) (*partner.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.customers {
		if customer.IsAnonymous && customer.IsActive {
			return customer, nil
		}
	}

	anonymous := partner.NewAnonymousCustomer()
	r.nextID++
	anonymous.SetInternalID(r.nextID)
	r.customers[r.nextID] = anonymous
	return anonymous, nil
}
