package partner

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lanchonete/backend/internal/domain/partner"
	"github.com/lanchonete/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Create creates a new registered customer, enforcing document and email
// uniqueness and the order-eligibility rule
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	s.logger.Info("creating customer",
		zap.String("first_name", req.FirstName),
		zap.String("email", req.Email))

	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError("request", err.Error())
	}

	customer, err := partner.NewRegisteredCustomer(req.FirstName, req.LastName, req.Email, req.Document)
	if err != nil {
		return nil, err
	}

	if !customer.Document.IsEmpty() {
		exists, err := s.customerRepo.ExistsByDocument(ctx, customer.Document.Value(), false)
		if err != nil {
			return nil, err
		}
		if exists {
			s.logger.Warn("customer creation failed, document already exists",
				zap.String("document", customer.Document.Formatted()))
			return nil, shared.NewDomainError("ALREADY_EXISTS",
				fmt.Sprintf("Customer with document %s already exists", customer.Document.Value()))
		}
	}

	exists, err := s.customerRepo.ExistsByEmail(ctx, customer.Email.Value(), false)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("customer creation failed, email already exists",
			zap.String("email", customer.Email.Value()))
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Customer with email %s already exists", customer.Email.Value()))
	}

	if !customer.CanPlaceOrder() {
		s.logger.Warn("customer creation failed, order-eligibility rule not met")
		return nil, shared.NewBusinessRuleError("order_eligibility",
			"Customer does not meet requirements to place orders")
	}

	saved, err := s.customerRepo.Save(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.Int64p("customer_id", saved.InternalID),
		zap.String("full_name", saved.FullName()))

	response := ToCustomerResponse(saved)
	return &response, nil
}

// Get retrieves a customer by internal id
func (s *CustomerService) Get(ctx context.Context, id int64, includeInactive bool) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Customer with internal_id %d not found", id))
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByDocument retrieves a customer by its document value
func (s *CustomerService) GetByDocument(ctx context.Context, document string, includeInactive bool) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByDocument(ctx, document, includeInactive)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Customer with document %s not found", document))
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Update replaces a customer's fields, enforcing existence and uniqueness
func (s *CustomerService) Update(ctx context.Context, req UpdateCustomerRequest) (*CustomerResponse, error) {
	s.logger.Info("updating customer", zap.Int64("customer_id", req.InternalID))

	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError("request", err.Error())
	}

	existing, err := s.customerRepo.FindByID(ctx, req.InternalID, true)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Customer with internal_id %d not found", req.InternalID))
	}

	customer, err := partner.NewRegisteredCustomer(req.FirstName, req.LastName, req.Email, req.Document)
	if err != nil {
		return nil, err
	}
	customer.SetInternalID(req.InternalID)
	customer.CreatedAt = existing.CreatedAt
	// The rebuild raised a created event; this is an update.
	customer.ClearDomainEvents()
	customer.AddDomainEvent(partner.NewCustomerUpdatedEvent(customer))

	if !customer.Document.IsEmpty() {
		other, err := s.customerRepo.FindByDocument(ctx, customer.Document.Value(), true)
		if err != nil {
			return nil, err
		}
		if other != nil && other.InternalID != nil && *other.InternalID != req.InternalID {
			return nil, shared.NewDomainError("ALREADY_EXISTS",
				fmt.Sprintf("Document %s is already used by another customer", customer.Document.Value()))
		}
	}

	other, err := s.customerRepo.FindByEmail(ctx, customer.Email.Value(), true)
	if err != nil {
		return nil, err
	}
	if other != nil && other.InternalID != nil && *other.InternalID != req.InternalID {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Email %s is already used by another customer", customer.Email.Value()))
	}

	if !customer.CanPlaceOrder() {
		return nil, shared.NewBusinessRuleError("order_eligibility",
			"Customer does not meet requirements to place orders")
	}

	saved, err := s.customerRepo.Save(ctx, customer)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(saved)
	return &response, nil
}

// Delete soft-deletes a customer through the repository
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting customer", zap.Int64("customer_id", id))

	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("Customer with internal_id %d not found", id))
	}
	return nil
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context, includeInactive bool) (*CustomerListResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	response := ToCustomerListResponse(customers)
	return &response, nil
}

// GetAnonymous returns the single anonymous customer, creating it on first
// use. The repository guarantees idempotence.
func (s *CustomerService) GetAnonymous(ctx context.Context) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetAnonymous(ctx)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}
