package partner

import (
	"time"

	"github.com/lanchonete/backend/internal/domain/partner"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Document  string `json:"document" validate:"omitempty,min=11"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	InternalID int64  `json:"internal_id" validate:"required,min=1"`
	FirstName  string `json:"first_name" validate:"required,min=1"`
	LastName   string `json:"last_name" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	Document   string `json:"document" validate:"omitempty,min=11"`
}

// CustomerResponse represents a customer in responses
type CustomerResponse struct {
	InternalID        *int64    `json:"internal_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
	DisplayName       string    `json:"display_name"`
	Email             string    `json:"email"`
	Document          string    `json:"document"`
	DocumentFormatted string    `json:"document_formatted"`
	IsActive          bool      `json:"is_active"`
	IsAnonymous       bool      `json:"is_anonymous"`
	CanPlaceOrder     bool      `json:"can_place_order"`
	CreatedAt         time.Time `json:"created_at"`
}

// CustomerListResponse represents a list of customers in responses
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	TotalCount int                `json:"total_count"`
}

// ToCustomerResponse converts a customer entity to a response DTO
func ToCustomerResponse(customer *partner.Customer) CustomerResponse {
	return CustomerResponse{
		InternalID:        customer.InternalID,
		FirstName:         customer.FirstName.Value(),
		LastName:          customer.LastName.Value(),
		FullName:          customer.FullName(),
		DisplayName:       customer.DisplayName(),
		Email:             customer.Email.Value(),
		Document:          customer.Document.Value(),
		DocumentFormatted: customer.Document.Formatted(),
		IsActive:          customer.IsActive,
		IsAnonymous:       customer.IsAnonymous,
		CanPlaceOrder:     customer.CanPlaceOrder(),
		CreatedAt:         customer.CreatedAt,
	}
}

// ToCustomerListResponse converts customer entities to a list response DTO
func ToCustomerListResponse(customers []*partner.Customer) CustomerListResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, ToCustomerResponse(customer))
	}
	return CustomerListResponse{
		Customers:  responses,
		TotalCount: len(responses),
	}
}
