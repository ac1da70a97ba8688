package service

import (
	"context"

	"floorquote/internal/model"
	"floorquote/internal/repository"
)

// CustomerService exposes the admin read surface over customers.
type CustomerService interface {
	List(ctx context.Context) ([]model.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.customerRepo.List(ctx)
}
