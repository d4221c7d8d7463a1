package service

import (
	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/repository"
)

// CustomerService customer profile queries
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates the customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// GetByID fetches a customer with the linked user
func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// GetByUserID fetches the customer profile behind a user account
func (s *CustomerService) GetByUserID(userID uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// List paginated customer listing
func (s *CustomerService) List(page, pageSize int) ([]models.Customer, int64, error) {
	return s.customerRepo.List(page, pageSize)
}
