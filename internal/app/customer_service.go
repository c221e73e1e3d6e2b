package app

import (
	"context"

	"github.com/Tanmay000009/swe-fastfood/internal/clock"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer domain.Customer) error
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
}

type CustomerService struct {
	repo  CustomerRepository
	clock clock.Clock
}

func NewCustomerService(repo CustomerRepository, clk clock.Clock) *CustomerService {
	return &CustomerService{
		repo:  repo,
		clock: clk,
	}
}

type CreateCustomerInput struct {
	UserName string
	Email    string
	Phone    string
	Address  string
}

func (s *CustomerService) CreateCustomer(ctx context.Context, in CreateCustomerInput) (domain.Customer, error) {
	if in.UserName == "" {
		return domain.Customer{}, domain.ErrUserNameRequired
	}

	customer := domain.Customer{
		ID:        newID(),
		UserName:  in.UserName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	if id == "" {
		return domain.Customer{}, domain.ErrInvalidID
	}
	return s.repo.GetCustomer(ctx, id)
}
