package app

import (
	"context"
	"testing"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/clock"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type fakeCustomerRepo struct {
	customers map[string]domain.Customer
	byName    map[string]struct{}
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: make(map[string]domain.Customer),
		byName:    make(map[string]struct{}),
	}
}

func (f *fakeCustomerRepo) CreateCustomer(_ context.Context, customer domain.Customer) error {
	if _, taken := f.byName[customer.UserName]; taken {
		return domain.ErrUserNameTaken
	}
	f.customers[customer.ID] = customer
	f.byName[customer.UserName] = struct{}{}
	return nil
}

func (f *fakeCustomerRepo) GetCustomer(_ context.Context, id string) (domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func TestCustomerService(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create and get round-trip", func(t *testing.T) {
		svc := NewCustomerService(newFakeCustomerRepo(), clock.NewFixed(now))

		created, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
			UserName: "alice",
			Email:    "alice@example.com",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.ID == "" || !created.CreatedAt.Equal(now) {
			t.Fatalf("expected id and timestamp set, got %+v", created)
		}

		got, err := svc.GetCustomer(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.UserName != "alice" {
			t.Fatalf("unexpected customer: %+v", got)
		}
	})

	t.Run("user name required", func(t *testing.T) {
		svc := NewCustomerService(newFakeCustomerRepo(), clock.NewFixed(now))

		_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{Email: "x@example.com"})
		if err != domain.ErrUserNameRequired {
			t.Fatalf("expected ErrUserNameRequired, got %v", err)
		}
	})

	t.Run("duplicate user name surfaces repository error", func(t *testing.T) {
		svc := NewCustomerService(newFakeCustomerRepo(), clock.NewFixed(now))

		if _, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{UserName: "alice"}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{UserName: "alice"})
		if err != domain.ErrUserNameTaken {
			t.Fatalf("expected ErrUserNameTaken, got %v", err)
		}
	})

	t.Run("get with empty id rejected", func(t *testing.T) {
		svc := NewCustomerService(newFakeCustomerRepo(), clock.NewFixed(now))

		if _, err := svc.GetCustomer(context.Background(), ""); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}
