package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Tanmay000009/swe-fastfood/internal/app"
	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

type Customers interface {
	CreateCustomer(ctx context.Context, in app.CreateCustomerInput) (domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
}

type customerResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		UserName:  c.UserName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

type createCustomerRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// HandleCreateCustomer returns the handler for POST /customers.
func HandleCreateCustomer(svc Customers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCustomerRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		customer, err := svc.CreateCustomer(r.Context(), app.CreateCustomerInput{
			UserName: req.UserName,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
	}
}

// HandleGetCustomer returns the handler for GET /customers/{id}.
func HandleGetCustomer(svc Customers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := svc.GetCustomer(r.Context(), r.PathValue("id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCustomerResponse(customer))
	}
}
