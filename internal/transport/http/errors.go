package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidID           = "invalid_id"
	codeEmptyOrder          = "empty_order"
	codeInvalidQuantity     = "invalid_quantity"
	codeInvalidPrice        = "invalid_price"
	codeNameRequired        = "name_required"
	codeUserNameTaken       = "user_name_taken"
	codeOrderNotFound       = "order_not_found"
	codeMenuItemNotFound    = "menu_item_not_found"
	codeRestaurantNotFound  = "restaurant_not_found"
	codeCustomerNotFound    = "customer_not_found"
	codeUnauthorized        = "unauthorized"
	codeForbidden           = "forbidden"
	codeIllegalTransition   = "illegal_transition"
	codeCancelWindowExpired = "cancellation_window_expired"
	codeStatusConflict      = "status_conflict"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps the error taxonomy onto HTTP statuses and machine
// codes. Unexpected errors become opaque 500s so driver details never reach
// the client.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, codeEmptyOrder, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
	case errors.Is(err, domain.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
	case errors.Is(err, domain.ErrRestaurantNameRequired),
		errors.Is(err, domain.ErrMenuItemNameRequired),
		errors.Is(err, domain.ErrUserNameRequired):
		writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
	case errors.Is(err, domain.ErrMenuItemNotFound):
		writeError(w, http.StatusNotFound, codeMenuItemNotFound, err.Error())
	case errors.Is(err, domain.ErrRestaurantNotFound):
		writeError(w, http.StatusNotFound, codeRestaurantNotFound, err.Error())
	case errors.Is(err, domain.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, codeCustomerNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, domain.ErrUserNameTaken):
		writeError(w, http.StatusConflict, codeUserNameTaken, err.Error())
	case errors.Is(err, domain.ErrIllegalTransition):
		writeError(w, http.StatusConflict, codeIllegalTransition, err.Error())
	case errors.Is(err, domain.ErrCancelWindowExpired):
		writeError(w, http.StatusConflict, codeCancelWindowExpired, err.Error())
	case errors.Is(err, domain.ErrStatusConflict):
		writeError(w, http.StatusConflict, codeStatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
