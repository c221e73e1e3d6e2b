package domain

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCustomerNotFound   = errors.New("customer not found")

	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidID       = errors.New("invalid id")

	ErrRestaurantNameRequired = errors.New("restaurant name required")
	ErrMenuItemNameRequired   = errors.New("menu item name required")
	ErrUserNameRequired       = errors.New("user name required")
	ErrUserNameTaken          = errors.New("user name already taken")

	ErrForbidden = errors.New("actor does not own this order")

	ErrIllegalTransition   = errors.New("illegal order status transition")
	ErrCancelWindowExpired = errors.New("cancellation window expired")
	ErrStatusConflict      = errors.New("order status changed concurrently")
)
