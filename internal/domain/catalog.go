package domain

import "time"

// Restaurant is a sellable storefront owned by a single owner.
type Restaurant struct {
	ID          string
	OwnerID     string
	Name        string
	Address     string
	Zip         string
	Phone       string
	Cuisine     string
	Description string
	CreatedAt   time.Time
}

// MenuItem is a priced item on a restaurant's menu. Price is in minor
// currency units.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Price        int64
	Category     string
	Description  string
	CreatedAt    time.Time
}

// Customer is an ordering account. Credentials live with the identity
// collaborator, not here.
type Customer struct {
	ID        string
	UserName  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
