package domain

type ActorKind string

const (
	ActorCustomer ActorKind = "customer"
	ActorOwner    ActorKind = "owner"
)

// Actor identifies who is requesting an order transition. Kind disambiguates
// the ID: a customer ID for customers, an owner ID for restaurant owners.
type Actor struct {
	Kind ActorKind
	ID   string
}
