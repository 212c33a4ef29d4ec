package model

// Role identifies the access level of a user account.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// User represents a customer or back-office account.
// Passwords are stored in plaintext because this models a demo application
// with no real authentication backend.
type User struct {
	ID             string               `json:"id"`
	Name           string               `json:"name" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Password       string               `json:"password,omitempty"`
	Role           Role                 `json:"role" validate:"oneof=user admin manager"`
	Phone          string               `json:"phone,omitempty"`
	Address        string               `json:"address,omitempty"`
	LoyaltyPoints  int                  `json:"loyaltyPoints"`
	Wishlist       []int                `json:"wishlist,omitempty"`
	PaymentMethods []SavedPaymentMethod `json:"paymentMethods,omitempty"`
}

// SavedPaymentMethod is a card on file for a user.
type SavedPaymentMethod struct {
	ID     string `json:"id"`
	Last4  string `json:"last4"`
	Brand  string `json:"brand"`
	Expiry string `json:"expiry"`
}
