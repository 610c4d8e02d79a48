package response

import (
	"time"
)

// CustomerProfile never includes the password hash
type CustomerProfile struct {
	CustomerID int64             `json:"customer_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      *string           `json:"phone"`
	Address    *string           `json:"address"`
	LastUpdate time.Time         `json:"last_update"`
	UserType   string            `json:"user_type,omitempty"`
	Links      map[string]string `json:"links,omitempty"`
}

type AdminProfile struct {
	AdminID    int64     `json:"admin_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	LastUpdate time.Time `json:"last_update"`
	UserType   string    `json:"user_type,omitempty"`
}

// AuthResponse is returned from register and both login endpoints
type AuthResponse struct {
	User     any    `json:"user"`
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}

// VerifyResponse echoes the verified claims back to the caller
type VerifyResponse struct {
	UserID   int64   `json:"user_id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	UserType string  `json:"user_type"`
	Role     *string `json:"role"`
}
