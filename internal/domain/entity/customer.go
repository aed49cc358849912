package entity

import "time"

// Customer representa um cliente da loja.
type Customer struct {
	ID        string
	UserID    string
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
