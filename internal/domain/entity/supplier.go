package entity

import "time"

// Supplier representa um fornecedor da loja.
type Supplier struct {
	ID        string
	UserID    string
	Name      string
	Contact   string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
