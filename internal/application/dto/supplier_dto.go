package dto

import "time"

// CreateSupplierRequest criação de fornecedor.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// UpdateSupplierRequest atualização de fornecedor.
type UpdateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// SupplierResponse fornecedor nas respostas.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
