package dto

import "time"

// RegisterRequest cadastro de lojista.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	StoreName string `json:"store_name"`
	StoreSlug string `json:"store_slug"`
	WhatsApp  string `json:"whatsapp"`
}

// LoginRequest login de lojista.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuário nas respostas (sem hash de senha).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	StoreName string    `json:"store_name"`
	StoreSlug string    `json:"store_slug"`
	WhatsApp  string    `json:"whatsapp"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
