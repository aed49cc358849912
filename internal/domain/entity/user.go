package entity

import "time"

// User representa o lojista dono dos dados. Toda consulta é escopada por User.ID.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	StoreName    string // nome exibido na vitrine pública
	StoreSlug    string // slug da URL pública (/store/:slug)
	WhatsApp     string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
