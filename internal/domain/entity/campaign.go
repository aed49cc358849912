package entity

import "time"

// Campaign representa uma campanha de vendas (ex. liquidação de inverno).
// Movimentos de venda podem referenciá-la via CampaignID.
type Campaign struct {
	ID        string
	UserID    string
	Name      string
	StartsAt  *time.Time
	EndsAt    *time.Time
	Notes     string
	CreatedAt time.Time
}
