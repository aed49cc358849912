package dto

import "time"

// CreateCampaignRequest criação de campanha.
type CreateCampaignRequest struct {
	Name     string     `json:"name"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Notes    string     `json:"notes"`
}

// CampaignResponse campanha nas respostas.
type CampaignResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}
