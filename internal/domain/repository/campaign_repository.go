package repository

import "github.com/lojaviva/varejo-api/internal/domain/entity"

// CampaignRepository define a porta de persistência para Campaign.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id string) (*entity.Campaign, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Campaign, error)
}
