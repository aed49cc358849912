package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

// CampaignUseCase casos de uso de campanhas de venda.
type CampaignUseCase struct {
	repo repository.CampaignRepository
}

// NewCampaignUseCase constrói o caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Create cria uma campanha.
func (uc *CampaignUseCase) Create(userID string, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	campaign := &entity.Campaign{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// List lista campanhas do lojista.
func (uc *CampaignUseCase) List(userID string, limit, offset int) ([]*dto.CampaignResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignResponse(c))
	}
	return out, nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartsAt:  c.StartsAt,
		EndsAt:    c.EndsAt,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
