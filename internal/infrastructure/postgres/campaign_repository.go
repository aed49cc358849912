package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementação de CampaignRepository (usável com pool ou tx).
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

// Create persiste uma nova campanha.
func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, user_id, name, starts_at, ends_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.UserID, campaign.Name, campaign.StartsAt, campaign.EndsAt,
		campaign.Notes, campaign.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID obtém uma campanha por ID.
func (r *CampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	query := `
		SELECT id, user_id, name, starts_at, ends_at, notes, created_at
		FROM campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.StartsAt, &c.EndsAt, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// ListByUser lista campanhas do lojista com paginação.
func (r *CampaignRepo) ListByUser(userID string, limit, offset int) ([]*entity.Campaign, error) {
	query := `
		SELECT id, user_id, name, starts_at, ends_at, notes, created_at
		FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.StartsAt, &c.EndsAt, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
