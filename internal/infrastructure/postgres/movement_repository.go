package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, user_id, customer_id, COALESCE(product_id, ''), product_name, brand, size, type, quantity,
	sale_price, total_revenue, sale_group_id, payment_method, installments_count, campaign_id, notes, created_at`

// Create persiste um novo movimento. product_id vazio (recibo de parcela) vira NULL.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, user_id, customer_id, product_id, product_name, brand, size, type, quantity,
			sale_price, total_revenue, sale_group_id, payment_method, installments_count, campaign_id, notes, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.CustomerID, movement.ProductID, movement.ProductName,
		movement.Brand, movement.Size, movement.Type, movement.Quantity,
		movement.SalePrice, movement.TotalRevenue, movement.SaleGroupID, movement.PaymentMethod,
		movement.InstallmentsCount, movement.CampaignID, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtém um movimento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(scanTargets(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByCustomer lista todos os movimentos do cliente (vendas e recibos).
func (r *MovementRepo) ListByCustomer(userID, customerID string) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND customer_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list movements by customer: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAvailable lista vendas (saida) ainda sem cliente associado.
func (r *MovementRepo) ListAvailable(userID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE user_id = $1 AND customer_id IS NULL AND type = 'saida'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list available movements: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListBySaleGroup lista os movimentos de um grupo de venda.
func (r *MovementRepo) ListBySaleGroup(userID, saleGroupID string) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE user_id = $1 AND sale_group_id = $2 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, userID, saleGroupID)
	if err != nil {
		return nil, fmt.Errorf("list movements by sale group: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// AssignCustomer associa (ou desassocia, com nil) todos os movimentos do grupo a um cliente.
// As parcelas do grupo acompanham para manter o vínculo consistente.
func (r *MovementRepo) AssignCustomer(userID, saleGroupID string, customerID *string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`UPDATE movements SET customer_id = $3 WHERE user_id = $1 AND sale_group_id = $2`,
		userID, saleGroupID, customerID)
	if err != nil {
		return fmt.Errorf("assign customer to sale group: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`UPDATE installments SET customer_id = $3 WHERE user_id = $1 AND sale_group_id = $2`,
		userID, saleGroupID, customerID)
	if err != nil {
		return fmt.Errorf("assign customer to installments: %w", err)
	}
	return nil
}

// AssignCustomerToMovement associa um movimento avulso (sem grupo) a um cliente.
func (r *MovementRepo) AssignCustomerToMovement(userID, movementID string, customerID *string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movements SET customer_id = $3 WHERE user_id = $1 AND id = $2`,
		userID, movementID, customerID)
	if err != nil {
		return fmt.Errorf("assign customer to movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) scanMany(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(scanTargets(&m)...); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// scanTargets devolve os destinos de Scan na ordem de movementColumns.
// product_id NULL (recibo) chega como '' pelo COALESCE da projeção.
func scanTargets(m *entity.Movement) []any {
	return []any{
		&m.ID, &m.UserID, &m.CustomerID, &m.ProductID, &m.ProductName, &m.Brand, &m.Size,
		&m.Type, &m.Quantity, &m.SalePrice, &m.TotalRevenue, &m.SaleGroupID, &m.PaymentMethod,
		&m.InstallmentsCount, &m.CampaignID, &m.Notes, &m.CreatedAt,
	}
}
