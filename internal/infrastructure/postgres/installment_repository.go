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

var _ repository.InstallmentRepository = (*InstallmentRepo)(nil)

// InstallmentRepo implementação de InstallmentRepository (usável com pool ou tx).
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

const installmentColumns = `id, user_id, customer_id, sale_group_id, installment_number, total_installments,
	amount, is_paid, paid_amount, paid_date, due_date, notes, created_at`

// Create persiste uma nova parcela.
func (r *InstallmentRepo) Create(installment *entity.Installment) error {
	query := `
		INSERT INTO installments (id, user_id, customer_id, sale_group_id, installment_number, total_installments,
			amount, is_paid, paid_amount, paid_date, due_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.UserID, installment.CustomerID, installment.SaleGroupID,
		installment.InstallmentNumber, installment.TotalInstallments, installment.Amount,
		installment.IsPaid, installment.PaidAmount, installment.PaidDate, installment.DueDate,
		installment.Notes, installment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert installment: %w", err)
	}
	return nil
}

// GetByID obtém uma parcela por ID.
func (r *InstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE id = $1`
	var i entity.Installment
	err := r.q.QueryRow(context.Background(), query, id).Scan(installmentScanTargets(&i)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get installment: %w", err)
	}
	return &i, nil
}

// ListByCustomer lista todas as parcelas do cliente, na ordem do cronograma.
func (r *InstallmentRepo) ListByCustomer(userID, customerID string) ([]*entity.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments WHERE user_id = $1 AND customer_id = $2
		ORDER BY sale_group_id, installment_number`
	rows, err := r.q.Query(context.Background(), query, userID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list installments by customer: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListBySaleGroup lista as parcelas de um grupo de venda, entrada primeiro.
func (r *InstallmentRepo) ListBySaleGroup(userID, saleGroupID string) ([]*entity.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments WHERE user_id = $1 AND sale_group_id = $2 ORDER BY installment_number`
	rows, err := r.q.Query(context.Background(), query, userID, saleGroupID)
	if err != nil {
		return nil, fmt.Errorf("list installments by sale group: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// MarkPaid persiste a transição pending -> paid da parcela.
func (r *InstallmentRepo) MarkPaid(installment *entity.Installment) error {
	query := `
		UPDATE installments SET is_paid = $2, paid_amount = $3, paid_date = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.IsPaid, installment.PaidAmount, installment.PaidDate, installment.Notes,
	)
	if err != nil {
		return fmt.Errorf("mark installment paid: %w", err)
	}
	return nil
}

func (r *InstallmentRepo) scanMany(rows pgx.Rows) ([]*entity.Installment, error) {
	var list []*entity.Installment
	for rows.Next() {
		var i entity.Installment
		if err := rows.Scan(installmentScanTargets(&i)...); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// installmentScanTargets devolve os destinos de Scan na ordem de installmentColumns.
func installmentScanTargets(i *entity.Installment) []any {
	return []any{
		&i.ID, &i.UserID, &i.CustomerID, &i.SaleGroupID, &i.InstallmentNumber, &i.TotalInstallments,
		&i.Amount, &i.IsPaid, &i.PaidAmount, &i.PaidDate, &i.DueDate, &i.Notes, &i.CreatedAt,
	}
}
