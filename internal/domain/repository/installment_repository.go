package repository

import "github.com/lojaviva/varejo-api/internal/domain/entity"

// InstallmentRepository define a porta de persistência para Installment.
type InstallmentRepository interface {
	Create(installment *entity.Installment) error
	GetByID(id string) (*entity.Installment, error)
	ListByCustomer(userID, customerID string) ([]*entity.Installment, error)
	ListBySaleGroup(userID, saleGroupID string) ([]*entity.Installment, error)
	// MarkPaid persiste a transição pending -> paid (IsPaid, PaidAmount, PaidDate, Notes).
	MarkPaid(installment *entity.Installment) error
}
