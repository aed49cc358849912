package sales

import (
	"context"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação SQL com repositórios atados à tx.
// Implementado em infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		instRepo repository.InstallmentRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CustomerViewCache cache read-through da visão de vendas por cliente.
// Toda mutação que toca o cliente chama Invalidate; a releitura recalcula o
// agregado do zero (não há outra garantia de consistência).
type CustomerViewCache interface {
	Get(ctx context.Context, customerID string) (*dto.CustomerSalesResponse, bool, error)
	Set(ctx context.Context, customerID string, view *dto.CustomerSalesResponse) error
	Invalidate(ctx context.Context, customerID string) error
}
