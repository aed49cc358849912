package repository

import "github.com/lojaviva/varejo-api/internal/domain/entity"

// MovementRepository define a porta de persistência para Movement.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByCustomer(userID, customerID string) ([]*entity.Movement, error)
	// ListAvailable lista vendas (saida) ainda sem cliente associado.
	ListAvailable(userID string, limit, offset int) ([]*entity.Movement, error)
	ListBySaleGroup(userID, saleGroupID string) ([]*entity.Movement, error)
	// AssignCustomer associa (ou desassocia, com nil) todos os movimentos do
	// grupo de venda a um cliente.
	AssignCustomer(userID, saleGroupID string, customerID *string) error
	// AssignCustomerToMovement associa um movimento avulso (sem grupo).
	AssignCustomerToMovement(userID, movementID string, customerID *string) error
}
