package repository

import "github.com/lojaviva/varejo-api/internal/domain/entity"

// SupplierRepository define a porta de persistência para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
