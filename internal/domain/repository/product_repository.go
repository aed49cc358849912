package repository

import "github.com/lojaviva/varejo-api/internal/domain/entity"

// ProductRepository define a porta de persistência para Product.
// GetForUpdate e UpdateStock são usados dentro da transação de venda
// (SELECT FOR UPDATE para evitar corrida no estoque).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	ListByUser(userID, search string, limit, offset int) ([]*entity.Product, error)
	ListVisibleByUser(userID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, quantity int) error
	Delete(id string) error
}
