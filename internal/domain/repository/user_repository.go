package repository

import "github.com/lojaviva/varejo-api/internal/domain/entity"

// UserRepository define a porta de persistência para User (lojista).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByStoreSlug(slug string) (*entity.User, error)
}
