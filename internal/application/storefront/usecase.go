package storefront

import (
	"context"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

// CatalogPDFGenerator gera o catálogo em PDF da vitrine (porta; implementado
// em infrastructure/pdf com Maroto).
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, store *entity.User, products []*entity.Product) ([]byte, error)
}

// StorefrontUseCase monta a página pública da loja e o catálogo PDF.
// É a única superfície sem autenticação além do health check.
type StorefrontUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	pdf         CatalogPDFGenerator
}

// NewStorefrontUseCase constrói o caso de uso.
func NewStorefrontUseCase(userRepo repository.UserRepository, productRepo repository.ProductRepository, pdf CatalogPDFGenerator) *StorefrontUseCase {
	return &StorefrontUseCase{userRepo: userRepo, productRepo: productRepo, pdf: pdf}
}

// GetStore devolve a página pública: perfil da loja + produtos visíveis.
func (uc *StorefrontUseCase) GetStore(ctx context.Context, slug string) (*dto.StorefrontResponse, error) {
	store, products, err := uc.fetch(slug)
	if err != nil {
		return nil, err
	}
	resp := &dto.StorefrontResponse{
		StoreName: store.StoreName,
		StoreSlug: store.StoreSlug,
		WhatsApp:  store.WhatsApp,
		Products:  make([]dto.StorefrontProduct, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.StorefrontProduct{
			Name:      p.StorefrontName(),
			Brand:     p.Brand,
			Size:      p.Size,
			Category:  p.Category,
			SalePrice: p.SalePrice,
		})
	}
	return resp, nil
}

// CatalogPDF gera o catálogo PDF dos produtos visíveis da loja.
func (uc *StorefrontUseCase) CatalogPDF(ctx context.Context, slug string) ([]byte, error) {
	store, products, err := uc.fetch(slug)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, store, products)
}

func (uc *StorefrontUseCase) fetch(slug string) (*entity.User, []*entity.Product, error) {
	if slug == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	store, err := uc.userRepo.GetByStoreSlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListVisibleByUser(store.ID)
	if err != nil {
		return nil, nil, err
	}
	return store, products, nil
}
