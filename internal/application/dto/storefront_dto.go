package dto

import "github.com/shopspring/decimal"

// StorefrontProduct produto visível na vitrine pública (sem custo nem estoque).
type StorefrontProduct struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Size      string          `json:"size,omitempty"`
	Category  string          `json:"category,omitempty"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// StorefrontResponse página pública da loja.
type StorefrontResponse struct {
	StoreName string              `json:"store_name"`
	StoreSlug string              `json:"store_slug"`
	WhatsApp  string              `json:"whatsapp,omitempty"`
	Products  []StorefrontProduct `json:"products"`
}
