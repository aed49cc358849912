package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo.
type Product struct {
	ID            string
	UserID        string
	Name          string
	DisplayName   string // nome exibido na vitrine; vazio usa Name
	Brand         string
	Size          string
	Category      string
	Cost          decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int
	Visible       bool // aparece na vitrine pública e no catálogo PDF
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StorefrontName devolve o nome a exibir na vitrine.
func (p *Product) StorefrontName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}
