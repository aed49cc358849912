package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest criação de produto.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	DisplayName   string          `json:"display_name"`
	Brand         string          `json:"brand"`
	Size          string          `json:"size"`
	Category      string          `json:"category"`
	Cost          decimal.Decimal `json:"cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	Visible       bool            `json:"visible"`
}

// UpdateProductRequest atualização de produto.
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	DisplayName   string          `json:"display_name"`
	Brand         string          `json:"brand"`
	Size          string          `json:"size"`
	Category      string          `json:"category"`
	Cost          decimal.Decimal `json:"cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	Visible       bool            `json:"visible"`
}

// ProductResponse produto nas respostas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DisplayName   string          `json:"display_name"`
	Brand         string          `json:"brand"`
	Size          string          `json:"size"`
	Category      string          `json:"category"`
	Cost          decimal.Decimal `json:"cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	Visible       bool            `json:"visible"`
	CreatedAt     time.Time       `json:"created_at"`
}
