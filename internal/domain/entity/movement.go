package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	MovementTypeEntrada = "entrada" // entrada de estoque ou recibo de pagamento
	MovementTypeSaida   = "saida"   // venda
	MovementTypeAjuste  = "ajuste"  // ajuste de estoque
)

// Formas de pagamento de uma venda.
const (
	PaymentCreditCard      = "credit_card"
	PaymentDebitCard       = "debit_card"
	PaymentPix             = "pix"
	PaymentPixInstallments = "pix_installments"
)

// InstallmentReceiptMarker identifica, dentro de Notes, uma entrada que registra
// o recebimento de uma parcela (e não uma entrada de estoque). Movimentos com
// esse marcador ficam fora do agrupamento de vendas.
const InstallmentReceiptMarker = "Pagamento de parcela"

// Movement representa um movimento de estoque/venda.
// Movimentos que compartilham um SaleGroupID não nulo são itens de uma mesma venda.
type Movement struct {
	ID                string
	UserID            string
	CustomerID        *string
	ProductID         string
	ProductName       string // snapshot do produto no momento do movimento
	Brand             string
	Size              string
	Type              string
	Quantity          int
	SalePrice         *decimal.Decimal
	TotalRevenue      *decimal.Decimal
	SaleGroupID       *string // nulo = venda avulsa de um item só
	PaymentMethod     *string
	InstallmentsCount *int
	CampaignID        *string
	Notes             string
	CreatedAt         time.Time
}

// IsInstallmentReceipt reporta se o movimento é um recibo de pagamento de parcela.
func (m *Movement) IsInstallmentReceipt() bool {
	return m.Type == MovementTypeEntrada && strings.Contains(m.Notes, InstallmentReceiptMarker)
}

// Revenue devolve TotalRevenue tratando nulo como zero.
func (m *Movement) Revenue() decimal.Decimal {
	if m.TotalRevenue == nil {
		return decimal.Zero
	}
	return *m.TotalRevenue
}
