package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayInstallmentRequest registro de pagamento de uma parcela.
// PaidAmount nulo usa o valor agendado da parcela; PaidDate nulo usa agora.
type PayInstallmentRequest struct {
	InstallmentID string           `json:"installment_id"`
	PaidAmount    *decimal.Decimal `json:"paid_amount"`
	PaidDate      *time.Time       `json:"paid_date"`
	Notes         string           `json:"notes"`
}

// BulkPayRequest pagamento de várias parcelas em sequência.
type BulkPayRequest struct {
	Payments []PayInstallmentRequest `json:"payments"`
}

// PaymentResult resultado individual de um pagamento do lote. A lista
// preserva qual item falhou, permitindo reprocessar só as falhas.
type PaymentResult struct {
	InstallmentID string `json:"installment_id"`
	OK            bool   `json:"ok"`
	Error         string `json:"error,omitempty"`
}

// BulkPayResponse resultados do lote + contagem derivada.
type BulkPayResponse struct {
	Results   []PaymentResult `json:"results"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}
