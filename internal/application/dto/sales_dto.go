package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

// SaleItemRequest um item do checkout.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// InstallmentPlanRequest plano de parcelamento PIX do checkout.
// DownPayment nulo ou zero = sem entrada. FirstDueDate é o vencimento da
// parcela 1; as seguintes vencem mensalmente.
type InstallmentPlanRequest struct {
	Count           int              `json:"count"`
	DownPayment     *decimal.Decimal `json:"down_payment"`
	DownPaymentPaid bool             `json:"down_payment_paid"`
	FirstDueDate    time.Time        `json:"first_due_date"`
}

// RecordSaleRequest registro de uma venda (checkout com N itens).
type RecordSaleRequest struct {
	CustomerID    *string                 `json:"customer_id"`
	PaymentMethod string                  `json:"payment_method"`
	CampaignID    *string                 `json:"campaign_id"`
	Notes         string                  `json:"notes"`
	Items         []SaleItemRequest       `json:"items"`
	Installments  *InstallmentPlanRequest `json:"installments"`
}

// RecordSaleResponse resultado do registro da venda.
type RecordSaleResponse struct {
	SaleGroupID    string          `json:"sale_group_id"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	MovementIDs    []string        `json:"movement_ids"`
	InstallmentIDs []string        `json:"installment_ids,omitempty"`
}

// MovementResponse movimento nas respostas.
type MovementResponse struct {
	ID            string           `json:"id"`
	CustomerID    *string          `json:"customer_id,omitempty"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	Brand         string           `json:"brand,omitempty"`
	Size          string           `json:"size,omitempty"`
	Type          string           `json:"type"`
	Quantity      int              `json:"quantity"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	TotalRevenue  *decimal.Decimal `json:"total_revenue,omitempty"`
	SaleGroupID   *string          `json:"sale_group_id,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SaleGroupResponse uma venda agregada (grupo de movimentos + resumo de parcelas).
type SaleGroupResponse struct {
	SaleGroupID       string                      `json:"sale_group_id"`
	Items             []MovementResponse          `json:"items"`
	TotalRevenue      decimal.Decimal             `json:"total_revenue"`
	PaymentMethod     *string                     `json:"payment_method,omitempty"`
	InstallmentsCount *int                        `json:"installments_count,omitempty"`
	CampaignID        *string                     `json:"campaign_id,omitempty"`
	Notes             string                      `json:"notes,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	Installments      *InstallmentSummaryResponse `json:"installments,omitempty"`
}

// CustomerSalesResponse a visão agregada de vendas de um cliente.
// É esse payload que o cache Redis guarda por cliente.
type CustomerSalesResponse struct {
	CustomerID   string              `json:"customer_id"`
	Sales        []SaleGroupResponse `json:"sales"`
	TotalRevenue decimal.Decimal     `json:"total_revenue"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// AssignMovementRequest associa (customer_id preenchido) ou desassocia
// (customer_id nulo) um movimento e seu grupo de venda a um cliente.
type AssignMovementRequest struct {
	CustomerID *string `json:"customer_id"`
}

// InstallmentResponse parcela nas respostas. SaleGroupID usa entity.GroupRef
// para que payloads antigos com referência aninhada desserializem no id
// canônico (também cobre a releitura do cache).
type InstallmentResponse struct {
	ID                string          `json:"id"`
	SaleGroupID       entity.GroupRef `json:"sale_group_id"`
	InstallmentNumber int             `json:"installment_number"`
	TotalInstallments int             `json:"total_installments"`
	Amount            decimal.Decimal `json:"amount"`
	IsPaid            bool            `json:"is_paid"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PaidDate          *time.Time      `json:"paid_date,omitempty"`
	DueDate           time.Time       `json:"due_date"`
	Overdue           bool            `json:"overdue"`
	Notes             string          `json:"notes,omitempty"`
}

// InstallmentSummaryResponse resumo de pagamento de uma venda parcelada.
type InstallmentSummaryResponse struct {
	HasDownPayment    bool                  `json:"has_down_payment"`
	DownPaymentAmount decimal.Decimal       `json:"down_payment_amount"`
	DownPaymentPaid   bool                  `json:"down_payment_paid"`
	Installments      []InstallmentResponse `json:"installments"`
	PaidCount         int                   `json:"paid_count"`
	PendingCount      int                   `json:"pending_count"`
	OverdueCount      int                   `json:"overdue_count"`
	TotalCount        int                   `json:"total_count"`
	TotalPaid         decimal.Decimal       `json:"total_paid"`
	PendingAmount     decimal.Decimal       `json:"pending_amount"`
	Status            string                `json:"status"`
}
