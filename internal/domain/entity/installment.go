package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DownPaymentNumber é o número reservado para a entrada (pagamento inicial opcional).
// A entrada fica fora das contagens de parcelas regulares, mas entra na soma paga.
const DownPaymentNumber = 0

// GroupRef normaliza a referência polimórfica ao grupo de venda: no wire o
// saleGroupId pode chegar como string pura ou como objeto populado
// ({"id": "..."} ou {"_id": "..."}). Depois do unmarshal é sempre uma string
// canônica; a lógica de negócio nunca ramifica por forma.
type GroupRef string

// UnmarshalJSON aceita string, null ou objeto com id/_id.
func (g *GroupRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = GroupRef(s)
		return nil
	}
	var obj struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Forma desconhecida degrada para vazio, nunca erro (campo opcional).
		*g = ""
		return nil
	}
	if obj.ID != "" {
		*g = GroupRef(obj.ID)
	} else {
		*g = GroupRef(obj.MongoID)
	}
	return nil
}

// String devolve o id canônico.
func (g GroupRef) String() string { return string(g) }

// Installment representa uma parcela agendada de uma venda em pix_installments.
// InstallmentNumber 0 é a entrada; 1..N são as parcelas regulares.
type Installment struct {
	ID                string
	UserID            string
	CustomerID        *string
	SaleGroupID       string
	InstallmentNumber int
	TotalInstallments int
	Amount            decimal.Decimal
	IsPaid            bool
	PaidAmount        decimal.Decimal // pode ser parcial
	PaidDate          *time.Time
	DueDate           time.Time
	Notes             string
	CreatedAt         time.Time
}

// IsDownPayment reporta se a parcela é a entrada.
func (i *Installment) IsDownPayment() bool {
	return i.InstallmentNumber == DownPaymentNumber
}
