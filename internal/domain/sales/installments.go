package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

// Status de pagamento de uma venda parcelada.
const (
	StatusSettled = "settled"
	StatusPending = "pending"
)

// InstallmentSummary é o resumo de pagamento de uma venda parcelada.
// A entrada (parcela 0) fica fora de PaidCount/PendingCount/OverdueCount/
// TotalCount, mas entra em TotalPaid.
type InstallmentSummary struct {
	SaleGroupID       string
	HasDownPayment    bool
	DownPayment       *entity.Installment
	DownPaymentAmount decimal.Decimal       // valor pago (se pago e > 0) ou valor agendado
	Installments      []*entity.Installment // parcelas regulares, ordenadas por número
	PaidCount         int
	PendingCount      int
	OverdueCount      int
	TotalCount        int
	TotalPaid         decimal.Decimal
	PendingAmount     decimal.Decimal // soma das parcelas regulares não pagas
	Status            string
}

// Settled reporta se a venda está quitada segundo a heurística de exibição
// TotalPaid >= total da venda. Não é uma checagem contábil: se PaidAmount e
// TotalRevenue divergirem na origem, o status pode classificar errado.
func (s *InstallmentSummary) Settled() bool {
	return s.Status == StatusSettled
}

// IsOverdue reporta se a parcela está vencida: não paga e com DueDate
// estritamente anterior à meia-noite de hoje. Parcela que vence hoje não
// está vencida.
func IsOverdue(inst *entity.Installment, now time.Time) bool {
	if inst == nil || inst.IsPaid {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return inst.DueDate.Before(today)
}

// SummarizeInstallments calcula o resumo de pagamento da venda saleGroupID a
// partir da lista completa de parcelas. saleTotal é o faturamento agrupado da
// venda (SaleGroup.TotalRevenue); now ancora o cálculo de vencimento.
func SummarizeInstallments(saleGroupID string, all []*entity.Installment, saleTotal decimal.Decimal, now time.Time) InstallmentSummary {
	summary := InstallmentSummary{
		SaleGroupID:   saleGroupID,
		TotalPaid:     decimal.Zero,
		PendingAmount: decimal.Zero,
		Status:        StatusPending,
	}

	maxTotal := 0
	for _, inst := range all {
		if inst == nil || inst.SaleGroupID != saleGroupID {
			continue
		}

		if inst.IsDownPayment() {
			summary.HasDownPayment = true
			summary.DownPayment = inst
			// Exibe o valor pago quando houver pagamento (possivelmente
			// parcial); senão o valor agendado.
			if inst.IsPaid && inst.PaidAmount.GreaterThan(decimal.Zero) {
				summary.DownPaymentAmount = inst.PaidAmount
			} else {
				summary.DownPaymentAmount = inst.Amount
			}
			if inst.IsPaid {
				summary.TotalPaid = summary.TotalPaid.Add(inst.PaidAmount)
			}
			continue
		}

		summary.Installments = append(summary.Installments, inst)
		if inst.TotalInstallments > maxTotal {
			maxTotal = inst.TotalInstallments
		}
		if inst.IsPaid {
			summary.PaidCount++
			summary.TotalPaid = summary.TotalPaid.Add(inst.PaidAmount)
		} else {
			summary.PendingCount++
			summary.PendingAmount = summary.PendingAmount.Add(inst.Amount)
			if IsOverdue(inst, now) {
				summary.OverdueCount++
			}
		}
	}

	sort.SliceStable(summary.Installments, func(i, j int) bool {
		return summary.Installments[i].InstallmentNumber < summary.Installments[j].InstallmentNumber
	})

	// TotalInstallments informado nas parcelas; ausente, cai no observado.
	summary.TotalCount = maxTotal
	if summary.TotalCount == 0 {
		summary.TotalCount = len(summary.Installments)
	}

	// Heurística de exibição herdada da origem: quitada quando a soma paga
	// alcança o total da venda. Só faz sentido para vendas com faturamento.
	if saleTotal.GreaterThan(decimal.Zero) && summary.TotalPaid.GreaterThanOrEqual(saleTotal) {
		summary.Status = StatusSettled
	}
	return summary
}
