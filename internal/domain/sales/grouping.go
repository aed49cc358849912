// Package sales implementa os serviços de domínio puros da visão de vendas:
// agrupamento de movimentos por venda e resumo de parcelas. As funções são
// referencialmente transparentes, nunca retornam erro e degradam campos
// ausentes para zero/vazio.
package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

// SaleGroup é o agregado derivado de uma venda: os movimentos que compartilham
// um SaleGroupID (ou um movimento avulso) e o faturamento somado. Não é
// persistido; é recalculado a cada consulta a partir da lista em memória.
type SaleGroup struct {
	ID                string
	Movements         []*entity.Movement
	TotalRevenue      decimal.Decimal
	PaymentMethod     *string
	InstallmentsCount *int
	CampaignID        *string
	Notes             string
	CreatedAt         time.Time
}

// IsInstallmentSale reporta se a venda foi parcelada via PIX.
func (g *SaleGroup) IsInstallmentSale() bool {
	return g.PaymentMethod != nil && *g.PaymentMethod == entity.PaymentPixInstallments
}

// GroupMovements particiona a lista de movimentos em vendas.
//
// Recibos de pagamento de parcela (entrada com marcador em Notes) ficam fora
// do agrupamento. Movimentos com SaleGroupID não nulo são agrupados por esse
// id; o faturamento do grupo é a soma dos TotalRevenue dos membros (nulo
// conta como zero). Forma de pagamento, parcelamento, campanha, notas e data
// vêm do primeiro movimento visto para o grupo — se os membros divergirem, o
// primeiro vence sem validação (herdado da origem dos dados; tratar como
// exibição, não como regra de negócio).
//
// Movimentos sem SaleGroupID viram grupos unitários com ID igual ao do
// próprio movimento. A saída é ordenada por CreatedAt decrescente.
func GroupMovements(movs []*entity.Movement) []*SaleGroup {
	byID := make(map[string]*SaleGroup)
	var groups []*SaleGroup

	for _, m := range movs {
		if m == nil || m.IsInstallmentReceipt() {
			continue
		}

		if m.SaleGroupID == nil || *m.SaleGroupID == "" {
			// Venda avulsa: grupo unitário
			groups = append(groups, &SaleGroup{
				ID:                m.ID,
				Movements:         []*entity.Movement{m},
				TotalRevenue:      m.Revenue(),
				PaymentMethod:     m.PaymentMethod,
				InstallmentsCount: m.InstallmentsCount,
				CampaignID:        m.CampaignID,
				Notes:             m.Notes,
				CreatedAt:         m.CreatedAt,
			})
			continue
		}

		id := *m.SaleGroupID
		g, ok := byID[id]
		if !ok {
			// Primeiro membro do grupo define os campos compartilhados
			g = &SaleGroup{
				ID:                id,
				TotalRevenue:      decimal.Zero,
				PaymentMethod:     m.PaymentMethod,
				InstallmentsCount: m.InstallmentsCount,
				CampaignID:        m.CampaignID,
				Notes:             m.Notes,
				CreatedAt:         m.CreatedAt,
			}
			byID[id] = g
			groups = append(groups, g)
		}
		g.Movements = append(g.Movements, m)
		g.TotalRevenue = g.TotalRevenue.Add(m.Revenue())
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].CreatedAt.After(groups[j].CreatedAt)
	})
	return groups
}
