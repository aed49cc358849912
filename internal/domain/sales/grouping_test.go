package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/sales"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

var baseTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func saleMovement(id, groupID string, revenue string, createdAt time.Time) *entity.Movement {
	rev := dec(revenue)
	m := &entity.Movement{
		ID:           id,
		Type:         entity.MovementTypeSaida,
		Quantity:     1,
		TotalRevenue: &rev,
		CreatedAt:    createdAt,
	}
	if groupID != "" {
		m.SaleGroupID = &groupID
	}
	return m
}

func receiptMovement(id string, createdAt time.Time) *entity.Movement {
	rev := dec("50")
	return &entity.Movement{
		ID:           id,
		Type:         entity.MovementTypeEntrada,
		Quantity:     1,
		TotalRevenue: &rev,
		Notes:        entity.InstallmentReceiptMarker + " 1/3",
		CreatedAt:    createdAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GroupMovements
// ──────────────────────────────────────────────────────────────────────────────

// Movimentos com o mesmo SaleGroupID formam um único grupo e o faturamento é a
// soma dos membros.
func TestGroupMovements_AgrupaPorSaleGroupID(t *testing.T) {
	movs := []*entity.Movement{
		saleMovement("m1", "g1", "100", baseTime),
		saleMovement("m2", "g1", "50.50", baseTime.Add(time.Minute)),
		saleMovement("m3", "g1", "49.50", baseTime.Add(2*time.Minute)),
	}

	groups := sales.GroupMovements(movs)

	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ID)
	assert.Len(t, groups[0].Movements, 3)
	assert.True(t, groups[0].TotalRevenue.Equal(dec("200")),
		"faturamento do grupo deve ser a soma dos membros, obtido %s", groups[0].TotalRevenue)
}

// Movimento sem SaleGroupID vira grupo unitário com ID do próprio movimento.
func TestGroupMovements_VendaAvulsaViraGrupoUnitario(t *testing.T) {
	movs := []*entity.Movement{
		saleMovement("m1", "", "75", baseTime),
	}

	groups := sales.GroupMovements(movs)

	require.Len(t, groups, 1)
	assert.Equal(t, "m1", groups[0].ID, "grupo unitário usa o ID do movimento")
	assert.Len(t, groups[0].Movements, 1)
	assert.True(t, groups[0].TotalRevenue.Equal(dec("75")))
}

// Recibos de pagamento de parcela (entrada com marcador) ficam fora das vendas.
func TestGroupMovements_IgnoraRecibosDeParcela(t *testing.T) {
	movs := []*entity.Movement{
		saleMovement("m1", "g1", "100", baseTime),
		receiptMovement("r1", baseTime.Add(time.Hour)),
		receiptMovement("r2", baseTime.Add(2*time.Hour)),
	}

	groups := sales.GroupMovements(movs)

	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ID)
	assert.True(t, groups[0].TotalRevenue.Equal(dec("100")),
		"recibo não deve somar no faturamento da venda")
}

// Entrada sem o marcador nas notas é movimento normal, não recibo.
func TestGroupMovements_EntradaSemMarcadorNaoEhRecibo(t *testing.T) {
	rev := dec("30")
	entrada := &entity.Movement{
		ID:           "m1",
		Type:         entity.MovementTypeEntrada,
		Quantity:     3,
		TotalRevenue: &rev,
		Notes:        "reposição de estoque",
		CreatedAt:    baseTime,
	}

	groups := sales.GroupMovements([]*entity.Movement{entrada})

	require.Len(t, groups, 1)
}

// TotalRevenue nulo conta como zero na soma.
func TestGroupMovements_RevenueNuloContaComoZero(t *testing.T) {
	semRevenue := &entity.Movement{
		ID:          "m2",
		Type:        entity.MovementTypeSaida,
		Quantity:    1,
		SaleGroupID: ptr("g1"),
		CreatedAt:   baseTime,
	}
	movs := []*entity.Movement{
		saleMovement("m1", "g1", "100", baseTime),
		semRevenue,
	}

	groups := sales.GroupMovements(movs)

	require.Len(t, groups, 1)
	assert.True(t, groups[0].TotalRevenue.Equal(dec("100")))
	assert.Len(t, groups[0].Movements, 2)
}

// Os campos compartilhados do grupo (pagamento, campanha, notas, data) vêm do
// primeiro membro visto; membros divergentes não sobrescrevem.
func TestGroupMovements_PrimeiroMembroDefineCamposDoGrupo(t *testing.T) {
	pix := entity.PaymentPix
	cartao := entity.PaymentCreditCard

	m1 := saleMovement("m1", "g1", "10", baseTime)
	m1.PaymentMethod = &pix
	m1.Notes = "primeira nota"
	m2 := saleMovement("m2", "g1", "20", baseTime.Add(time.Minute))
	m2.PaymentMethod = &cartao
	m2.Notes = "outra nota"

	groups := sales.GroupMovements([]*entity.Movement{m1, m2})

	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].PaymentMethod)
	assert.Equal(t, entity.PaymentPix, *groups[0].PaymentMethod)
	assert.Equal(t, "primeira nota", groups[0].Notes)
	assert.Equal(t, baseTime, groups[0].CreatedAt)
}

// A saída vem ordenada por CreatedAt decrescente (venda mais recente primeiro).
func TestGroupMovements_OrdenaPorDataDecrescente(t *testing.T) {
	movs := []*entity.Movement{
		saleMovement("antiga", "", "10", baseTime),
		saleMovement("recente", "", "20", baseTime.Add(48*time.Hour)),
		saleMovement("meio", "", "15", baseTime.Add(24*time.Hour)),
	}

	groups := sales.GroupMovements(movs)

	require.Len(t, groups, 3)
	assert.Equal(t, "recente", groups[0].ID)
	assert.Equal(t, "meio", groups[1].ID)
	assert.Equal(t, "antiga", groups[2].ID)
}

// O agrupamento é idempotente: reagrupar os movimentos extraídos da própria
// saída produz os mesmos grupos (IDs, membros e faturamento).
func TestGroupMovements_ReagrupamentoIdempotente(t *testing.T) {
	pix := entity.PaymentPix
	m1 := saleMovement("m1", "g1", "100", baseTime)
	m1.PaymentMethod = &pix
	movs := []*entity.Movement{
		m1,
		saleMovement("m2", "g1", "50", baseTime.Add(time.Minute)),
		saleMovement("m3", "", "75", baseTime.Add(time.Hour)),
		receiptMovement("r1", baseTime.Add(2*time.Hour)),
	}

	first := sales.GroupMovements(movs)
	require.Len(t, first, 2)

	var flattened []*entity.Movement
	for _, g := range first {
		flattened = append(flattened, g.Movements...)
	}
	second := sales.GroupMovements(flattened)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Len(t, second[i].Movements, len(first[i].Movements))
		assert.True(t, second[i].TotalRevenue.Equal(first[i].TotalRevenue),
			"faturamento do grupo %s deve repetir: %s vs %s",
			first[i].ID, first[i].TotalRevenue, second[i].TotalRevenue)
	}
}

// Lista vazia e entradas nulas não quebram o agrupamento.
func TestGroupMovements_EntradasDegeneradas(t *testing.T) {
	assert.Empty(t, sales.GroupMovements(nil))
	assert.Empty(t, sales.GroupMovements([]*entity.Movement{nil, nil}))
}

// IsInstallmentSale só é verdadeiro para pix_installments.
func TestSaleGroup_IsInstallmentSale(t *testing.T) {
	parcelado := entity.PaymentPixInstallments
	m := saleMovement("m1", "g1", "100", baseTime)
	m.PaymentMethod = &parcelado

	groups := sales.GroupMovements([]*entity.Movement{m})
	require.Len(t, groups, 1)
	assert.True(t, groups[0].IsInstallmentSale())

	avulso := saleMovement("m2", "", "50", baseTime)
	groups = sales.GroupMovements([]*entity.Movement{avulso})
	require.Len(t, groups, 1)
	assert.False(t, groups[0].IsInstallmentSale(), "venda sem forma de pagamento não é parcelada")
}

func ptr(s string) *string { return &s }
