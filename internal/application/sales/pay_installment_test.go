package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

const (
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCustomerID = "00000000-0000-0000-0000-000000000002"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newPayFixture() (*sales.PayInstallmentUseCase, *fakeInstallmentRepo, *fakeMovementRepo, *fakeCache) {
	movRepo := newFakeMovementRepo()
	instRepo := newFakeInstallmentRepo()
	cache := newFakeCache()
	runner := &fakeTxRunner{movRepo: movRepo, instRepo: instRepo, productRepo: newFakeProductRepo()}
	uc := sales.NewPayInstallmentUseCase(runner, instRepo, cache)
	return uc, instRepo, movRepo, cache
}

func pendingInstallment(id string, number int, amount string) *entity.Installment {
	customerID := testCustomerID
	return &entity.Installment{
		ID:                id,
		UserID:            testUserID,
		CustomerID:        &customerID,
		SaleGroupID:       "g1",
		InstallmentNumber: number,
		TotalInstallments: 3,
		Amount:            dec(amount),
		DueDate:           time.Now().AddDate(0, 1, 0),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pay
// ──────────────────────────────────────────────────────────────────────────────

// Pagamento feliz: parcela marcada como paga, recibo gravado, cache invalidado.
func TestPay_CaminhoFeliz(t *testing.T) {
	uc, instRepo, movRepo, cache := newPayFixture()
	require.NoError(t, instRepo.Create(pendingInstallment("i1", 1, "100")))

	out, err := uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{InstallmentID: "i1"})

	require.NoError(t, err)
	assert.True(t, out.IsPaid)
	assert.True(t, out.PaidAmount.Equal(dec("100")), "sem paid_amount explícito usa o valor da parcela")
	require.NotNil(t, out.PaidDate)

	// O recibo é uma entrada com o marcador nas notas; o agrupamento de
	// vendas deve ignorá-lo.
	require.Len(t, movRepo.created, 1)
	recibo := movRepo.created[0]
	assert.Equal(t, entity.MovementTypeEntrada, recibo.Type)
	assert.True(t, recibo.IsInstallmentReceipt())
	assert.Contains(t, recibo.Notes, "1/3")

	assert.Equal(t, []string{testCustomerID}, cache.invalidated)
}

// Valor pago explícito (possivelmente parcial) é respeitado.
func TestPay_ValorParcial(t *testing.T) {
	uc, instRepo, _, _ := newPayFixture()
	require.NoError(t, instRepo.Create(pendingInstallment("i1", 1, "100")))

	parcial := dec("60")
	out, err := uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{
		InstallmentID: "i1",
		PaidAmount:    &parcial,
	})

	require.NoError(t, err)
	assert.True(t, out.PaidAmount.Equal(dec("60")))
}

// Parcela já paga devolve ErrAlreadyPaid e não grava recibo duplicado.
func TestPay_JaPaga(t *testing.T) {
	uc, instRepo, movRepo, _ := newPayFixture()
	inst := pendingInstallment("i1", 1, "100")
	inst.IsPaid = true
	require.NoError(t, instRepo.Create(inst))

	_, err := uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{InstallmentID: "i1"})

	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Empty(t, movRepo.created)
}

// Parcela de outro lojista devolve ErrForbidden.
func TestPay_OutroLojista(t *testing.T) {
	uc, instRepo, _, _ := newPayFixture()
	inst := pendingInstallment("i1", 1, "100")
	inst.UserID = "outro-lojista"
	require.NoError(t, instRepo.Create(inst))

	_, err := uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{InstallmentID: "i1"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Parcela inexistente devolve ErrNotFound; valor não positivo, ErrInvalidInput.
func TestPay_Validacao(t *testing.T) {
	uc, instRepo, _, _ := newPayFixture()
	require.NoError(t, instRepo.Create(pendingInstallment("i1", 1, "100")))

	_, err := uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{InstallmentID: "nao-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	zero := decimal.Zero
	_, err = uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{InstallmentID: "i1", PaidAmount: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Pay(context.Background(), testUserID, dto.PayInstallmentRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// PayBulk
// ──────────────────────────────────────────────────────────────────────────────

// Lote com falha no meio: os demais itens seguem e a resposta aponta cada
// resultado, permitindo reprocessar só as falhas.
func TestPayBulk_FalhaParcial(t *testing.T) {
	uc, instRepo, _, _ := newPayFixture()
	require.NoError(t, instRepo.Create(pendingInstallment("i1", 1, "100")))
	jaPaga := pendingInstallment("i2", 2, "100")
	jaPaga.IsPaid = true
	require.NoError(t, instRepo.Create(jaPaga))
	require.NoError(t, instRepo.Create(pendingInstallment("i3", 3, "100")))

	out, err := uc.PayBulk(context.Background(), testUserID, dto.BulkPayRequest{
		Payments: []dto.PayInstallmentRequest{
			{InstallmentID: "i1"},
			{InstallmentID: "i2"},
			{InstallmentID: "i3"},
		},
	})

	require.NoError(t, err, "falha de item não derruba o lote")
	require.Len(t, out.Results, 3)
	assert.Equal(t, 2, out.Succeeded)
	assert.Equal(t, 1, out.Failed)

	assert.True(t, out.Results[0].OK)
	assert.False(t, out.Results[1].OK)
	assert.Equal(t, "i2", out.Results[1].InstallmentID)
	assert.NotEmpty(t, out.Results[1].Error)
	assert.True(t, out.Results[2].OK)
}

// Lote vazio é inválido.
func TestPayBulk_LoteVazio(t *testing.T) {
	uc, _, _, _ := newPayFixture()

	_, err := uc.PayBulk(context.Background(), testUserID, dto.BulkPayRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
