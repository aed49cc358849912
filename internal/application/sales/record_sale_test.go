package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

type recordFixture struct {
	uc       *sales.RecordSaleUseCase
	movRepo  *fakeMovementRepo
	instRepo *fakeInstallmentRepo
	products *fakeProductRepo
	cache    *fakeCache
}

func newRecordFixture(t *testing.T) *recordFixture {
	t.Helper()
	movRepo := newFakeMovementRepo()
	instRepo := newFakeInstallmentRepo()
	products := newFakeProductRepo()
	customers := newFakeCustomerRepo()
	cache := newFakeCache()
	runner := &fakeTxRunner{movRepo: movRepo, instRepo: instRepo, productRepo: products}

	require.NoError(t, customers.Create(&entity.Customer{ID: testCustomerID, UserID: testUserID, Name: "Maria"}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p1", UserID: testUserID, Name: "Tênis", Brand: "Alfa",
		SalePrice: dec("150"), StockQuantity: 10, Visible: true,
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p2", UserID: testUserID, Name: "Meia", Brand: "Beta",
		SalePrice: dec("25"), StockQuantity: 3, Visible: true,
	}))

	return &recordFixture{
		uc:       sales.NewRecordSaleUseCase(runner, customers, products, cache),
		movRepo:  movRepo,
		instRepo: instRepo,
		products: products,
		cache:    cache,
	}
}

// Checkout PIX simples: um movimento por item, mesmo SaleGroupID, estoque
// baixado e cache do cliente invalidado.
func TestRecordSale_CheckoutPix(t *testing.T) {
	f := newRecordFixture(t)
	customerID := testCustomerID

	out, err := f.uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		CustomerID:    &customerID,
		PaymentMethod: entity.PaymentPix,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2, SalePrice: dec("150")},
			{ProductID: "p2", Quantity: 1, SalePrice: dec("25")},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.SaleGroupID)
	assert.True(t, out.TotalRevenue.Equal(dec("325")), "obtido %s", out.TotalRevenue)
	require.Len(t, f.movRepo.created, 2)

	for _, m := range f.movRepo.created {
		require.NotNil(t, m.SaleGroupID)
		assert.Equal(t, out.SaleGroupID, *m.SaleGroupID, "itens do checkout compartilham o grupo")
		assert.Equal(t, entity.MovementTypeSaida, m.Type)
	}

	p1, _ := f.products.GetByID("p1")
	assert.Equal(t, 8, p1.StockQuantity)
	p2, _ := f.products.GetByID("p2")
	assert.Equal(t, 2, p2.StockQuantity)

	assert.Equal(t, []string{testCustomerID}, f.cache.invalidated)
}

// Parcelamento: entrada paga vira parcela 0 e o restante divide em N com a
// última absorvendo o arredondamento.
func TestRecordSale_CronogramaDeParcelas(t *testing.T) {
	f := newRecordFixture(t)
	customerID := testCustomerID
	down := dec("25")
	firstDue := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	out, err := f.uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		CustomerID:    &customerID,
		PaymentMethod: entity.PaymentPixInstallments,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, SalePrice: dec("125")},
		},
		Installments: &dto.InstallmentPlanRequest{
			Count:           3,
			DownPayment:     &down,
			DownPaymentPaid: true,
			FirstDueDate:    firstDue,
		},
	})

	require.NoError(t, err)
	require.Len(t, out.InstallmentIDs, 4, "entrada + 3 parcelas")
	require.Len(t, f.instRepo.created, 4)

	entrada := f.instRepo.created[0]
	assert.Equal(t, entity.DownPaymentNumber, entrada.InstallmentNumber)
	assert.True(t, entrada.IsPaid, "entrada marcada como paga no checkout")
	assert.True(t, entrada.PaidAmount.Equal(dec("25")))

	// Restante 100 / 3 = 33.33, última absorve a diferença (33.34).
	p1 := f.instRepo.created[1]
	p3 := f.instRepo.created[3]
	assert.True(t, p1.Amount.Equal(dec("33.33")), "obtido %s", p1.Amount)
	assert.True(t, p3.Amount.Equal(dec("33.34")), "obtido %s", p3.Amount)

	// Vencimentos mensais a partir do primeiro.
	assert.Equal(t, firstDue, p1.DueDate)
	assert.Equal(t, firstDue.AddDate(0, 2, 0), p3.DueDate)

	// A soma do cronograma fecha com o total da venda.
	total := entrada.Amount
	for _, inst := range f.instRepo.created[1:] {
		total = total.Add(inst.Amount)
	}
	assert.True(t, total.Equal(dec("125")), "cronograma soma o total, obtido %s", total)
}

// Entrada igual ou maior que o total não gera cronograma de parcelas zeradas.
func TestRecordSale_EntradaConsomeTotal(t *testing.T) {
	f := newRecordFixture(t)
	down := dec("125")

	_, err := f.uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		PaymentMethod: entity.PaymentPixInstallments,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, SalePrice: dec("125")},
		},
		Installments: &dto.InstallmentPlanRequest{
			Count:        3,
			DownPayment:  &down,
			FirstDueDate: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.instRepo.created, "nenhuma parcela deve ser criada")
}

// Estoque insuficiente aborta o checkout.
func TestRecordSale_EstoqueInsuficiente(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		PaymentMethod: entity.PaymentPix,
		Items: []dto.SaleItemRequest{
			{ProductID: "p2", Quantity: 99, SalePrice: dec("25")},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Parcelamento só é aceito em pix_installments.
func TestRecordSale_ParcelamentoForaDePixInstallments(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		PaymentMethod: entity.PaymentCreditCard,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, SalePrice: dec("150")},
		},
		Installments: &dto.InstallmentPlanRequest{Count: 3, FirstDueDate: time.Now()},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// pix_installments sem plano de parcelas é inválido.
func TestRecordSale_PixInstallmentsSemPlano(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		PaymentMethod: entity.PaymentPixInstallments,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, SalePrice: dec("150")},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cliente de outro lojista no checkout devolve ErrForbidden.
func TestRecordSale_ClienteDeOutroLojista(t *testing.T) {
	f := newRecordFixture(t)
	outro := "cliente-alheio"
	require.NoError(t, f.products.Create(&entity.Product{ID: "p9", UserID: testUserID, Name: "X", SalePrice: dec("1"), StockQuantity: 1}))

	customers := newFakeCustomerRepo()
	require.NoError(t, customers.Create(&entity.Customer{ID: outro, UserID: "outro-lojista", Name: "Alheio"}))
	uc := sales.NewRecordSaleUseCase(
		&fakeTxRunner{movRepo: f.movRepo, instRepo: f.instRepo, productRepo: f.products},
		customers, f.products, f.cache,
	)

	_, err := uc.Record(context.Background(), testUserID, dto.RecordSaleRequest{
		CustomerID:    &outro,
		PaymentMethod: entity.PaymentPix,
		Items:         []dto.SaleItemRequest{{ProductID: "p9", Quantity: 1, SalePrice: dec("1")}},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
