package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/pkg/logger"
)

type queryFixture struct {
	query     *sales.CustomerSalesQuery
	movRepo   *fakeMovementRepo
	instRepo  *fakeInstallmentRepo
	customers *fakeCustomerRepo
	cache     *fakeCache
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	movRepo := newFakeMovementRepo()
	instRepo := newFakeInstallmentRepo()
	customers := newFakeCustomerRepo()
	cache := newFakeCache()
	require.NoError(t, customers.Create(&entity.Customer{ID: testCustomerID, UserID: testUserID, Name: "Maria"}))
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return &queryFixture{
		query:     sales.NewCustomerSalesQuery(movRepo, instRepo, customers, cache, log),
		movRepo:   movRepo,
		instRepo:  instRepo,
		customers: customers,
		cache:     cache,
	}
}

func (f *queryFixture) addSale(t *testing.T, movementID, groupID string, revenue string, paymentMethod string) *entity.Movement {
	t.Helper()
	customerID := testCustomerID
	rev := dec(revenue)
	m := &entity.Movement{
		ID:           movementID,
		UserID:       testUserID,
		CustomerID:   &customerID,
		Type:         entity.MovementTypeSaida,
		Quantity:     1,
		TotalRevenue: &rev,
		CreatedAt:    time.Now(),
	}
	if groupID != "" {
		m.SaleGroupID = &groupID
	}
	if paymentMethod != "" {
		m.PaymentMethod = &paymentMethod
	}
	require.NoError(t, f.movRepo.Create(m))
	return m
}

// Primeira leitura monta a visão e grava no cache; a segunda vem do cache sem
// recalcular.
func TestGetCustomerSales_ReadThrough(t *testing.T) {
	f := newQueryFixture(t)
	f.addSale(t, "m1", "g1", "100", entity.PaymentPix)

	view1, err := f.query.GetCustomerSales(context.Background(), testUserID, testCustomerID)
	require.NoError(t, err)
	require.Len(t, view1.Sales, 1)
	assert.Equal(t, 1, f.cache.sets)
	assert.Equal(t, 0, f.cache.hits)

	view2, err := f.query.GetCustomerSales(context.Background(), testUserID, testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits, "segunda leitura deve vir do cache")
	assert.Equal(t, 1, f.cache.sets, "hit não regrava o cache")
	assert.Equal(t, view1.CustomerID, view2.CustomerID)
}

// Falha ao gravar o cache degrada: a visão continua sendo devolvida.
func TestGetCustomerSales_FalhaDeCacheNaoQuebraLeitura(t *testing.T) {
	f := newQueryFixture(t)
	f.addSale(t, "m1", "g1", "100", entity.PaymentPix)
	f.cache.setErr = errors.New("redis indisponível")

	view, err := f.query.GetCustomerSales(context.Background(), testUserID, testCustomerID)

	require.NoError(t, err)
	require.Len(t, view.Sales, 1)
	assert.Equal(t, 0, f.cache.sets, "gravação falhou, nada fica no cache")
}

// Venda parcelada carrega o resumo de parcelas na visão.
func TestGetCustomerSales_VendaParceladaTemResumo(t *testing.T) {
	f := newQueryFixture(t)
	f.addSale(t, "m1", "g1", "200", entity.PaymentPixInstallments)

	customerID := testCustomerID
	require.NoError(t, f.instRepo.Create(&entity.Installment{
		ID: "i1", UserID: testUserID, CustomerID: &customerID, SaleGroupID: "g1",
		InstallmentNumber: 1, TotalInstallments: 2, Amount: dec("100"),
		DueDate: time.Now().AddDate(0, 1, 0),
	}))

	view, err := f.query.GetCustomerSales(context.Background(), testUserID, testCustomerID)

	require.NoError(t, err)
	require.Len(t, view.Sales, 1)
	require.NotNil(t, view.Sales[0].Installments, "venda pix_installments carrega o resumo")
	assert.Equal(t, 2, view.Sales[0].Installments.TotalCount)
	assert.Equal(t, "g1", view.Sales[0].Installments.Installments[0].SaleGroupID.String())
}

// Cliente de outro lojista devolve ErrForbidden; inexistente, ErrNotFound.
func TestGetCustomerSales_Propriedade(t *testing.T) {
	f := newQueryFixture(t)

	_, err := f.query.GetCustomerSales(context.Background(), "outro-lojista", testCustomerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.query.GetCustomerSales(context.Background(), testUserID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Associar um movimento com grupo leva o grupo inteiro e invalida os caches
// dos clientes envolvidos.
func TestAssignMovement_GrupoInteiro(t *testing.T) {
	f := newQueryFixture(t)
	m1 := f.addSale(t, "m1", "g1", "100", entity.PaymentPix)
	m2 := f.addSale(t, "m2", "g1", "50", entity.PaymentPix)

	novo := "cliente-novo"
	require.NoError(t, f.customers.Create(&entity.Customer{ID: novo, UserID: testUserID, Name: "João"}))

	require.NoError(t, f.query.AssignMovement(context.Background(), testUserID, "m1", &novo))

	require.NotNil(t, m1.CustomerID)
	assert.Equal(t, novo, *m1.CustomerID)
	require.NotNil(t, m2.CustomerID)
	assert.Equal(t, novo, *m2.CustomerID, "o grupo inteiro acompanha a associação")

	// Invalida o cliente antigo e o novo.
	assert.Contains(t, f.cache.invalidated, testCustomerID)
	assert.Contains(t, f.cache.invalidated, novo)
}

// Movimento avulso associa só a si mesmo.
func TestAssignMovement_Avulso(t *testing.T) {
	f := newQueryFixture(t)
	m := f.addSale(t, "m1", "", "100", "")
	m.CustomerID = nil

	novo := testCustomerID
	require.NoError(t, f.query.AssignMovement(context.Background(), testUserID, "m1", &novo))

	require.NotNil(t, m.CustomerID)
	assert.Equal(t, testCustomerID, *m.CustomerID)
}

// ListCustomerInstallments calcula o flag de vencida na hora.
func TestListCustomerInstallments_FlagVencida(t *testing.T) {
	f := newQueryFixture(t)
	customerID := testCustomerID
	require.NoError(t, f.instRepo.Create(&entity.Installment{
		ID: "i1", UserID: testUserID, CustomerID: &customerID, SaleGroupID: "g1",
		InstallmentNumber: 1, TotalInstallments: 1, Amount: dec("100"),
		DueDate: time.Now().AddDate(0, 0, -10),
	}))

	out, err := f.query.ListCustomerInstallments(context.Background(), testUserID, testCustomerID)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Overdue)
}
