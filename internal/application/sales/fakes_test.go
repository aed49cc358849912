package sales_test

import (
	"context"
	"errors"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

// Fakes em memória para os casos de uso de vendas. Guardam tudo em mapas e
// slices; sem concorrência porque cada teste usa o seu.

type fakeMovementRepo struct {
	byID    map[string]*entity.Movement
	created []*entity.Movement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{byID: make(map[string]*entity.Movement)}
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.byID[m.ID] = m
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	return f.byID[id], nil
}

func (f *fakeMovementRepo) ListByCustomer(userID, customerID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.created {
		if m.UserID == userID && m.CustomerID != nil && *m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListAvailable(userID string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.created {
		if m.UserID == userID && m.CustomerID == nil && m.Type == entity.MovementTypeSaida {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListBySaleGroup(userID, saleGroupID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.created {
		if m.UserID == userID && m.SaleGroupID != nil && *m.SaleGroupID == saleGroupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) AssignCustomer(userID, saleGroupID string, customerID *string) error {
	for _, m := range f.created {
		if m.UserID == userID && m.SaleGroupID != nil && *m.SaleGroupID == saleGroupID {
			m.CustomerID = customerID
		}
	}
	return nil
}

func (f *fakeMovementRepo) AssignCustomerToMovement(userID, movementID string, customerID *string) error {
	if m, ok := f.byID[movementID]; ok && m.UserID == userID {
		m.CustomerID = customerID
	}
	return nil
}

type fakeInstallmentRepo struct {
	byID    map[string]*entity.Installment
	created []*entity.Installment
}

func newFakeInstallmentRepo() *fakeInstallmentRepo {
	return &fakeInstallmentRepo{byID: make(map[string]*entity.Installment)}
}

func (f *fakeInstallmentRepo) Create(i *entity.Installment) error {
	f.byID[i.ID] = i
	f.created = append(f.created, i)
	return nil
}

func (f *fakeInstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	return f.byID[id], nil
}

func (f *fakeInstallmentRepo) ListByCustomer(userID, customerID string) ([]*entity.Installment, error) {
	var out []*entity.Installment
	for _, i := range f.created {
		if i.UserID == userID && i.CustomerID != nil && *i.CustomerID == customerID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInstallmentRepo) ListBySaleGroup(userID, saleGroupID string) ([]*entity.Installment, error) {
	var out []*entity.Installment
	for _, i := range f.created {
		if i.UserID == userID && i.SaleGroupID == saleGroupID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInstallmentRepo) MarkPaid(i *entity.Installment) error {
	f.byID[i.ID] = i
	return nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)      { return f.byID[id], nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.byID[id], nil }

func (f *fakeProductRepo) ListByUser(userID, search string, limit, offset int) ([]*entity.Product, error) {
	return nil, errors.New("não usado nos testes")
}

func (f *fakeProductRepo) ListVisibleByUser(userID string) ([]*entity.Product, error) {
	return nil, errors.New("não usado nos testes")
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateStock(id string, quantity int) error {
	if p, ok := f.byID[id]; ok {
		p.StockQuantity = quantity
	}
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) { return f.byID[id], nil }

func (f *fakeCustomerRepo) ListByUser(userID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	instRepo    *fakeInstallmentRepo
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	instRepo repository.InstallmentRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.instRepo, f.productRepo)
}

// fakeCache registra acessos e invalidações; setErr força falha de gravação.
type fakeCache struct {
	store       map[string]*dto.CustomerSalesResponse
	invalidated []string
	hits        int
	sets        int
	setErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*dto.CustomerSalesResponse)}
}

func (f *fakeCache) Get(ctx context.Context, customerID string) (*dto.CustomerSalesResponse, bool, error) {
	v, ok := f.store[customerID]
	if ok {
		f.hits++
	}
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, customerID string, view *dto.CustomerSalesResponse) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.store[customerID] = view
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, customerID string) error {
	delete(f.store, customerID)
	f.invalidated = append(f.invalidated, customerID)
	return nil
}

var (
	_ repository.MovementRepository    = (*fakeMovementRepo)(nil)
	_ repository.InstallmentRepository = (*fakeInstallmentRepo)(nil)
	_ repository.ProductRepository     = (*fakeProductRepo)(nil)
	_ repository.CustomerRepository    = (*fakeCustomerRepo)(nil)
	_ sales.TxRunner                   = (*fakeTxRunner)(nil)
	_ sales.CustomerViewCache          = (*fakeCache)(nil)
)
