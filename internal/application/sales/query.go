package sales

import (
	"context"
	"time"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
	domainsales "github.com/lojaviva/varejo-api/internal/domain/sales"
	"github.com/lojaviva/varejo-api/pkg/logger"
)

// CustomerSalesQuery monta a visão agregada de vendas de um cliente:
// busca movimentos e parcelas, agrupa e resume via domain/sales. A visão é
// servida através do cache read-through e recalculada do zero a cada miss.
type CustomerSalesQuery struct {
	movRepo      repository.MovementRepository
	instRepo     repository.InstallmentRepository
	customerRepo repository.CustomerRepository
	cache        CustomerViewCache
	log          *logger.Logger
}

// NewCustomerSalesQuery constrói a consulta.
func NewCustomerSalesQuery(
	movRepo repository.MovementRepository,
	instRepo repository.InstallmentRepository,
	customerRepo repository.CustomerRepository,
	cache CustomerViewCache,
	log *logger.Logger,
) *CustomerSalesQuery {
	return &CustomerSalesQuery{
		movRepo:      movRepo,
		instRepo:     instRepo,
		customerRepo: customerRepo,
		cache:        cache,
		log:          log,
	}
}

// GetCustomerSales devolve a visão agregada do cliente (cache read-through).
func (q *CustomerSalesQuery) GetCustomerSales(ctx context.Context, userID, customerID string) (*dto.CustomerSalesResponse, error) {
	if err := q.checkOwnership(userID, customerID); err != nil {
		return nil, err
	}

	if cached, ok, err := q.cache.Get(ctx, customerID); err == nil && ok {
		return cached, nil
	}

	movements, err := q.movRepo.ListByCustomer(userID, customerID)
	if err != nil {
		return nil, err
	}
	installments, err := q.instRepo.ListByCustomer(userID, customerID)
	if err != nil {
		return nil, err
	}

	view := buildCustomerSalesView(customerID, movements, installments, time.Now())
	if err := q.cache.Set(ctx, customerID, view); err != nil {
		// Cache é otimização: a visão já foi montada, só registra a falha.
		q.log.Warn().Err(err).Str("customer_id", customerID).Msg("falha ao gravar cache da visão de vendas")
	}
	return view, nil
}

// ListCustomerInstallments devolve a lista crua de parcelas do cliente,
// com o flag de vencida calculado na hora.
func (q *CustomerSalesQuery) ListCustomerInstallments(ctx context.Context, userID, customerID string) ([]dto.InstallmentResponse, error) {
	if err := q.checkOwnership(userID, customerID); err != nil {
		return nil, err
	}
	installments, err := q.instRepo.ListByCustomer(userID, customerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		out = append(out, toInstallmentResponse(inst, now))
	}
	return out, nil
}

// ListAvailableMovements lista vendas ainda sem cliente associado.
func (q *CustomerSalesQuery) ListAvailableMovements(ctx context.Context, userID string, limit, offset int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := q.movRepo.ListAvailable(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// AssignMovement associa (ou desassocia) um movimento a um cliente. Se o
// movimento pertencer a um grupo de venda, o grupo inteiro acompanha.
// Invalida o cache do cliente antigo e do novo.
func (q *CustomerSalesQuery) AssignMovement(ctx context.Context, userID, movementID string, customerID *string) error {
	mov, err := q.movRepo.GetByID(movementID)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	if mov.UserID != userID {
		return domain.ErrForbidden
	}
	if customerID != nil {
		if err := q.checkOwnership(userID, *customerID); err != nil {
			return err
		}
	}

	if mov.SaleGroupID != nil && *mov.SaleGroupID != "" {
		err = q.movRepo.AssignCustomer(userID, *mov.SaleGroupID, customerID)
	} else {
		err = q.movRepo.AssignCustomerToMovement(userID, movementID, customerID)
	}
	if err != nil {
		return err
	}

	if mov.CustomerID != nil {
		_ = q.cache.Invalidate(ctx, *mov.CustomerID)
	}
	if customerID != nil {
		_ = q.cache.Invalidate(ctx, *customerID)
	}
	return nil
}

func (q *CustomerSalesQuery) checkOwnership(userID, customerID string) error {
	customer, err := q.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

// buildCustomerSalesView agrupa os movimentos e anexa o resumo de parcelas de
// cada venda parcelada. Pura; now ancora o cálculo de vencimento.
func buildCustomerSalesView(customerID string, movements []*entity.Movement, installments []*entity.Installment, now time.Time) *dto.CustomerSalesResponse {
	groups := domainsales.GroupMovements(movements)

	view := &dto.CustomerSalesResponse{
		CustomerID:  customerID,
		Sales:       make([]dto.SaleGroupResponse, 0, len(groups)),
		GeneratedAt: now,
	}
	for _, g := range groups {
		sale := dto.SaleGroupResponse{
			SaleGroupID:       g.ID,
			TotalRevenue:      g.TotalRevenue,
			PaymentMethod:     g.PaymentMethod,
			InstallmentsCount: g.InstallmentsCount,
			CampaignID:        g.CampaignID,
			Notes:             g.Notes,
			CreatedAt:         g.CreatedAt,
		}
		for _, m := range g.Movements {
			sale.Items = append(sale.Items, toMovementResponse(m))
		}
		if g.IsInstallmentSale() {
			summary := domainsales.SummarizeInstallments(g.ID, installments, g.TotalRevenue, now)
			sale.Installments = toSummaryResponse(summary, now)
		}
		view.Sales = append(view.Sales, sale)
		view.TotalRevenue = view.TotalRevenue.Add(g.TotalRevenue)
	}
	return view
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Brand:         m.Brand,
		Size:          m.Size,
		Type:          m.Type,
		Quantity:      m.Quantity,
		SalePrice:     m.SalePrice,
		TotalRevenue:  m.TotalRevenue,
		SaleGroupID:   m.SaleGroupID,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

func toInstallmentResponse(inst *entity.Installment, now time.Time) dto.InstallmentResponse {
	return dto.InstallmentResponse{
		ID:                inst.ID,
		SaleGroupID:       entity.GroupRef(inst.SaleGroupID),
		InstallmentNumber: inst.InstallmentNumber,
		TotalInstallments: inst.TotalInstallments,
		Amount:            inst.Amount,
		IsPaid:            inst.IsPaid,
		PaidAmount:        inst.PaidAmount,
		PaidDate:          inst.PaidDate,
		DueDate:           inst.DueDate,
		Overdue:           domainsales.IsOverdue(inst, now),
		Notes:             inst.Notes,
	}
}

func toSummaryResponse(s domainsales.InstallmentSummary, now time.Time) *dto.InstallmentSummaryResponse {
	resp := &dto.InstallmentSummaryResponse{
		HasDownPayment:    s.HasDownPayment,
		DownPaymentAmount: s.DownPaymentAmount,
		PaidCount:         s.PaidCount,
		PendingCount:      s.PendingCount,
		OverdueCount:      s.OverdueCount,
		TotalCount:        s.TotalCount,
		TotalPaid:         s.TotalPaid,
		PendingAmount:     s.PendingAmount,
		Status:            s.Status,
	}
	if s.DownPayment != nil {
		resp.DownPaymentPaid = s.DownPayment.IsPaid
	}
	for _, inst := range s.Installments {
		resp.Installments = append(resp.Installments, toInstallmentResponse(inst, now))
	}
	return resp
}
