package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/domain"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
	"github.com/lojaviva/varejo-api/internal/domain/repository"
)

// RecordSaleUseCase registra um checkout de forma transacional: N movimentos
// de saída compartilhando um SaleGroupID novo, baixa de estoque com bloqueio
// de linha e, em pix_installments, o cronograma de parcelas.
type RecordSaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	cache        CustomerViewCache
}

// NewRecordSaleUseCase constrói o caso de uso.
func NewRecordSaleUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	cache CustomerViewCache,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		cache:        cache,
	}
}

// Record valida a venda, executa a transação e invalida o cache do cliente.
func (uc *RecordSaleUseCase) Record(ctx context.Context, userID string, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if err := uc.validate(userID, in); err != nil {
		return nil, err
	}

	now := time.Now()
	saleGroupID := uuid.New().String()
	resp := &dto.RecordSaleResponse{SaleGroupID: saleGroupID, TotalRevenue: decimal.Zero}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		instRepo repository.InstallmentRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, item := range in.Items {
			// Bloqueia a linha do produto (SELECT FOR UPDATE) antes de baixar estoque
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.UserID != userID {
				return domain.ErrForbidden
			}
			if product.StockQuantity < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQuantity-item.Quantity); err != nil {
				return err
			}

			price := item.SalePrice
			if price.IsZero() {
				price = product.SalePrice
			}
			revenue := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			resp.TotalRevenue = resp.TotalRevenue.Add(revenue)

			groupID := saleGroupID
			mov := &entity.Movement{
				ID:            uuid.New().String(),
				UserID:        userID,
				CustomerID:    in.CustomerID,
				ProductID:     product.ID,
				ProductName:   product.StorefrontName(),
				Brand:         product.Brand,
				Size:          product.Size,
				Type:          entity.MovementTypeSaida,
				Quantity:      item.Quantity,
				SalePrice:     &price,
				TotalRevenue:  &revenue,
				SaleGroupID:   &groupID,
				PaymentMethod: &in.PaymentMethod,
				CampaignID:    in.CampaignID,
				Notes:         in.Notes,
				CreatedAt:     now,
			}
			if in.Installments != nil {
				count := in.Installments.Count
				mov.InstallmentsCount = &count
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			resp.MovementIDs = append(resp.MovementIDs, mov.ID)
		}

		if in.PaymentMethod == entity.PaymentPixInstallments {
			ids, err := uc.createSchedule(instRepo, userID, saleGroupID, in, resp.TotalRevenue, now)
			if err != nil {
				return err
			}
			resp.InstallmentIDs = ids
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if in.CustomerID != nil {
		_ = uc.cache.Invalidate(ctx, *in.CustomerID)
	}
	return resp, nil
}

// createSchedule gera a entrada (parcela 0, opcional) e as parcelas 1..N com
// vencimento mensal. O valor restante é dividido igualmente; a última parcela
// absorve a diferença de arredondamento.
func (uc *RecordSaleUseCase) createSchedule(
	instRepo repository.InstallmentRepository,
	userID, saleGroupID string,
	in dto.RecordSaleRequest,
	total decimal.Decimal,
	now time.Time,
) ([]string, error) {
	plan := in.Installments
	down := decimal.Zero
	if plan.DownPayment != nil {
		down = *plan.DownPayment
	}
	// Entrada >= total deixaria um cronograma de parcelas zeradas.
	remaining := total.Sub(down)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: entrada deve ser menor que o total da venda", domain.ErrInvalidInput)
	}

	count := decimal.NewFromInt(int64(plan.Count))
	per := remaining.Div(count).Round(2)
	last := remaining.Sub(per.Mul(decimal.NewFromInt(int64(plan.Count - 1))))

	var ids []string
	if down.GreaterThan(decimal.Zero) {
		inst := &entity.Installment{
			ID:                uuid.New().String(),
			UserID:            userID,
			CustomerID:        in.CustomerID,
			SaleGroupID:       saleGroupID,
			InstallmentNumber: entity.DownPaymentNumber,
			TotalInstallments: plan.Count,
			Amount:            down,
			DueDate:           now,
			CreatedAt:         now,
		}
		if plan.DownPaymentPaid {
			paidAt := now
			inst.IsPaid = true
			inst.PaidAmount = down
			inst.PaidDate = &paidAt
		}
		if err := instRepo.Create(inst); err != nil {
			return nil, err
		}
		ids = append(ids, inst.ID)
	}

	for n := 1; n <= plan.Count; n++ {
		amount := per
		if n == plan.Count {
			amount = last
		}
		inst := &entity.Installment{
			ID:                uuid.New().String(),
			UserID:            userID,
			CustomerID:        in.CustomerID,
			SaleGroupID:       saleGroupID,
			InstallmentNumber: n,
			TotalInstallments: plan.Count,
			Amount:            amount,
			DueDate:           plan.FirstDueDate.AddDate(0, n-1, 0),
			CreatedAt:         now,
		}
		if err := instRepo.Create(inst); err != nil {
			return nil, err
		}
		ids = append(ids, inst.ID)
	}
	return ids, nil
}

func (uc *RecordSaleUseCase) validate(userID string, in dto.RecordSaleRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	switch in.PaymentMethod {
	case entity.PaymentCreditCard, entity.PaymentDebitCard, entity.PaymentPix:
		if in.Installments != nil {
			return fmt.Errorf("%w: parcelamento só em pix_installments", domain.ErrInvalidInput)
		}
	case entity.PaymentPixInstallments:
		if in.Installments == nil || in.Installments.Count <= 0 {
			return fmt.Errorf("%w: plano de parcelas ausente", domain.ErrInvalidInput)
		}
		if in.Installments.FirstDueDate.IsZero() {
			return fmt.Errorf("%w: first_due_date ausente", domain.ErrInvalidInput)
		}
	default:
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.SalePrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if customer.UserID != userID {
			return domain.ErrForbidden
		}
	}
	return nil
}
