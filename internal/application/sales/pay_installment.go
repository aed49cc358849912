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

// PayInstallmentUseCase registra o pagamento de parcelas. A transição é
// pending -> paid, sem volta. Junto com a parcela é gravado o recibo: um
// movimento de entrada com o marcador em Notes, que o agrupamento de vendas
// ignora.
type PayInstallmentUseCase struct {
	txRunner TxRunner
	instRepo repository.InstallmentRepository
	cache    CustomerViewCache
}

// NewPayInstallmentUseCase constrói o caso de uso.
func NewPayInstallmentUseCase(txRunner TxRunner, instRepo repository.InstallmentRepository, cache CustomerViewCache) *PayInstallmentUseCase {
	return &PayInstallmentUseCase{txRunner: txRunner, instRepo: instRepo, cache: cache}
}

// Pay registra o pagamento de uma parcela e invalida o cache do cliente.
// Parcela já paga devolve ErrAlreadyPaid.
func (uc *PayInstallmentUseCase) Pay(ctx context.Context, userID string, in dto.PayInstallmentRequest) (*dto.InstallmentResponse, error) {
	if in.InstallmentID == "" {
		return nil, domain.ErrInvalidInput
	}
	inst, err := uc.instRepo.GetByID(in.InstallmentID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}
	if inst.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if inst.IsPaid {
		return nil, domain.ErrAlreadyPaid
	}

	paidAmount := inst.Amount
	if in.PaidAmount != nil {
		if in.PaidAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		paidAmount = *in.PaidAmount
	}
	paidDate := time.Now()
	if in.PaidDate != nil {
		paidDate = *in.PaidDate
	}

	inst.IsPaid = true
	inst.PaidAmount = paidAmount
	inst.PaidDate = &paidDate
	if in.Notes != "" {
		inst.Notes = in.Notes
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		instRepo repository.InstallmentRepository,
		_ repository.ProductRepository,
	) error {
		if err := instRepo.MarkPaid(inst); err != nil {
			return err
		}
		return movRepo.Create(receiptMovement(inst, paidAmount, paidDate))
	})
	if err != nil {
		return nil, err
	}

	if inst.CustomerID != nil {
		_ = uc.cache.Invalidate(ctx, *inst.CustomerID)
	}
	resp := toInstallmentResponse(inst, time.Now())
	return &resp, nil
}

// PayBulk aplica os pagamentos em sequência, um a um. Cada item tem sucesso
// ou falha independente; não há garantia de tudo-ou-nada. A resposta carrega
// o resultado por item para permitir reprocessar só as falhas.
func (uc *PayInstallmentUseCase) PayBulk(ctx context.Context, userID string, in dto.BulkPayRequest) (*dto.BulkPayResponse, error) {
	if len(in.Payments) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resp := &dto.BulkPayResponse{Results: make([]dto.PaymentResult, 0, len(in.Payments))}
	for _, payment := range in.Payments {
		result := dto.PaymentResult{InstallmentID: payment.InstallmentID}
		if _, err := uc.Pay(ctx, userID, payment); err != nil {
			result.Error = err.Error()
			resp.Failed++
		} else {
			result.OK = true
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// receiptMovement monta o movimento de entrada que registra o recebimento.
// O marcador em Notes o exclui do agrupamento de vendas.
func receiptMovement(inst *entity.Installment, paidAmount decimal.Decimal, paidDate time.Time) *entity.Movement {
	label := fmt.Sprintf("%s %d/%d", entity.InstallmentReceiptMarker, inst.InstallmentNumber, inst.TotalInstallments)
	if inst.IsDownPayment() {
		label = entity.InstallmentReceiptMarker + " (entrada)"
	}
	return &entity.Movement{
		ID:           uuid.New().String(),
		UserID:       inst.UserID,
		CustomerID:   inst.CustomerID,
		Type:         entity.MovementTypeEntrada,
		Quantity:     1,
		TotalRevenue: &paidAmount,
		Notes:        label,
		CreatedAt:    paidDate,
	}
}
