package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/sales"
)

// InstallmentHandler trata o pagamento de parcelas (protegido).
type InstallmentHandler struct {
	uc *sales.PayInstallmentUseCase
}

// NewInstallmentHandler constrói o handler.
func NewInstallmentHandler(uc *sales.PayInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

// Pay godoc
// @Summary      Pagar uma parcela
// @Tags         installments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayInstallmentRequest  true  "Parcela e valor pago"
// @Success      200   {object}  dto.InstallmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/installments/pay [post]
func (h *InstallmentHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayInstallmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Pay(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PayBulk godoc
// @Summary      Pagar várias parcelas em lote
// @Tags         installments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkPayRequest  true  "Lista de pagamentos"
// @Success      200   {object}  dto.BulkPayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/installments/pay-bulk [post]
func (h *InstallmentHandler) PayBulk(c *fiber.Ctx) error {
	var in dto.BulkPayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.PayBulk(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
