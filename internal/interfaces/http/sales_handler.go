package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/sales"
)

// SalesHandler trata o checkout, a visão por cliente e a associação de
// movimentos (protegido).
type SalesHandler struct {
	record *sales.RecordSaleUseCase
	query  *sales.CustomerSalesQuery
}

// NewSalesHandler constrói o handler.
func NewSalesHandler(record *sales.RecordSaleUseCase, query *sales.CustomerSalesQuery) *SalesHandler {
	return &SalesHandler{record: record, query: query}
}

// RecordSale godoc
// @Summary      Registrar venda (checkout)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Itens, pagamento e parcelamento"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.record.Record(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CustomerSales godoc
// @Summary      Visão agregada de vendas do cliente
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {object}  dto.CustomerSalesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/sales [get]
func (h *SalesHandler) CustomerSales(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.query.GetCustomerSales(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CustomerInstallments godoc
// @Summary      Parcelas do cliente
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {array}  dto.InstallmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/installments [get]
func (h *SalesHandler) CustomerInstallments(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.query.ListCustomerInstallments(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AvailableMovements godoc
// @Summary      Vendas ainda sem cliente associado
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/movements/available [get]
func (h *SalesHandler) AvailableMovements(c *fiber.Ctx) error {
	out, err := h.query.ListAvailableMovements(c.UserContext(), GetUserID(c), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AssignMovement godoc
// @Summary      Associar movimento (e seu grupo de venda) a um cliente
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID do movimento"
// @Param        body  body  dto.AssignMovementRequest  true  "customer_id (nulo desassocia)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/assign [post]
func (h *SalesHandler) AssignMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.AssignMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.query.AssignMovement(c.UserContext(), GetUserID(c), id, in.CustomerID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
