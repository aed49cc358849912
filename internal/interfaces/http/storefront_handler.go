package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/storefront"
)

// StorefrontHandler trata a vitrine pública da loja (sem autenticação).
type StorefrontHandler struct {
	uc *storefront.StorefrontUseCase
}

// NewStorefrontHandler constrói o handler.
func NewStorefrontHandler(uc *storefront.StorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// GetStore godoc
// @Summary      Página pública da loja
// @Tags         storefront
// @Produce      json
// @Param        slug  path  string  true  "Slug da loja"
// @Success      200   {object}  dto.StorefrontResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /store/{slug} [get]
func (h *StorefrontHandler) GetStore(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SLUG", Message: "slug é obrigatório"})
	}
	out, err := h.uc.GetStore(c.UserContext(), slug)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CatalogPDF godoc
// @Summary      Catálogo da loja em PDF
// @Tags         storefront
// @Produce      application/pdf
// @Param        slug  path  string  true  "Slug da loja"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /store/{slug}/catalog.pdf [get]
func (h *StorefrontHandler) CatalogPDF(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SLUG", Message: "slug é obrigatório"})
	}
	pdf, err := h.uc.CatalogPDF(c.UserContext(), slug)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo-`+slug+`.pdf"`)
	return c.Send(pdf)
}
