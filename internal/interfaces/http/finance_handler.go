package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// FinanceHandler razão financeiro (módulo FINANCE).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create registra um lançamento.
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetStatus transiciona o status de um lançamento.
func (h *FinanceHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetTransactionStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Context(), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista lançamentos do tenant.
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetOrgID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary agregados do razão com insight executivo.
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete remove um lançamento.
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOrgID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
