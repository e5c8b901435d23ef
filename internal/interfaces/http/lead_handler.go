package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// LeadHandler funil de vendas (módulo SALES).
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create cria um lead na primeira etapa do funil.
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MoveStage drop de Kanban: move o lead de etapa passando pelo motor de score.
func (h *LeadHandler) MoveStage(c *fiber.Ctx) error {
	var in dto.MoveLeadStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.MoveStage(c.Context(), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista leads do tenant.
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetOrgID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve um lead.
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update edição de detalhe do lead.
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete remove um lead.
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOrgID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
