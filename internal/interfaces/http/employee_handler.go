package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// EmployeeHandler RH (módulo RH): colaboradores e matriz 9-box.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create cadastra um colaborador.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista colaboradores do tenant.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetOrgID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// NineBox devolve a grade 3×3 com os colaboradores ativos.
func (h *EmployeeHandler) NineBox(c *fiber.Ctx) error {
	out, err := h.uc.NineBox(c.Context(), GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve um colaborador.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update altera um colaborador.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete remove um colaborador.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOrgID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
