package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// OrganizationHandler administração de tenants (tela MASTER_ADMIN, só SUPER_ADMIN).
type OrganizationHandler struct {
	uc *usecase.OrganizationUseCase
}

func NewOrganizationHandler(uc *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

// Provision cria um tenant completo com o primeiro ADM.
func (h *OrganizationHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Provision(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista tenants paginados.
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve um tenant.
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update altera configurações do tenant.
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suspend bloqueia o tenant.
func (h *OrganizationHandler) Suspend(c *fiber.Ctx) error {
	if err := h.uc.Suspend(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reactivate devolve o tenant a ACTIVE.
func (h *OrganizationHandler) Reactivate(c *fiber.Ctx) error {
	if err := h.uc.Reactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
