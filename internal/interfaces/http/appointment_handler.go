package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// AppointmentHandler agenda de reuniões (módulo SCHEDULING).
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create agenda uma reunião.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista agendamentos do tenant.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetOrgID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reagenda, confirma ou conclui.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConfirmationMessage gera a copy de confirmação para WhatsApp.
func (h *AppointmentHandler) ConfirmationMessage(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmationMessage(c.Context(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OptimizeSchedule devolve a ocupação semanal e um insight de produtividade.
func (h *AppointmentHandler) OptimizeSchedule(c *fiber.Ctx) error {
	out, err := h.uc.OptimizeSchedule(c.Context(), GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete cancela um agendamento.
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOrgID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
