package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// SessionHandler expõe a visão de módulos da sessão atual (fonte da sidebar).
type SessionHandler struct {
	uc *usecase.AccessUseCase
}

func NewSessionHandler(uc *usecase.AccessUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Modules particiona o catálogo em módulos liberados e bloqueados para o plano
// do tenant da sessão, com a dica de upgrade de cada bloqueado.
func (h *SessionHandler) Modules(c *fiber.Ctx) error {
	out, err := h.uc.SessionModules(c.Context(), GetRole(c), GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
