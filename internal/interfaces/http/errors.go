package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
)

// respondError traduz os sentinelas de domínio para status HTTP. Erros não
// mapeados sobem como 500 sem vazar detalhe interno.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro já existe"})
	case errors.Is(err, domain.ErrSeatLimit):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEAT_LIMIT", Message: "teto de usuários do plano atingido"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operação não permitida"})
	case errors.Is(err, domain.ErrTenantSuspended):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_SUSPENDED", Message: "instância suspensa; contate o administrador"})
	case errors.Is(err, domain.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PERMISSION_DENIED", Message: "acesso negado pelo store"})
	case errors.Is(err, domain.ErrSchemaMismatch):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SCHEMA_MISMATCH", Message: "schema do store divergente; execute as migrações"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
	}
}

// parsePage extrai a paginação da query string.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}
