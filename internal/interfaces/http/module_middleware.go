package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entitlement"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// accessEvaluator contrato mínimo que o middleware precisa para avaliar o
// entitlement. Implementado por *usecase.AccessUseCase; a interface evita o
// import circular.
type accessEvaluator interface {
	Evaluate(ctx context.Context, role, orgID string, module entity.Module) (entitlement.Decision, error)
}

// RequireModule devolve um middleware Fiber que verifica se o plano do tenant
// da sessão libera o módulo. Deve ser usado DEPOIS de AuthMiddleware.
//
// Comportamento:
//   - 402 Payment Required → módulo fora do plano; corpo traz o nível exigido
//     para o console abrir o prompt de upgrade.
//   - 403 Forbidden → tenant suspenso.
//   - 503 Service Unavailable → falha de infraestrutura ao consultar o plano:
//     acesso NEGADO, nunca liberado em silêncio.
func RequireModule(module entity.Module, evaluator accessEvaluator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		orgID := GetOrgID(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sessão sem papel no token",
			})
		}

		decision, err := evaluator.Evaluate(c.Context(), role, orgID, module)
		if err != nil {
			if errors.Is(err, domain.ErrTenantSuspended) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Code:    "TENANT_SUSPENDED",
					Message: "instância suspensa; contate o administrador",
				})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ENTITLEMENT_CHECK_FAILED",
				Message: "não foi possível verificar o plano, tente mais tarde",
			})
		}

		if !decision.Allowed {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.UpgradeResponse{
				Code:          "UPGRADE_REQUIRED",
				Message:       decision.Reason,
				Module:        string(module),
				RequiredLevel: string(decision.RequiredTier),
			})
		}

		return c.Next()
	}
}
