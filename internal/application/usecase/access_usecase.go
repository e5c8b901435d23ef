package usecase

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entitlement"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

// AccessUseCase resolve o nível de assinatura do tenant e avalia o acesso a
// módulos. É o único caminho entre o middleware HTTP e a tabela de planos.
type AccessUseCase struct {
	orgRepo repository.OrganizationRepository
}

func NewAccessUseCase(orgRepo repository.OrganizationRepository) *AccessUseCase {
	return &AccessUseCase{orgRepo: orgRepo}
}

// Evaluate decide ALLOW/DENY para o papel e tenant da sessão.
// SUPER_ADMIN decide sem consultar o banco: o bypass vale inclusive quando a
// sessão root não pertence a tenant nenhum.
func (uc *AccessUseCase) Evaluate(ctx context.Context, role, orgID string, module entity.Module) (entitlement.Decision, error) {
	if role == entity.RoleSuperAdmin {
		return entitlement.CanAccess(role, "", module), nil
	}
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return entitlement.Decision{}, err
	}
	if org == nil {
		return entitlement.Decision{}, domain.ErrNotFound
	}
	if org.Status != entity.OrgStatusActive {
		return entitlement.Decision{}, domain.ErrTenantSuspended
	}
	return entitlement.CanAccess(role, org.Subscription, module), nil
}

// SessionModules particiona o catálogo completo em liberados e bloqueados para
// a sessão atual. A sidebar do console é uma projeção direta desta resposta.
// O tenant é resolvido uma única vez, não por módulo.
func (uc *AccessUseCase) SessionModules(ctx context.Context, role, orgID string) (*dto.SessionModulesResponse, error) {
	var tier entity.Tier
	if role != entity.RoleSuperAdmin {
		org, err := uc.orgRepo.GetByID(ctx, orgID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domain.ErrNotFound
		}
		if org.Status != entity.OrgStatusActive {
			return nil, domain.ErrTenantSuspended
		}
		tier = org.Subscription
	}

	out := &dto.SessionModulesResponse{
		Allowed: make([]entity.Module, 0, len(entitlement.AllModules())),
		Locked:  []dto.LockedModuleResponse{},
	}
	for _, m := range entitlement.AllModules() {
		decision := entitlement.CanAccess(role, tier, m)
		if decision.Allowed {
			out.Allowed = append(out.Allowed, m)
			continue
		}
		out.Locked = append(out.Locked, dto.LockedModuleResponse{
			Module:        m,
			RequiredLevel: decision.RequiredTier,
			Reason:        decision.Reason,
		})
	}
	return out, nil
}
