// Package entitlement concentra as regras de plano do SaaS: quais módulos cada
// nível de assinatura libera, o teto de assentos por nível e a avaliação de
// acesso consultada a cada navegação.
package entitlement

import (
	"fmt"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// tierRules tabela estática plano → módulos liberados + teto de usuários.
// BRONZE e SILVER são subconjuntos estritos construindo até GOLD (tudo).
var tierRules = map[entity.Tier]struct {
	modules  []entity.Module
	maxUsers int
}{
	entity.TierBronze: {
		modules: []entity.Module{
			entity.ModuleDashboard, entity.ModuleSales,
			entity.ModuleScheduling, entity.ModulePricing,
		},
		maxUsers: 3,
	},
	entity.TierSilver: {
		modules: []entity.Module{
			entity.ModuleDashboard, entity.ModuleSales,
			entity.ModuleScheduling, entity.ModuleRH, entity.ModulePricing,
		},
		maxUsers: 15,
	},
	entity.TierGold: {
		modules:  AllModules(),
		maxUsers: 100,
	},
}

// AllModules devolve todos os módulos do console (conjunto do plano GOLD).
func AllModules() []entity.Module {
	return []entity.Module{
		entity.ModuleDashboard, entity.ModuleMarketing, entity.ModuleSales,
		entity.ModuleDocuments, entity.ModuleERP, entity.ModuleInventory,
		entity.ModuleRH, entity.ModuleScheduling, entity.ModuleSettings,
		entity.ModuleMasterAdmin, entity.ModuleFinance, entity.ModuleSecurity,
		entity.ModulePricing,
	}
}

// TierModules devolve os módulos liberados para o nível (cópia defensiva).
// Nível desconhecido libera apenas o conjunto vazio.
func TierModules(t entity.Tier) []entity.Module {
	rules, ok := tierRules[t]
	if !ok {
		return nil
	}
	out := make([]entity.Module, len(rules.modules))
	copy(out, rules.modules)
	return out
}

// TierMaxUsers devolve o teto de perfis ativos do nível. Nível desconhecido → 0.
func TierMaxUsers(t entity.Tier) int {
	return tierRules[t].maxUsers
}

// Decision resultado da avaliação de acesso. Quando negado, RequiredTier e
// Reason alimentam o prompt de upgrade — o avaliador decide e explica, nunca
// renderiza.
type Decision struct {
	Allowed      bool
	RequiredTier entity.Tier
	Reason       string
}

// allow decisão positiva.
func allow() Decision { return Decision{Allowed: true} }

// CanAccess decide ALLOW / DENY(requiredTier, reason) para um papel, nível e
// módulo. Ordem de avaliação:
//  1. SUPER_ADMIN não obedece regras de plano (bypass total).
//  2. PRICING é sempre alcançável, para que um usuário bloqueado veja o que comprar.
//  3. Demais módulos exigem presença na tabela do nível.
//
// Módulo ausente da tabela em todos os níveis abaixo de GOLD (inclusive um
// módulo recém-criado ainda não classificado) nega exigindo GOLD — nunca é
// liberado em silêncio.
func CanAccess(role string, tier entity.Tier, module entity.Module) Decision {
	if role == entity.RoleSuperAdmin {
		return allow()
	}
	if module == entity.ModulePricing {
		return allow()
	}
	for _, m := range TierModules(tier) {
		if m == module {
			return allow()
		}
	}
	required := RequiredTierFor(module)
	return Decision{
		Allowed:      false,
		RequiredTier: required,
		Reason:       fmt.Sprintf("O módulo %s exige o nível %s de inteligência processual.", module, required),
	}
}

// RequiredTierFor devolve o nível mínimo que libera o módulo: RH e MARKETING a
// partir de SILVER; qualquer outro módulo restrito exige GOLD.
func RequiredTierFor(module entity.Module) entity.Tier {
	if module == entity.ModuleRH || module == entity.ModuleMarketing {
		return entity.TierSilver
	}
	return entity.TierGold
}
