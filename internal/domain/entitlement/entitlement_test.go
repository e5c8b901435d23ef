package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsbrasil/nexus-api/internal/domain/entitlement"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

func asSet(modules []entity.Module) map[entity.Module]bool {
	set := make(map[entity.Module]bool, len(modules))
	for _, m := range modules {
		set[m] = true
	}
	return set
}

// A tabela de planos deve formar uma cadeia de subconjuntos estritos:
// BRONZE ⊆ SILVER ⊆ GOLD = todos os módulos.
func TestTierModules_CadeiaDeSubconjuntos(t *testing.T) {
	bronze := entitlement.TierModules(entity.TierBronze)
	silver := asSet(entitlement.TierModules(entity.TierSilver))
	gold := asSet(entitlement.TierModules(entity.TierGold))

	for _, m := range bronze {
		assert.True(t, silver[m], "módulo %s do BRONZE deve existir no SILVER", m)
	}
	for m := range silver {
		assert.True(t, gold[m], "módulo %s do SILVER deve existir no GOLD", m)
	}

	all := entitlement.AllModules()
	require.Len(t, gold, len(all), "GOLD deve liberar todos os módulos")
	for _, m := range all {
		assert.True(t, gold[m])
	}
}

func TestTierMaxUsers(t *testing.T) {
	assert.Equal(t, 3, entitlement.TierMaxUsers(entity.TierBronze))
	assert.Equal(t, 15, entitlement.TierMaxUsers(entity.TierSilver))
	assert.Equal(t, 100, entitlement.TierMaxUsers(entity.TierGold))
	assert.Equal(t, 0, entitlement.TierMaxUsers(entity.Tier("PLATINUM")))
}

// SUPER_ADMIN ignora o plano: acesso liberado a qualquer módulo em qualquer nível.
func TestCanAccess_SuperAdminBypassTotal(t *testing.T) {
	for _, tier := range []entity.Tier{entity.TierBronze, entity.TierSilver, entity.TierGold} {
		for _, m := range entitlement.AllModules() {
			d := entitlement.CanAccess(entity.RoleSuperAdmin, tier, m)
			assert.True(t, d.Allowed, "SUPER_ADMIN deve acessar %s no nível %s", m, tier)
		}
	}
}

// PRICING é sempre alcançável: um usuário bloqueado precisa ver o que comprar.
func TestCanAccess_PricingSempreLiberado(t *testing.T) {
	roles := []string{entity.RoleADM, entity.RoleVendedor, entity.RoleRH, entity.RoleFinanceiro}
	for _, role := range roles {
		d := entitlement.CanAccess(role, entity.TierBronze, entity.ModulePricing)
		assert.True(t, d.Allowed, "papel %s deve alcançar PRICING mesmo no BRONZE", role)
	}
}

func TestCanAccess_NegacaoComNivelExigido(t *testing.T) {
	// FINANCE não está no BRONZE → negar exigindo GOLD.
	d := entitlement.CanAccess(entity.RoleADM, entity.TierBronze, entity.ModuleFinance)
	require.False(t, d.Allowed)
	assert.Equal(t, entity.TierGold, d.RequiredTier)
	assert.Contains(t, d.Reason, "FINANCE")
	assert.Contains(t, d.Reason, "GOLD")

	// RH no BRONZE → negar exigindo apenas SILVER.
	d = entitlement.CanAccess(entity.RoleVendedor, entity.TierBronze, entity.ModuleRH)
	require.False(t, d.Allowed)
	assert.Equal(t, entity.TierSilver, d.RequiredTier)

	// MARKETING pede SILVER como dica de upgrade.
	d = entitlement.CanAccess(entity.RoleMarketing, entity.TierBronze, entity.ModuleMarketing)
	require.False(t, d.Allowed)
	assert.Equal(t, entity.TierSilver, d.RequiredTier)

	// RH já liberado no SILVER.
	d = entitlement.CanAccess(entity.RoleRH, entity.TierSilver, entity.ModuleRH)
	assert.True(t, d.Allowed)
}

// Módulo ainda não classificado na tabela nunca é liberado em silêncio:
// a negação padrão exige GOLD.
func TestCanAccess_ModuloDesconhecidoExigeGold(t *testing.T) {
	d := entitlement.CanAccess(entity.RoleADM, entity.TierGold, entity.Module("COPILOT"))
	require.False(t, d.Allowed)
	assert.Equal(t, entity.TierGold, d.RequiredTier)
}
