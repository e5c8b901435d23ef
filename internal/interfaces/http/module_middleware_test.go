package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entitlement"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	apphttp "github.com/wsbrasil/nexus-api/internal/interfaces/http"
)

// stubEvaluator avaliador de entitlement controlado pelo teste.
type stubEvaluator struct {
	decision entitlement.Decision
	err      error

	// capturados na última chamada
	gotRole   string
	gotOrgID  string
	gotModule entity.Module
}

func (s *stubEvaluator) Evaluate(_ context.Context, role, orgID string, module entity.Module) (entitlement.Decision, error) {
	s.gotRole = role
	s.gotOrgID = orgID
	s.gotModule = module
	return s.decision, s.err
}

// buildModuleApp monta uma rota gated por RequireModule, com a identidade da
// sessão injetada direto nos locals (o JWT já é coberto nos testes de auth).
func buildModuleApp(role, orgID string, module entity.Module, eval *stubEvaluator) *fiber.App {
	app := fiber.New()
	app.Get("/gated",
		func(c *fiber.Ctx) error {
			c.Locals(apphttp.LocalUserID, testUserID)
			c.Locals(apphttp.LocalOrgID, orgID)
			c.Locals(apphttp.LocalRole, role)
			return c.Next()
		},
		apphttp.RequireModule(module, eval),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func doGated(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Plano libera o módulo → a requisição passa e o avaliador recebe a sessão.
func TestRequireModule_ModuloLiberadoPassa(t *testing.T) {
	eval := &stubEvaluator{decision: entitlement.Decision{Allowed: true}}
	app := buildModuleApp(entity.RoleVendedor, testOrgID, entity.ModuleSales, eval)

	resp := doGated(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RoleVendedor, eval.gotRole)
	assert.Equal(t, testOrgID, eval.gotOrgID)
	assert.Equal(t, entity.ModuleSales, eval.gotModule)
}

// Módulo fora do plano → HTTP 402 com o nível exigido no corpo, para o console
// abrir o prompt de upgrade.
func TestRequireModule_ForaDoPlanoDevolve402ComNivelExigido(t *testing.T) {
	eval := &stubEvaluator{decision: entitlement.Decision{
		Allowed:      false,
		RequiredTier: entity.TierSilver,
		Reason:       "O módulo RH exige o nível SILVER de inteligência processual.",
	}}
	app := buildModuleApp(entity.RoleVendedor, testOrgID, entity.ModuleRH, eval)

	resp := doGated(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UPGRADE_REQUIRED", body["code"])
	assert.Equal(t, string(entity.ModuleRH), body["module"])
	assert.Equal(t, string(entity.TierSilver), body["requiredLevel"])
	assert.Contains(t, body["message"], "SILVER")
}

// Tenant suspenso → HTTP 403 TENANT_SUSPENDED, mesmo com credencial válida.
func TestRequireModule_TenantSuspensoDevolve403(t *testing.T) {
	eval := &stubEvaluator{err: domain.ErrTenantSuspended}
	app := buildModuleApp(entity.RoleADM, testOrgID, entity.ModuleSales, eval)

	resp := doGated(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TENANT_SUSPENDED")
}

// Falha de infraestrutura ao consultar o plano → nega com 503, nunca libera
// em silêncio.
func TestRequireModule_FalhaDeInfraNegaCom503(t *testing.T) {
	eval := &stubEvaluator{err: errors.New("timeout no banco")}
	app := buildModuleApp(entity.RoleADM, testOrgID, entity.ModuleFinance, eval)

	resp := doGated(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ENTITLEMENT_CHECK_FAILED")
}

// Sessão sem papel no token → HTTP 401 antes de consultar o avaliador.
func TestRequireModule_SemPapelDevolve401(t *testing.T) {
	eval := &stubEvaluator{decision: entitlement.Decision{Allowed: true}}
	app := buildModuleApp("", testOrgID, entity.ModuleSales, eval)

	resp := doGated(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, eval.gotModule, "o avaliador não deve ser consultado sem papel")
}
