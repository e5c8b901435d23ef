package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	apphttp "github.com/wsbrasil/nexus-api/internal/interfaces/http"
	pkgjwt "github.com/wsbrasil/nexus-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOrgID     = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "nexus-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para parsear o JWT e carregar os locals
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
				"org":  apphttp.GetOrgID(c),
			})
		},
	)
	return app
}

// tokenForRole gera um JWT com o papel indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, role, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o usuário tem o papel exigido → deve passar (HTTP 200).
func TestRequireRole_AdmAcessaRotaAdm(t *testing.T) {
	app := buildTestApp(entity.RoleADM)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleADM))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADM deve poder acessar rota restrita a ADM")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleADM, body["role"], "o papel deve vir do token")
	assert.Equal(t, testOrgID, body["org"], "o tenant deve vir do token")
}

// Caso 1b: o usuário tem um dos papéis permitidos (multi-papel) → HTTP 200.
func TestRequireRole_GerenteAcessaRotaAdmOuGerente(t *testing.T) {
	app := buildTestApp(entity.RoleADM, entity.RoleGerente)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleGerente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"GERENTE deve poder acessar rota que permite ADM ou GERENTE")
}

// Caso 2: o usuário tem um papel diferente do exigido → HTTP 403.
func TestRequireRole_VendedorBloqueadoEmRotaAdm(t *testing.T) {
	app := buildTestApp(entity.RoleADM)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"VENDEDOR não deve acessar rota restrita a ADM")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sem header Authorization → HTTP 401.
func TestAuthMiddleware_SemToken(t *testing.T) {
	app := buildTestApp(entity.RoleADM)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Header sem o prefixo Bearer → HTTP 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.RoleADM)
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token assinado com outro secret → HTTP 401.
func TestAuthMiddleware_AssinaturaIncorreta(t *testing.T) {
	tok, err := pkgjwt.Generate("outro-secret", testUserID, testOrgID, entity.RoleADM, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(entity.RoleADM)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token assinado com outro secret deve ser rejeitado")
}

// Token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, entity.RoleADM, testIssuer, -10)
	require.NoError(t, err)

	app := buildTestApp(entity.RoleADM)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token vencido deve ser rejeitado")
}
