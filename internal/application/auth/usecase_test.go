package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wsbrasil/nexus-api/internal/application/auth"
	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/pkg/config"
	pkgjwt "github.com/wsbrasil/nexus-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.UserProfile
	byID    map[string]*entity.UserProfile
	updated *entity.UserProfile
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.UserProfile) error {
	if r.byEmail == nil {
		r.byEmail = map[string]*entity.UserProfile{}
	}
	if r.byID == nil {
		r.byID = map[string]*entity.UserProfile{}
	}
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.UserProfile, error) {
	return r.byID[id], nil
}
func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.UserProfile, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) Update(_ context.Context, u *entity.UserProfile) error {
	r.updated = u
	return nil
}
func (r *fakeUserRepo) ListByOrganization(_ context.Context, _ string, _, _ int) ([]*entity.UserProfile, error) {
	return nil, nil
}
func (r *fakeUserRepo) CountActiveByOrganization(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (r *fakeOrgRepo) Create(_ context.Context, o *entity.Organization) error { return nil }
func (r *fakeOrgRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	return r.orgs[id], nil
}
func (r *fakeOrgRepo) Update(_ context.Context, o *entity.Organization) error { return nil }
func (r *fakeOrgRepo) List(_ context.Context, _, _ int) ([]*entity.Organization, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testOrgID  = "ORG-WS-001"
)

func masterCfg() config.MasterConfig {
	return config.MasterConfig{
		Owner: config.MasterCredential{
			Email: "diretoria@wsbrasil.com.br", Password: "owner-secret",
			UserID: "owner-ws-root", Name: "Proprietário WS Brasil",
		},
		Developer: config.MasterCredential{
			Email: "dev@wsbrasil.com", Password: "dev-secret",
			UserID: "master-dev", Name: "Desenvolvedor Master",
		},
		FactoryAdmin: config.MasterCredential{
			Email: "admin", Password: "factory-secret",
			UserID: "factory-admin", Name: "Admin de Fábrica",
		},
		OrganizationID: testOrgID,
	}
}

func buildGate(t *testing.T, users *fakeUserRepo, orgs *fakeOrgRepo) *auth.AuthUseCase {
	t.Helper()
	return auth.NewAuthUseCase(users, orgs, masterCfg(), auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "nexus-test",
	})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────────

// A credencial master vence mesmo com email colidente na lista geral de
// usuários (propriedade de ordem de prioridade).
func TestLogin_MasterOwnerTemPrioridadeSobreLookup(t *testing.T) {
	impostor := &entity.UserProfile{
		ID: "u-impostor", OrganizationID: "ORG-OUTRA",
		Email: "diretoria@wsbrasil.com.br", Role: entity.RoleVendedor,
		PasswordHash: hashOf(t, "outra-senha"), IsActive: true,
	}
	users := &fakeUserRepo{byEmail: map[string]*entity.UserProfile{impostor.Email: impostor}}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{}}
	gate := buildGate(t, users, orgs)

	out, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "  Diretoria@WSBrasil.com.br ", Password: "owner-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner-ws-root", out.User.ID)
	assert.Equal(t, entity.RoleSuperAdmin, out.User.Role)
	assert.Equal(t, testOrgID, out.User.OrganizationID)
	assert.False(t, out.MustResetPassword)

	// O token carrega a identidade root, não a do impostor.
	userID, orgID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner-ws-root", userID)
	assert.Equal(t, testOrgID, orgID)
	assert.Equal(t, entity.RoleSuperAdmin, role)
}

func TestLogin_MasterDeveloper(t *testing.T) {
	gate := buildGate(t, &fakeUserRepo{byEmail: map[string]*entity.UserProfile{}}, &fakeOrgRepo{})

	out, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "dev@wsbrasil.com", Password: "dev-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "master-dev", out.User.ID)
	assert.Equal(t, entity.RoleSuperAdmin, out.User.Role)
}

// A conta de fábrica entra, mas a sessão exige troca de senha como próxima ação.
func TestLogin_AdminDeFabricaExigeTrocaDeSenha(t *testing.T) {
	gate := buildGate(t, &fakeUserRepo{byEmail: map[string]*entity.UserProfile{}}, &fakeOrgRepo{})

	out, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "admin", Password: "factory-secret",
	})
	require.NoError(t, err)
	assert.True(t, out.MustResetPassword)
	assert.Equal(t, entity.RoleADM, out.User.Role)
}

// Tenant suspenso falha mesmo com o segredo correto.
func TestLogin_TenantSuspensoFalhaComSenhaCorreta(t *testing.T) {
	user := &entity.UserProfile{
		ID: "u1", OrganizationID: "ORG-SUSP", Email: "ana@tenant.com",
		PasswordHash: hashOf(t, "senha-correta"), Role: entity.RoleADM, IsActive: true,
	}
	users := &fakeUserRepo{byEmail: map[string]*entity.UserProfile{user.Email: user}}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		"ORG-SUSP": {ID: "ORG-SUSP", Status: entity.OrgStatusSuspended},
	}}
	gate := buildGate(t, users, orgs)

	_, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tenant.com", Password: "senha-correta",
	})
	assert.ErrorIs(t, err, domain.ErrTenantSuspended)
}

func TestLogin_UsuarioComumComCredencialValida(t *testing.T) {
	user := &entity.UserProfile{
		ID: "u1", OrganizationID: testOrgID, Email: "ana@tenant.com",
		PasswordHash: hashOf(t, "senha-correta"), Role: entity.RoleGerente, IsActive: true,
	}
	users := &fakeUserRepo{byEmail: map[string]*entity.UserProfile{user.Email: user}}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		testOrgID: {ID: testOrgID, Status: entity.OrgStatusActive},
	}}
	gate := buildGate(t, users, orgs)

	out, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "ANA@tenant.com", Password: "senha-correta",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, entity.RoleGerente, out.User.Role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	user := &entity.UserProfile{
		ID: "u1", OrganizationID: testOrgID, Email: "ana@tenant.com",
		PasswordHash: hashOf(t, "senha-correta"), Role: entity.RoleGerente, IsActive: true,
	}
	users := &fakeUserRepo{byEmail: map[string]*entity.UserProfile{user.Email: user}}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		testOrgID: {ID: testOrgID, Status: entity.OrgStatusActive},
	}}
	gate := buildGate(t, users, orgs)

	_, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tenant.com", Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CredencialDesconhecida(t *testing.T) {
	gate := buildGate(t, &fakeUserRepo{byEmail: map[string]*entity.UserProfile{}}, &fakeOrgRepo{})

	_, err := gate.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@lugar-nenhum.com", Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	user := &entity.UserProfile{ID: "u1", PasswordHash: hashOf(t, "antiga")}
	users := &fakeUserRepo{byID: map[string]*entity.UserProfile{"u1": user}}
	gate := buildGate(t, users, &fakeOrgRepo{})

	require.NoError(t, gate.ResetPassword(context.Background(), "u1", "nova-senha-longa"))
	require.NotNil(t, users.updated)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(users.updated.PasswordHash), []byte("nova-senha-longa")))

	// Senha curta demais é rejeitada antes de tocar o repositório.
	assert.ErrorIs(t, gate.ResetPassword(context.Background(), "u1", "curta"), domain.ErrInvalidInput)
}

// O fluxo completo da conta de fábrica: login com a credencial fixa, troca de
// senha obrigatória materializando o perfil (não existe linha persistida antes
// da primeira troca) e login seguinte resolvendo pelo lookup geral.
func TestResetPassword_AdminDeFabricaMaterializaPerfil(t *testing.T) {
	users := &fakeUserRepo{}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		testOrgID: {ID: testOrgID, Status: entity.OrgStatusActive},
	}}
	gate := buildGate(t, users, orgs)
	ctx := context.Background()

	out, err := gate.Login(ctx, dto.LoginRequest{Email: "admin", Password: "factory-secret"})
	require.NoError(t, err)
	require.True(t, out.MustResetPassword)

	// A troca cria o perfil com o novo hash, mesmo sem linha pré-existente.
	require.NoError(t, gate.ResetPassword(ctx, out.User.ID, "nova-senha-de-fabrica"))

	created := users.byID["factory-admin"]
	require.NotNil(t, created, "a troca deve materializar o perfil de fábrica")
	assert.Equal(t, testOrgID, created.OrganizationID)
	assert.Equal(t, entity.RoleADM, created.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(created.PasswordHash), []byte("nova-senha-de-fabrica")))

	// Login seguinte com a senha nova resolve pelo lookup geral, sem flag.
	again, err := gate.Login(ctx, dto.LoginRequest{Email: "admin", Password: "nova-senha-de-fabrica"})
	require.NoError(t, err)
	assert.False(t, again.MustResetPassword)
	assert.Equal(t, "factory-admin", again.User.ID)
}

// A troca para um ID desconhecido (que não é a conta de fábrica) segue falhando.
func TestResetPassword_IDDesconhecidoFalha(t *testing.T) {
	gate := buildGate(t, &fakeUserRepo{}, &fakeOrgRepo{})
	assert.ErrorIs(t,
		gate.ResetPassword(context.Background(), "u-inexistente", "senha-bem-longa"),
		domain.ErrUserNotFound)
}
