package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

type fakeUserRepo struct {
	byID map[string]*entity.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.UserProfile{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.UserProfile) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.UserProfile, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.UserProfile, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.UserProfile) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByOrganization(_ context.Context, orgID string, _, _ int) ([]*entity.UserProfile, error) {
	var out []*entity.UserProfile
	for _, u := range r.byID {
		if u.OrganizationID == orgID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountActiveByOrganization(_ context.Context, orgID string) (int, error) {
	n := 0
	for _, u := range r.byID {
		if u.OrganizationID == orgID && u.IsActive {
			n++
		}
	}
	return n, nil
}

func buildUserUseCase(maxUsers int) (*usecase.UserUseCase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	orgRepo := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		testTenantID: {
			ID:           testTenantID,
			Name:         "WS Matriz",
			Subscription: entity.TierBronze,
			Status:       entity.OrgStatusActive,
			MaxUsers:     maxUsers,
		},
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return usecase.NewUserUseCase(userRepo, orgRepo, log), userRepo
}

func createUserReq(email string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    email,
		Password: "senha-muito-forte",
		Name:     "Colaborador",
		Role:     entity.RoleVendedor,
	}
}

// O teto de assentos do plano vale para perfis ATIVOS: o terceiro cadastro em
// um plano de 2 assentos falha com ErrSeatLimit.
func TestCreateUser_TetoDeAssentosDoPlano(t *testing.T) {
	uc, _ := buildUserUseCase(2)
	ctx := context.Background()

	_, err := uc.Create(ctx, testTenantID, createUserReq("um@ws.com.br"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, testTenantID, createUserReq("dois@ws.com.br"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, testTenantID, createUserReq("tres@ws.com.br"))
	assert.ErrorIs(t, err, domain.ErrSeatLimit)
}

// Desativar um perfil libera o assento; reativar com o teto cheio falha.
func TestUpdateUser_ReativacaoRecontaOTeto(t *testing.T) {
	uc, _ := buildUserUseCase(2)
	ctx := context.Background()

	first, err := uc.Create(ctx, testTenantID, createUserReq("um@ws.com.br"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, testTenantID, createUserReq("dois@ws.com.br"))
	require.NoError(t, err)

	// Desativa o primeiro e ocupa o assento liberado.
	off := false
	_, err = uc.Update(ctx, testTenantID, first.ID, dto.UpdateUserRequest{IsActive: &off})
	require.NoError(t, err)
	_, err = uc.Create(ctx, testTenantID, createUserReq("tres@ws.com.br"))
	require.NoError(t, err, "assento liberado pela desativação deve aceitar novo perfil")

	// Reativar o primeiro excederia o teto.
	on := true
	_, err = uc.Update(ctx, testTenantID, first.ID, dto.UpdateUserRequest{IsActive: &on})
	assert.ErrorIs(t, err, domain.ErrSeatLimit)
}

// Email repetido no cadastro é rejeitado, mesmo variando a caixa.
func TestCreateUser_EmailDuplicado(t *testing.T) {
	uc, _ := buildUserUseCase(10)
	ctx := context.Background()

	_, err := uc.Create(ctx, testTenantID, createUserReq("gerente@ws.com.br"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, testTenantID, createUserReq("GERENTE@ws.com.br"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// SUPER_ADMIN não é atribuível via cadastro de tenant.
func TestCreateUser_PapelRootNaoAtribuivel(t *testing.T) {
	uc, _ := buildUserUseCase(10)

	req := createUserReq("root@ws.com.br")
	req.Role = entity.RoleSuperAdmin
	_, err := uc.Create(context.Background(), testTenantID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Senha curta é rejeitada antes de qualquer consulta.
func TestCreateUser_SenhaCurta(t *testing.T) {
	uc, _ := buildUserUseCase(10)

	req := createUserReq("curto@ws.com.br")
	req.Password = "1234567"
	_, err := uc.Create(context.Background(), testTenantID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
