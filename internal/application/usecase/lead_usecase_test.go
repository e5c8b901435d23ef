package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeLeadRepo struct {
	byID map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{byID: map[string]*entity.Lead{}}
}

func (r *fakeLeadRepo) Upsert(_ context.Context, lead *entity.Lead) error {
	cp := *lead
	r.byID[lead.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) ListByOrganization(_ context.Context, orgID string, _, _ int) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.byID {
		if l.OrganizationID == orgID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (r *fakeOrgRepo) Create(_ context.Context, org *entity.Organization) error { return nil }
func (r *fakeOrgRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	return r.orgs[id], nil
}
func (r *fakeOrgRepo) Update(_ context.Context, org *entity.Organization) error { return nil }
func (r *fakeOrgRepo) List(_ context.Context, _, _ int) ([]*entity.Organization, error) {
	return nil, nil
}

const testTenantID = "org-ws-matriz"

func buildLeadUseCase() (*usecase.LeadUseCase, *fakeLeadRepo) {
	leadRepo := newFakeLeadRepo()
	orgRepo := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		testTenantID: {
			ID:             testTenantID,
			Name:           "WS Matriz",
			Subscription:   entity.TierGold,
			Status:         entity.OrgStatusActive,
			PipelineStages: entity.DefaultPipelineStages(),
		},
	}}
	return usecase.NewLeadUseCase(leadRepo, orgRepo), leadRepo
}

func mustCreateLead(t *testing.T, uc *usecase.LeadUseCase) *dto.LeadResponse {
	t.Helper()
	lead, err := uc.Create(context.Background(), testTenantID, dto.CreateLeadRequest{
		Company: "Padaria Estrela do Sul",
		Contact: "Dona Marta",
		Email:   "MARTA@ESTRELA.COM.BR",
	})
	require.NoError(t, err)
	return lead
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Lead recém-criado nasce na primeira etapa do funil, com score 50 e AQUECIDO.
// Email é normalizado para minúsculas.
func TestCreateLead_NasceNaPrimeiraEtapaComScoreInicial(t *testing.T) {
	uc, _ := buildLeadUseCase()
	lead := mustCreateLead(t, uc)

	assert.Equal(t, "QUALIFICADO", lead.Status)
	assert.Equal(t, 50, lead.Score)
	assert.Equal(t, entity.TemperatureAquecido, lead.Temperature)
	assert.Equal(t, "marta@estrela.com.br", lead.Email)
	assert.NotNil(t, lead.Tasks, "tasks deve serializar como lista vazia, não null")
	assert.NotNil(t, lead.Reminders)
}

// Sem empresa não há lead.
func TestCreateLead_SemEmpresaFalha(t *testing.T) {
	uc, _ := buildLeadUseCase()
	_, err := uc.Create(context.Background(), testTenantID, dto.CreateLeadRequest{Company: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// O score acumula +10 por etapa intermediária e +50 no fechamento:
// 50 → REUNIAO 60 → PROPOSTA 70 → FECHAMENTO 120 (FOGO).
func TestMoveStage_ScoreAcumulaAteOFechamento(t *testing.T) {
	uc, _ := buildLeadUseCase()
	lead := mustCreateLead(t, uc)
	ctx := context.Background()

	lead, err := uc.MoveStage(ctx, testTenantID, lead.ID, dto.MoveLeadStageRequest{Stage: "REUNIAO"})
	require.NoError(t, err)
	assert.Equal(t, 60, lead.Score)
	assert.Equal(t, entity.TemperatureAquecido, lead.Temperature)

	lead, err = uc.MoveStage(ctx, testTenantID, lead.ID, dto.MoveLeadStageRequest{Stage: "PROPOSTA"})
	require.NoError(t, err)
	assert.Equal(t, 70, lead.Score)

	lead, err = uc.MoveStage(ctx, testTenantID, lead.ID, dto.MoveLeadStageRequest{Stage: "FECHAMENTO"})
	require.NoError(t, err)
	assert.Equal(t, 120, lead.Score, "fechamento concede bônus de 50")
	assert.Equal(t, entity.TemperatureFogo, lead.Temperature)
	assert.Equal(t, "FECHAMENTO", lead.Status)
}

// Soltar o lead na etapa em que ele já está não duplica o bônus.
func TestMoveStage_DropNaMesmaEtapaENoOp(t *testing.T) {
	uc, repo := buildLeadUseCase()
	lead := mustCreateLead(t, uc)
	ctx := context.Background()

	lead, err := uc.MoveStage(ctx, testTenantID, lead.ID, dto.MoveLeadStageRequest{Stage: "REUNIAO"})
	require.NoError(t, err)
	require.Equal(t, 60, lead.Score)

	lead, err = uc.MoveStage(ctx, testTenantID, lead.ID, dto.MoveLeadStageRequest{Stage: "REUNIAO"})
	require.NoError(t, err)
	assert.Equal(t, 60, lead.Score, "drop repetido não pontua de novo")

	stored, _ := repo.GetByID(ctx, lead.ID)
	assert.Equal(t, 60, stored.Score)
}

// Etapa fora do funil configurado do tenant é rejeitada.
func TestMoveStage_EtapaForaDoFunilFalha(t *testing.T) {
	uc, _ := buildLeadUseCase()
	lead := mustCreateLead(t, uc)

	_, err := uc.MoveStage(context.Background(), testTenantID, lead.ID, dto.MoveLeadStageRequest{Stage: "INEXISTENTE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Lead de outro tenant é invisível, mesmo com o ID correto.
func TestMoveStage_LeadDeOutroTenantNaoExiste(t *testing.T) {
	uc, _ := buildLeadUseCase()
	lead := mustCreateLead(t, uc)

	_, err := uc.MoveStage(context.Background(), "org-intrusa", lead.ID, dto.MoveLeadStageRequest{Stage: "REUNIAO"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Probability fora de 0..100 é rejeitada na edição.
func TestUpdateLead_ProbabilidadeForaDaFaixaFalha(t *testing.T) {
	uc, _ := buildLeadUseCase()
	lead := mustCreateLead(t, uc)

	bad := 120
	_, err := uc.Update(context.Background(), testTenantID, lead.ID, dto.UpdateLeadRequest{Probability: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
