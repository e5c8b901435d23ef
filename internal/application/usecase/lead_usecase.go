package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/crm"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

// LeadUseCase funil de vendas do tenant (Kanban SALES) com motor de score.
type LeadUseCase struct {
	leadRepo repository.LeadRepository
	orgRepo  repository.OrganizationRepository
}

func NewLeadUseCase(leadRepo repository.LeadRepository, orgRepo repository.OrganizationRepository) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo, orgRepo: orgRepo}
}

// Create cria o lead na primeira etapa do funil do tenant, com score inicial e
// temperatura derivada. Cliente não escolhe score nem etapa.
func (uc *LeadUseCase) Create(ctx context.Context, orgID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if strings.TrimSpace(in.Company) == "" {
		return nil, domain.ErrInvalidInput
	}
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	lead := &entity.Lead{
		ID:               uuid.NewString(),
		OrganizationID:   orgID,
		Company:          strings.TrimSpace(in.Company),
		CNPJ:             in.CNPJ,
		Contact:          in.Contact,
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:            in.Phone,
		Value:            in.Value,
		ProductID:        in.ProductID,
		ProductName:      in.ProductName,
		Observations:     in.Observations,
		Status:           org.FirstStage(),
		Probability:      in.Probability,
		LastContact:      now,
		Score:            crm.InitialScore,
		Temperature:      crm.TemperatureFor(crm.InitialScore),
		Tasks:            []entity.LeadTask{},
		Reminders:        []entity.LeadReminder{},
		CustomAttributes: in.CustomAttributes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.leadRepo.Upsert(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// MoveStage processa o drop de Kanban: valida a etapa de destino contra o funil
// do tenant e delega o score ao motor de CRM. Drop na etapa atual é no-op.
func (uc *LeadUseCase) MoveStage(ctx context.Context, orgID, leadID string, in dto.MoveLeadStageRequest) (*dto.LeadResponse, error) {
	lead, err := uc.mustGet(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	valid := false
	for _, st := range org.PipelineStages {
		if st.ID == in.Stage {
			valid = true
			break
		}
	}
	if !valid {
		return nil, domain.ErrInvalidInput
	}

	if lead.Status == in.Stage {
		// Drop na etapa atual: nada a pontuar nem persistir.
		return toLeadResponse(lead), nil
	}
	crm.ApplyStageMove(lead, in.Stage, org.ClosingStage())
	lead.LastContact = time.Now()
	lead.UpdatedAt = lead.LastContact
	if err := uc.leadRepo.Upsert(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Update edição de detalhe (sem tocar etapa/score).
func (uc *LeadUseCase) Update(ctx context.Context, orgID, leadID string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.mustGet(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}
	if in.Company != nil {
		lead.Company = *in.Company
	}
	if in.Contact != nil {
		lead.Contact = *in.Contact
	}
	if in.Email != nil {
		lead.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Value != nil {
		lead.Value = *in.Value
	}
	if in.Observations != nil {
		lead.Observations = *in.Observations
	}
	if in.Probability != nil {
		if *in.Probability < 0 || *in.Probability > 100 {
			return nil, domain.ErrInvalidInput
		}
		lead.Probability = *in.Probability
	}
	if in.Tasks != nil {
		lead.Tasks = in.Tasks
	}
	if in.Reminders != nil {
		lead.Reminders = in.Reminders
	}
	if in.CustomAttributes != nil {
		lead.CustomAttributes = in.CustomAttributes
	}
	lead.UpdatedAt = time.Now()
	if err := uc.leadRepo.Upsert(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Get devolve um lead do tenant.
func (uc *LeadUseCase) Get(ctx context.Context, orgID, leadID string) (*dto.LeadResponse, error) {
	lead, err := uc.mustGet(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// List lista leads do tenant paginados.
func (uc *LeadUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.LeadListResponse, error) {
	page.DefaultPage()
	leads, err := uc.leadRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.LeadListResponse{
		Items: make([]dto.LeadResponse, 0, len(leads)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(leads)},
	}
	for _, l := range leads {
		out.Items = append(out.Items, *toLeadResponse(l))
	}
	return out, nil
}

// Delete remove um lead do funil.
func (uc *LeadUseCase) Delete(ctx context.Context, orgID, leadID string) error {
	if _, err := uc.mustGet(ctx, orgID, leadID); err != nil {
		return err
	}
	return uc.leadRepo.Delete(ctx, leadID)
}

func (uc *LeadUseCase) mustGet(ctx context.Context, orgID, leadID string) (*entity.Lead, error) {
	lead, err := uc.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return lead, nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:               l.ID,
		OrganizationID:   l.OrganizationID,
		Company:          l.Company,
		CNPJ:             l.CNPJ,
		Contact:          l.Contact,
		Email:            l.Email,
		Phone:            l.Phone,
		Value:            l.Value,
		ProductID:        l.ProductID,
		ProductName:      l.ProductName,
		Observations:     l.Observations,
		Status:           l.Status,
		Probability:      l.Probability,
		LastContact:      l.LastContact,
		Score:            l.Score,
		Temperature:      l.Temperature,
		Tasks:            l.Tasks,
		Reminders:        l.Reminders,
		CustomAttributes: l.CustomAttributes,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
