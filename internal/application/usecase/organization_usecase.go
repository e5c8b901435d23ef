package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entitlement"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

// OrganizationUseCase provisionamento e administração de tenants (tela MASTER_ADMIN).
type OrganizationUseCase struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
	log      *logger.Logger
}

func NewOrganizationUseCase(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository, log *logger.Logger) *OrganizationUseCase {
	return &OrganizationUseCase{orgRepo: orgRepo, userRepo: userRepo, log: log}
}

// Provision cria um tenant completo: organização com funil e teto de assentos
// derivados do nível, mais o primeiro usuário ADM quando informado.
func (uc *OrganizationUseCase) Provision(ctx context.Context, in dto.ProvisionOrganizationRequest) (*dto.OrganizationResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if entitlement.TierMaxUsers(in.Subscription) == 0 {
		return nil, domain.ErrInvalidInput
	}

	stages := in.Stages
	if len(stages) == 0 {
		stages = entity.DefaultPipelineStages()
	}
	branding := entity.Branding{PrimaryColor: "#0D9488", SecondaryColor: "#0F172A"}
	if in.Branding != nil {
		branding = *in.Branding
	}
	compliance := entity.Compliance{DataRetentionDays: 365, AnonymizeOnDelete: true}
	if in.Compliance != nil {
		compliance = *in.Compliance
	}

	now := time.Now()
	org := &entity.Organization{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		CNPJ:           strings.TrimSpace(in.CNPJ),
		Subscription:   in.Subscription,
		MaxUsers:       entitlement.TierMaxUsers(in.Subscription),
		Status:         entity.OrgStatusActive,
		Branding:       branding,
		Compliance:     compliance,
		PipelineStages: stages,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	if in.AdminEmail != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &entity.UserProfile{
			ID:             uuid.NewString(),
			OrganizationID: org.ID,
			Name:           in.AdminName,
			Email:          strings.ToLower(strings.TrimSpace(in.AdminEmail)),
			PasswordHash:   string(hash),
			Role:           entity.RoleADM,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.userRepo.Create(ctx, admin); err != nil {
			// Tenant sem administrador não serve: falha o provisionamento inteiro.
			return nil, err
		}
		uc.log.Info().Str("org_id", org.ID).Str("admin_email", admin.Email).Msg("tenant provisionado com administrador inicial")
	}

	return toOrganizationResponse(org), nil
}

// Update aplica alterações parciais de configuração. Mudar o nível de
// assinatura recalcula o teto de assentos.
func (uc *OrganizationUseCase) Update(ctx context.Context, orgID string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.mustGet(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		org.Name = strings.TrimSpace(*in.Name)
	}
	if in.Subscription != nil {
		if entitlement.TierMaxUsers(*in.Subscription) == 0 {
			return nil, domain.ErrInvalidInput
		}
		org.Subscription = *in.Subscription
		org.MaxUsers = entitlement.TierMaxUsers(*in.Subscription)
	}
	if in.Branding != nil {
		org.Branding = *in.Branding
	}
	if in.Compliance != nil {
		org.Compliance = *in.Compliance
	}
	if len(in.Stages) > 0 {
		org.PipelineStages = in.Stages
	}
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// Suspend bloqueia toda abertura de sessão do tenant sem apagar dados.
func (uc *OrganizationUseCase) Suspend(ctx context.Context, orgID string) error {
	return uc.setStatus(ctx, orgID, entity.OrgStatusSuspended)
}

// Reactivate devolve o tenant ao estado ACTIVE.
func (uc *OrganizationUseCase) Reactivate(ctx context.Context, orgID string) error {
	return uc.setStatus(ctx, orgID, entity.OrgStatusActive)
}

func (uc *OrganizationUseCase) setStatus(ctx context.Context, orgID, status string) error {
	org, err := uc.mustGet(ctx, orgID)
	if err != nil {
		return err
	}
	if org.Status == status {
		return nil
	}
	org.Status = status
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(ctx, org); err != nil {
		return err
	}
	uc.log.Info().Str("org_id", orgID).Str("status", status).Msg("status do tenant alterado")
	return nil
}

// Get devolve um tenant pelo id.
func (uc *OrganizationUseCase) Get(ctx context.Context, orgID string) (*dto.OrganizationResponse, error) {
	org, err := uc.mustGet(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// List lista tenants paginados (visão MASTER_ADMIN).
func (uc *OrganizationUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OrganizationListResponse, error) {
	page.DefaultPage()
	orgs, err := uc.orgRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrganizationListResponse{
		Items: make([]dto.OrganizationResponse, 0, len(orgs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(orgs)},
	}
	for _, o := range orgs {
		out.Items = append(out.Items, *toOrganizationResponse(o))
	}
	return out, nil
}

func (uc *OrganizationUseCase) mustGet(ctx context.Context, orgID string) (*entity.Organization, error) {
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return org, nil
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:             o.ID,
		Name:           o.Name,
		CNPJ:           o.CNPJ,
		Subscription:   o.Subscription,
		MaxUsers:       o.MaxUsers,
		Status:         o.Status,
		Branding:       o.Branding,
		Compliance:     o.Compliance,
		PipelineStages: o.PipelineStages,
		CreatedAt:      o.CreatedAt,
	}
}
