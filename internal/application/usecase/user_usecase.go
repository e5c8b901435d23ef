package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wsbrasil/nexus-api/internal/application/auth"
	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

// validRoles papéis atribuíveis dentro de um tenant. SUPER_ADMIN fica de fora:
// contas root são sintetizadas pelo gate de sessão, nunca cadastradas.
var validRoles = map[string]bool{
	entity.RoleADM:        true,
	entity.RoleGerente:    true,
	entity.RoleVendedor:   true,
	entity.RoleRH:         true,
	entity.RoleFinanceiro: true,
	entity.RoleMarketing:  true,
}

// UserUseCase gestão de perfis dentro de um tenant, com teto de assentos por plano.
type UserUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	log      *logger.Logger
}

func NewUserUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, orgRepo: orgRepo, log: log}
}

// Create cadastra um usuário no tenant. Falha com ErrSeatLimit quando o número
// de perfis ativos já atingiu o teto do plano.
func (uc *UserUseCase) Create(ctx context.Context, orgID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 || !validRoles[in.Role] {
		return nil, domain.ErrInvalidInput
	}

	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	active, err := uc.userRepo.CountActiveByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if active >= org.MaxUsers {
		return nil, domain.ErrSeatLimit
	}

	if existing, err := uc.userRepo.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.UserProfile{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Email:          email,
		PasswordHash:   string(hash),
		Name:           in.Name,
		Role:           in.Role,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("org_id", orgID).Str("user_id", user.ID).Str("role", user.Role).Msg("usuário criado")
	return auth.ToUserResponse(user), nil
}

// Update aplica alterações parciais. Reativar um usuário desativado reconta o
// teto de assentos; desativar sempre passa.
func (uc *UserUseCase) Update(ctx context.Context, orgID, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.mustGet(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !validRoles[*in.Role] {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil && *in.IsActive != user.IsActive {
		if *in.IsActive {
			active, err := uc.userRepo.CountActiveByOrganization(ctx, orgID)
			if err != nil {
				return nil, err
			}
			org, err := uc.orgRepo.GetByID(ctx, orgID)
			if err != nil {
				return nil, err
			}
			if org != nil && active >= org.MaxUsers {
				return nil, domain.ErrSeatLimit
			}
		}
		user.IsActive = *in.IsActive
	}
	if in.MFAEnabled != nil {
		user.MFAEnabled = *in.MFAEnabled
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Get devolve um usuário do tenant.
func (uc *UserUseCase) Get(ctx context.Context, orgID, userID string) (*dto.UserResponse, error) {
	user, err := uc.mustGet(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuários do tenant paginados.
func (uc *UserUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Items: make([]dto.UserResponse, 0, len(users)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(users)},
	}
	for _, u := range users {
		out.Items = append(out.Items, *auth.ToUserResponse(u))
	}
	return out, nil
}

// mustGet carrega o usuário e confere que pertence ao tenant da sessão.
func (uc *UserUseCase) mustGet(ctx context.Context, orgID, userID string) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
