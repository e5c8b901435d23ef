// Package auth implementa o gate de sessão: resolve credenciais (inclusive as
// contas privilegiadas fixas) para um perfil + organização e emite o JWT.
package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/pkg/config"
	"github.com/wsbrasil/nexus-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// match resultado de um matcher de credencial: o perfil resolvido e se a sessão
// deve exigir troca de senha antes de continuar.
type match struct {
	user      *entity.UserProfile
	mustReset bool
}

// matcher predicado puro credencial → identidade, avaliado em ordem fixa de
// prioridade pelo Login. Mantém os bypasses auditáveis em uma lista única em
// vez de condicionais espalhadas.
type matcher struct {
	name string
	fn   func(email, password string) *match
}

// AuthUseCase casos de uso do gate de sessão: login e troca de senha.
type AuthUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
	matchers []matcher

	// Credencial de fábrica retida para materializar o perfil na primeira
	// troca de senha (a sessão de fábrica nasce sem linha persistida).
	factory      config.MasterCredential
	factoryOrgID string
}

// NewAuthUseCase constrói o gate. As credenciais mestras vêm da configuração;
// matchers com credencial vazia não entram na cadeia (deployment sem conta
// developer, por exemplo).
func NewAuthUseCase(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	master config.MasterConfig,
	jwtCfg JWTConfig,
) *AuthUseCase {
	uc := &AuthUseCase{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		jwtCfg:   jwtCfg,
	}

	// Prioridade zero: proprietário master (nível owner).
	if m := rootMatcher("master_owner", master.Owner, master.OrganizationID); m != nil {
		uc.matchers = append(uc.matchers, *m)
	}
	// Prioridade um: developer master, se presente no deployment.
	if m := rootMatcher("master_developer", master.Developer, master.OrganizationID); m != nil {
		uc.matchers = append(uc.matchers, *m)
	}
	// Admin de fábrica: sessão concedida, mas marcada para troca de senha.
	if fa := master.FactoryAdmin; fa.Email != "" && fa.Password != "" {
		uc.factory = fa
		uc.factoryOrgID = master.OrganizationID
		uc.matchers = append(uc.matchers, matcher{
			name: "factory_admin",
			fn: func(email, password string) *match {
				if email != strings.ToLower(fa.Email) || password != fa.Password {
					return nil
				}
				return &match{
					user: &entity.UserProfile{
						ID:             fa.UserID,
						OrganizationID: master.OrganizationID,
						Email:          fa.Email,
						Name:           fa.Name,
						Role:           entity.RoleADM,
						IsActive:       true,
					},
					mustReset: true,
				}
			},
		})
	}

	return uc
}

// rootMatcher monta o matcher de uma identidade root. Sessões root ficam fora
// da contagem de assentos e ignoram todo o entitlement.
func rootMatcher(name string, cred config.MasterCredential, orgID string) *matcher {
	if cred.Email == "" || cred.Password == "" {
		return nil
	}
	return &matcher{
		name: name,
		fn: func(email, password string) *match {
			if email != strings.ToLower(cred.Email) || password != cred.Password {
				return nil
			}
			return &match{
				user: &entity.UserProfile{
					ID:             cred.UserID,
					OrganizationID: orgID,
					Email:          cred.Email,
					Name:           cred.Name,
					Role:           entity.RoleSuperAdmin,
					IsActive:       true,
					MFAEnabled:     true,
				},
			}
		},
	}
}

// Login autentica em ordem estrita de prioridade: matchers fixos primeiro,
// depois lookup geral por email. O primeiro match vence — um email de tenant
// colidindo com uma credencial mestra nunca intercepta a sessão root.
// Sucesso é idempotente: nenhum estado persistido é mutado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	for _, m := range uc.matchers {
		if got := m.fn(email, in.Password); got != nil {
			return uc.issueSession(got.user, got.mustReset)
		}
	}

	// Lookup geral: usuários comuns dos tenants.
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// Tenant suspenso falha antes da verificação do segredo: credencial correta
	// não abre sessão em instância não-ACTIVE.
	org, err := uc.orgRepo.GetByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil || org.Status != entity.OrgStatusActive {
		return nil, domain.ErrTenantSuspended
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	return uc.issueSession(user, false)
}

// ResetPassword completa o fluxo de troca forçada (ou voluntária) de senha.
// O perfil de fábrica não tem linha persistida até a primeira troca: nesse
// caso a troca cria o perfil com o novo hash, e os logins seguintes passam a
// resolver pelo lookup geral.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		if uc.factory.UserID == "" || userID != uc.factory.UserID {
			return domain.ErrUserNotFound
		}
		now := time.Now()
		return uc.userRepo.Create(ctx, &entity.UserProfile{
			ID:             uc.factory.UserID,
			OrganizationID: uc.factoryOrgID,
			Email:          strings.ToLower(uc.factory.Email),
			PasswordHash:   string(hash),
			Name:           uc.factory.Name,
			Role:           entity.RoleADM,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

func (uc *AuthUseCase) issueSession(user *entity.UserProfile, mustReset bool) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:             token,
		User:              *ToUserResponse(user),
		MustResetPassword: mustReset,
	}, nil
}

// ToUserResponse projeta o perfil para o DTO público (sem hash).
func ToUserResponse(u *entity.UserProfile) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		IsActive:       u.IsActive,
		MFAEnabled:     u.MFAEnabled,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
