package repository

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// UserRepository porta de persistência para UserProfile (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.UserProfile) error
	GetByID(ctx context.Context, id string) (*entity.UserProfile, error)
	// FindByEmail busca case-insensitive pelo email normalizado; (nil, nil) se inexistente.
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	Update(ctx context.Context, user *entity.UserProfile) error
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.UserProfile, error)
	// CountActiveByOrganization conta perfis ativos do tenant, para o teto de assentos.
	CountActiveByOrganization(ctx context.Context, orgID string) (int, error)
}
