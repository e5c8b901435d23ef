package repository

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// OrganizationRepository porta de persistência para Organization (DIP).
// Implementações devolvem (nil, nil) quando o registro não existe.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	Update(ctx context.Context, org *entity.Organization) error
	List(ctx context.Context, limit, offset int) ([]*entity.Organization, error)
}
