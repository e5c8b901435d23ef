package repository

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// LeadRepository porta de persistência para Lead (DIP).
type LeadRepository interface {
	Upsert(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.Lead, error)
	Delete(ctx context.Context, id string) error
}
