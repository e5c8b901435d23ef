package repository

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// ProductRepository porta de persistência para ProductItem (DIP).
// Upsert grava por id (INSERT … ON CONFLICT), espelhando a semântica
// upsert-by-id do store hospedado.
type ProductRepository interface {
	Upsert(ctx context.Context, item *entity.ProductItem) error
	GetByID(ctx context.Context, id string) (*entity.ProductItem, error)
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.ProductItem, error)
	Delete(ctx context.Context, id string) error
}
