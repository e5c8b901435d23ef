package repository

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// EmployeeRepository porta de persistência para Employee (DIP).
type EmployeeRepository interface {
	Upsert(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
