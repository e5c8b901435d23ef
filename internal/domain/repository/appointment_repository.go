package repository

import (
	"context"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// AppointmentRepository porta de persistência para Appointment (DIP).
type AppointmentRepository interface {
	Upsert(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
}
