package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementação do porto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{pool: pool}
}

const apptColumns = `id, organization_id, client_name, client_whatsapp, date_time, duration, status, link, created_at, updated_at`

// Upsert grava o agendamento por id (INSERT … ON CONFLICT DO UPDATE).
func (r *AppointmentRepo) Upsert(ctx context.Context, appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + apptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			client_name = EXCLUDED.client_name, client_whatsapp = EXCLUDED.client_whatsapp,
			date_time = EXCLUDED.date_time, duration = EXCLUDED.duration,
			status = EXCLUDED.status, link = EXCLUDED.link, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		appt.ID, appt.OrganizationID, appt.ClientName, appt.ClientWhatsApp,
		appt.DateTime, appt.Duration, appt.Status, appt.Link,
		appt.CreatedAt, appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert appointment: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um agendamento por id; (nil, nil) se não existir.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT ` + apptColumns + ` FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OrganizationID, &a.ClientName, &a.ClientWhatsApp,
		&a.DateTime, &a.Duration, &a.Status, &a.Link,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", classifyError(err))
	}
	return &a, nil
}

// ListByOrganization devolve agendamentos do tenant paginados por data.
func (r *AppointmentRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + apptColumns + ` FROM appointments
		WHERE organization_id = $1 ORDER BY date_time LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.ClientName, &a.ClientWhatsApp,
			&a.DateTime, &a.Duration, &a.Status, &a.Link,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete remove um agendamento.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", classifyError(err))
	}
	return nil
}
