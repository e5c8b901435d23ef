package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementação do porto LeadRepository sobre PostgreSQL.
// Tarefas, lembretes e atributos customizados são colunas JSONB.
type LeadRepo struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

const leadColumns = `id, organization_id, company, cnpj, contact, email, phone, value, product_id, product_name,
	observations, status, probability, last_contact, score, temperature, tasks, reminders, custom_attributes,
	created_at, updated_at`

// Upsert grava o lead por id (INSERT … ON CONFLICT DO UPDATE).
func (r *LeadRepo) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id) DO UPDATE SET
			company = EXCLUDED.company, cnpj = EXCLUDED.cnpj, contact = EXCLUDED.contact,
			email = EXCLUDED.email, phone = EXCLUDED.phone, value = EXCLUDED.value,
			product_id = EXCLUDED.product_id, product_name = EXCLUDED.product_name,
			observations = EXCLUDED.observations, status = EXCLUDED.status,
			probability = EXCLUDED.probability, last_contact = EXCLUDED.last_contact,
			score = EXCLUDED.score, temperature = EXCLUDED.temperature,
			tasks = EXCLUDED.tasks, reminders = EXCLUDED.reminders,
			custom_attributes = EXCLUDED.custom_attributes, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.OrganizationID, lead.Company, lead.CNPJ, lead.Contact,
		lead.Email, lead.Phone, lead.Value, lead.ProductID, lead.ProductName,
		lead.Observations, lead.Status, lead.Probability, lead.LastContact,
		lead.Score, lead.Temperature, lead.Tasks, lead.Reminders,
		lead.CustomAttributes, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert lead: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um lead por id; (nil, nil) se não existir.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := scanLead(r.pool.QueryRow(ctx, query, id).Scan, &l)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", classifyError(err))
	}
	return &l, nil
}

// ListByOrganization devolve leads do tenant paginados.
func (r *LeadRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + ` FROM leads
		WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := scanLead(rows.Scan, &l); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete remove um lead.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", classifyError(err))
	}
	return nil
}

func scanLead(scan func(dest ...any) error, l *entity.Lead) error {
	return scan(
		&l.ID, &l.OrganizationID, &l.Company, &l.CNPJ, &l.Contact,
		&l.Email, &l.Phone, &l.Value, &l.ProductID, &l.ProductName,
		&l.Observations, &l.Status, &l.Probability, &l.LastContact,
		&l.Score, &l.Temperature, &l.Tasks, &l.Reminders,
		&l.CustomAttributes, &l.CreatedAt, &l.UpdatedAt,
	)
}
