package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementação do porto OrganizationRepository sobre PostgreSQL.
// Branding, compliance e funil são colunas JSONB; o pgx faz o codec via as
// tags json dos tipos de entidade.
type OrganizationRepo struct {
	pool *pgxpool.Pool
}

func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepo {
	return &OrganizationRepo{pool: pool}
}

// Create persiste um novo tenant.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations
			(id, name, cnpj, subscription, max_users, status, branding, compliance, pipeline_stages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		org.ID, org.Name, org.CNPJ, org.Subscription, org.MaxUsers, org.Status,
		org.Branding, org.Compliance, org.PipelineStages,
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert organization: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um tenant por id; (nil, nil) se não existir.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, cnpj, subscription, max_users, status, branding, compliance, pipeline_stages, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.CNPJ, &o.Subscription, &o.MaxUsers, &o.Status,
		&o.Branding, &o.Compliance, &o.PipelineStages,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", classifyError(err))
	}
	return &o, nil
}

// Update atualiza um tenant existente.
func (r *OrganizationRepo) Update(ctx context.Context, org *entity.Organization) error {
	query := `
		UPDATE organizations SET
			name = $2, cnpj = $3, subscription = $4, max_users = $5, status = $6,
			branding = $7, compliance = $8, pipeline_stages = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		org.ID, org.Name, org.CNPJ, org.Subscription, org.MaxUsers, org.Status,
		org.Branding, org.Compliance, org.PipelineStages, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", classifyError(err))
	}
	return nil
}

// List devolve tenants paginados, mais recentes primeiro.
func (r *OrganizationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, name, cnpj, subscription, max_users, status, branding, compliance, pipeline_stages, created_at, updated_at
		FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(
			&o.ID, &o.Name, &o.CNPJ, &o.Subscription, &o.MaxUsers, &o.Status,
			&o.Branding, &o.Compliance, &o.PipelineStages,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
