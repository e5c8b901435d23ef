package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação do porto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `id, organization_id, name, role, department, salary, hiring_date, profile,
	performance_score, potential_score, status, custom_attributes, created_at, updated_at`

// Upsert grava o colaborador por id (INSERT … ON CONFLICT DO UPDATE).
func (r *EmployeeRepo) Upsert(ctx context.Context, emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, role = EXCLUDED.role, department = EXCLUDED.department,
			salary = EXCLUDED.salary, hiring_date = EXCLUDED.hiring_date, profile = EXCLUDED.profile,
			performance_score = EXCLUDED.performance_score, potential_score = EXCLUDED.potential_score,
			status = EXCLUDED.status, custom_attributes = EXCLUDED.custom_attributes,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		emp.ID, emp.OrganizationID, emp.Name, emp.Role, emp.Department,
		emp.Salary, emp.HiringDate, emp.Profile,
		emp.PerformanceScore, emp.PotentialScore, emp.Status,
		emp.CustomAttributes, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert employee: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um colaborador por id; (nil, nil) se não existir.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e entity.Employee
	err := scanEmployee(r.pool.QueryRow(ctx, query, id).Scan, &e)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", classifyError(err))
	}
	return &e, nil
}

// ListByOrganization devolve colaboradores do tenant paginados.
func (r *EmployeeRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + ` FROM employees
		WHERE organization_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := scanEmployee(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove um colaborador.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", classifyError(err))
	}
	return nil
}

func scanEmployee(scan func(dest ...any) error, e *entity.Employee) error {
	return scan(
		&e.ID, &e.OrganizationID, &e.Name, &e.Role, &e.Department,
		&e.Salary, &e.HiringDate, &e.Profile,
		&e.PerformanceScore, &e.PotentialScore, &e.Status,
		&e.CustomAttributes, &e.CreatedAt, &e.UpdatedAt,
	)
}
