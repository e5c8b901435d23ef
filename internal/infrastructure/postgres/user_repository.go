package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, organization_id, email, password_hash, name, role, is_active, mfa_enabled, created_at, updated_at`

// Create persiste um novo perfil.
func (r *UserRepo) Create(ctx context.Context, user *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.OrganizationID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.IsActive, user.MFAEnabled, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um perfil por id; (nil, nil) se não existir.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

// FindByEmail busca case-insensitive pelo email normalizado.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE lower(email) = lower($1)`
	return r.queryOne(ctx, query, email)
}

// Update atualiza um perfil existente.
func (r *UserRepo) Update(ctx context.Context, user *entity.UserProfile) error {
	query := `
		UPDATE user_profiles SET
			email = $2, password_hash = $3, name = $4, role = $5,
			is_active = $6, mfa_enabled = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role,
		user.IsActive, user.MFAEnabled, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", classifyError(err))
	}
	return nil
}

// ListByOrganization devolve perfis do tenant paginados.
func (r *UserRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.UserProfile, error) {
	query := `
		SELECT ` + userColumns + ` FROM user_profiles
		WHERE organization_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.UserProfile
	for rows.Next() {
		var u entity.UserProfile
		if err := scanUser(rows.Scan, &u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountActiveByOrganization conta perfis ativos do tenant (teto de assentos).
func (r *UserRepo) CountActiveByOrganization(ctx context.Context, orgID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM user_profiles WHERE organization_id = $1 AND is_active`,
		orgID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active users: %w", classifyError(err))
	}
	return count, nil
}

func (r *UserRepo) queryOne(ctx context.Context, query string, arg any) (*entity.UserProfile, error) {
	var u entity.UserProfile
	err := scanUser(r.pool.QueryRow(ctx, query, arg).Scan, &u)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", classifyError(err))
	}
	return &u, nil
}

func scanUser(scan func(dest ...any) error, u *entity.UserProfile) error {
	return scan(
		&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.Name,
		&u.Role, &u.IsActive, &u.MFAEnabled, &u.CreatedAt, &u.UpdatedAt,
	)
}
