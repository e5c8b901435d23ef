package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementação do porto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const txColumns = `id, organization_id, type, amount, due_date, payment_date, status, category,
	contact_name, description, created_at, updated_at`

// Upsert grava o lançamento por id (INSERT … ON CONFLICT DO UPDATE).
func (r *TransactionRepo) Upsert(ctx context.Context, tx *entity.FinancialTransaction) error {
	query := `
		INSERT INTO financial_transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type, amount = EXCLUDED.amount, due_date = EXCLUDED.due_date,
			payment_date = EXCLUDED.payment_date, status = EXCLUDED.status,
			category = EXCLUDED.category, contact_name = EXCLUDED.contact_name,
			description = EXCLUDED.description, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		tx.ID, tx.OrganizationID, tx.Type, tx.Amount, tx.DueDate, tx.PaymentDate,
		tx.Status, tx.Category, tx.ContactName, tx.Description,
		tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert transaction: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um lançamento por id; (nil, nil) se não existir.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.FinancialTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM financial_transactions WHERE id = $1`
	var t entity.FinancialTransaction
	err := scanTransaction(r.pool.QueryRow(ctx, query, id).Scan, &t)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", classifyError(err))
	}
	return &t, nil
}

// ListByOrganization devolve lançamentos do tenant paginados, vencimento mais
// recente primeiro.
func (r *TransactionRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.FinancialTransaction, error) {
	query := `
		SELECT ` + txColumns + ` FROM financial_transactions
		WHERE organization_id = $1 ORDER BY due_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.FinancialTransaction
	for rows.Next() {
		var t entity.FinancialTransaction
		if err := scanTransaction(rows.Scan, &t); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Summarize agrega o razão em uma única consulta: receitas pagas, despesas
// pagas e montante inadimplente.
func (r *TransactionRepo) Summarize(ctx context.Context, orgID string) (*repository.LedgerSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'  AND status = 'PAID'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE' AND status = 'PAID'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'OVERDUE'), 0)
		FROM financial_transactions WHERE organization_id = $1`
	var s repository.LedgerSummary
	err := r.pool.QueryRow(ctx, query, orgID).Scan(&s.TotalIncome, &s.TotalExpense, &s.OverdueAmount)
	if err != nil {
		return nil, fmt.Errorf("summarize ledger: %w", classifyError(err))
	}
	return &s, nil
}

// Delete remove um lançamento.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", classifyError(err))
	}
	return nil
}

func scanTransaction(scan func(dest ...any) error, t *entity.FinancialTransaction) error {
	return scan(
		&t.ID, &t.OrganizationID, &t.Type, &t.Amount, &t.DueDate, &t.PaymentDate,
		&t.Status, &t.Category, &t.ContactName, &t.Description,
		&t.CreatedAt, &t.UpdatedAt,
	)
}
