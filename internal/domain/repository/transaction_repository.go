package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// LedgerSummary agregados do razão usados no dashboard e no insight de IA.
type LedgerSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	OverdueAmount decimal.Decimal
}

// TransactionRepository porta de persistência para FinancialTransaction (DIP).
type TransactionRepository interface {
	Upsert(ctx context.Context, tx *entity.FinancialTransaction) error
	GetByID(ctx context.Context, id string) (*entity.FinancialTransaction, error)
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.FinancialTransaction, error)
	Summarize(ctx context.Context, orgID string) (*LedgerSummary, error)
	Delete(ctx context.Context, id string) error
}
