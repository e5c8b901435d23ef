package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento do razão financeiro.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// Status de um lançamento. As transições são dirigidas pelo usuário; não há
// detecção automática de inadimplência no núcleo.
const (
	TransactionPending = "PENDING"
	TransactionPaid    = "PAID"
	TransactionOverdue = "OVERDUE"
)

// FinancialTransaction lançamento do razão do tenant (puramente aditivo).
type FinancialTransaction struct {
	ID             string
	OrganizationID string
	Type           string // INCOME | EXPENSE
	Amount         decimal.Decimal
	DueDate        time.Time
	PaymentDate    *time.Time
	Status         string // PENDING | PAID | OVERDUE
	Category       string
	ContactName    string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
