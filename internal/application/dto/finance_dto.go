package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest lançamento no razão. Status inicial PENDING quando omitido.
type CreateTransactionRequest struct {
	Type        string          `json:"type"` // INCOME | EXPENSE
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	ContactName string          `json:"contactName"`
	Description string          `json:"description"`
}

// SetTransactionStatusRequest transição de status dirigida pelo usuário.
type SetTransactionStatusRequest struct {
	Status      string     `json:"status"` // PENDING | PAID | OVERDUE
	PaymentDate *time.Time `json:"paymentDate"`
}

// TransactionResponse projeção pública de FinancialTransaction.
type TransactionResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
	PaymentDate    *time.Time      `json:"paymentDate,omitempty"`
	Status         string          `json:"status"`
	Category       string          `json:"category"`
	ContactName    string          `json:"contactName,omitempty"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// TransactionListResponse listagem paginada do razão.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// LedgerSummaryResponse agregados do razão + insight executivo gerado por IA.
type LedgerSummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
	Insight       string          `json:"insight,omitempty"`
}
