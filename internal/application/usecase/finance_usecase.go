package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/ports"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

// insightTimeout prazo máximo para o insight gerado; estourado, o resumo sai
// sem insight em vez de atrasar o dashboard.
const insightTimeout = 10 * time.Second

var validTxStatus = map[string]bool{
	entity.TransactionPending: true,
	entity.TransactionPaid:    true,
	entity.TransactionOverdue: true,
}

// FinanceUseCase razão financeiro do tenant (módulo FINANCE).
type FinanceUseCase struct {
	txRepo repository.TransactionRepository
	llm    ports.LLMService
	log    *logger.Logger
}

func NewFinanceUseCase(txRepo repository.TransactionRepository, llm ports.LLMService, log *logger.Logger) *FinanceUseCase {
	return &FinanceUseCase{txRepo: txRepo, llm: llm, log: log}
}

// Create registra um lançamento. Status omitido entra como PENDING.
func (uc *FinanceUseCase) Create(ctx context.Context, orgID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.TransactionPending
	}
	if !validTxStatus[status] {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tx := &entity.FinancialTransaction{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Type:           in.Type,
		Amount:         in.Amount,
		DueDate:        in.DueDate,
		Status:         status,
		Category:       in.Category,
		ContactName:    in.ContactName,
		Description:    in.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.txRepo.Upsert(ctx, tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// SetStatus transição dirigida pelo usuário. Marcar PAID sem data usa agora;
// sair de PAID limpa a data de pagamento.
func (uc *FinanceUseCase) SetStatus(ctx context.Context, orgID, txID string, in dto.SetTransactionStatusRequest) (*dto.TransactionResponse, error) {
	if !validTxStatus[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	tx, err := uc.mustGet(ctx, orgID, txID)
	if err != nil {
		return nil, err
	}
	tx.Status = in.Status
	switch {
	case in.Status == entity.TransactionPaid && in.PaymentDate != nil:
		tx.PaymentDate = in.PaymentDate
	case in.Status == entity.TransactionPaid:
		now := time.Now()
		tx.PaymentDate = &now
	default:
		tx.PaymentDate = nil
	}
	tx.UpdatedAt = time.Now()
	if err := uc.txRepo.Upsert(ctx, tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// List lista lançamentos do tenant paginados.
func (uc *FinanceUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	txs, err := uc.txRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.TransactionListResponse{
		Items: make([]dto.TransactionResponse, 0, len(txs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(txs)},
	}
	for _, tx := range txs {
		out.Items = append(out.Items, *toTransactionResponse(tx))
	}
	return out, nil
}

// Delete remove um lançamento.
func (uc *FinanceUseCase) Delete(ctx context.Context, orgID, txID string) error {
	if _, err := uc.mustGet(ctx, orgID, txID); err != nil {
		return err
	}
	return uc.txRepo.Delete(ctx, txID)
}

// Summary agrega o razão e pede à IA um insight executivo sobre os números.
// Falha da IA nunca falha o resumo: o campo Insight apenas fica vazio.
func (uc *FinanceUseCase) Summary(ctx context.Context, orgID string) (*dto.LedgerSummaryResponse, error) {
	sum, err := uc.txRepo.Summarize(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := &dto.LedgerSummaryResponse{
		TotalIncome:   sum.TotalIncome,
		TotalExpense:  sum.TotalExpense,
		OverdueAmount: sum.OverdueAmount,
	}

	if uc.llm != nil {
		llmCtx, cancel := context.WithTimeout(ctx, insightTimeout)
		defer cancel()
		prompt := fmt.Sprintf(
			"Receitas totais: R$ %s. Despesas totais: R$ %s. Valor em atraso: R$ %s. "+
				"Gere um parágrafo curto de diagnóstico financeiro executivo em português.",
			sum.TotalIncome.StringFixed(2), sum.TotalExpense.StringFixed(2), sum.OverdueAmount.StringFixed(2),
		)
		insight, err := uc.llm.GenerateText(llmCtx, prompt,
			"Você é um consultor financeiro sênior da WS Brasil. Seja direto e pragmático.", 0.4)
		if err != nil {
			uc.log.Warn().Err(err).Str("org_id", orgID).Msg("insight financeiro indisponível")
		} else {
			out.Insight = insight
		}
	}
	return out, nil
}

func (uc *FinanceUseCase) mustGet(ctx context.Context, orgID, txID string) (*entity.FinancialTransaction, error) {
	tx, err := uc.txRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

func toTransactionResponse(tx *entity.FinancialTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:             tx.ID,
		OrganizationID: tx.OrganizationID,
		Type:           tx.Type,
		Amount:         tx.Amount,
		DueDate:        tx.DueDate,
		PaymentDate:    tx.PaymentDate,
		Status:         tx.Status,
		Category:       tx.Category,
		ContactName:    tx.ContactName,
		Description:    tx.Description,
		CreatedAt:      tx.CreatedAt,
	}
}
