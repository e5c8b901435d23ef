package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// CreateLeadRequest criação de lead. Score e etapa iniciais são impostos pelo
// motor de CRM (50 / primeira etapa do funil), nunca vêm do cliente.
type CreateLeadRequest struct {
	Company          string          `json:"company"`
	CNPJ             string          `json:"cnpj"`
	Contact          string          `json:"contact"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Value            decimal.Decimal `json:"value"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	Observations     string          `json:"observations"`
	Probability      int             `json:"probability"`
	CustomAttributes map[string]any  `json:"customAttributes"`
}

// UpdateLeadRequest edição via formulário de detalhe. Movimentação de etapa tem
// endpoint próprio (MoveStage) para passar pelo motor de score.
type UpdateLeadRequest struct {
	Company          *string          `json:"company"`
	Contact          *string          `json:"contact"`
	Email            *string          `json:"email"`
	Phone            *string          `json:"phone"`
	Value            *decimal.Decimal `json:"value"`
	Observations     *string          `json:"observations"`
	Probability      *int             `json:"probability"`
	Tasks            []entity.LeadTask     `json:"tasks"`
	Reminders        []entity.LeadReminder `json:"reminders"`
	CustomAttributes map[string]any   `json:"customAttributes"`
}

// MoveLeadStageRequest drop de Kanban: destino da movimentação.
type MoveLeadStageRequest struct {
	Stage string `json:"stage"`
}

// LeadResponse projeção pública de Lead.
type LeadResponse struct {
	ID               string                 `json:"id"`
	OrganizationID   string                 `json:"organizationId"`
	Company          string                 `json:"company"`
	CNPJ             string                 `json:"cnpj,omitempty"`
	Contact          string                 `json:"contact"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	Value            decimal.Decimal        `json:"value"`
	ProductID        string                 `json:"productId,omitempty"`
	ProductName      string                 `json:"productName,omitempty"`
	Observations     string                 `json:"observations,omitempty"`
	Status           string                 `json:"status"`
	Probability      int                    `json:"probability"`
	LastContact      time.Time              `json:"lastContact"`
	Score            int                    `json:"score"`
	Temperature      entity.LeadTemperature `json:"temperature"`
	Tasks            []entity.LeadTask      `json:"tasks"`
	Reminders        []entity.LeadReminder  `json:"reminders"`
	CustomAttributes map[string]any         `json:"customAttributes,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// LeadListResponse listagem paginada de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
