package dto

import (
	"time"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// ProvisionOrganizationRequest criação de tenant pelo MASTER_ADMIN.
// MaxUsers, funil e branding padrão derivam do nível quando omitidos.
type ProvisionOrganizationRequest struct {
	Name         string                 `json:"name"`
	CNPJ         string                 `json:"cnpj"`
	Subscription entity.Tier            `json:"subscription"`
	Branding     *entity.Branding       `json:"branding"`
	Compliance   *entity.Compliance     `json:"compliance"`
	Stages       []entity.PipelineStage `json:"pipelineStages"`
	// AdminEmail/AdminPassword criam o primeiro usuário ADM do tenant.
	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
	AdminName     string `json:"adminName"`
}

// UpdateOrganizationRequest atualização de configurações do tenant.
type UpdateOrganizationRequest struct {
	Name         *string                `json:"name"`
	Subscription *entity.Tier           `json:"subscription"`
	Branding     *entity.Branding       `json:"branding"`
	Compliance   *entity.Compliance     `json:"compliance"`
	Stages       []entity.PipelineStage `json:"pipelineStages"`
}

// OrganizationResponse projeção pública de Organization.
type OrganizationResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	CNPJ           string                 `json:"cnpj"`
	Subscription   entity.Tier            `json:"subscription"`
	MaxUsers       int                    `json:"maxUsers"`
	Status         string                 `json:"status"`
	Branding       entity.Branding        `json:"branding"`
	Compliance     entity.Compliance      `json:"lgpdCompliance"`
	PipelineStages []entity.PipelineStage `json:"pipelineStages"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// OrganizationListResponse listagem paginada de tenants.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// SessionModulesResponse conjunto de módulos liberados para a sessão atual,
// com as dicas de upgrade dos módulos negados (sidebar = projeção fina disto).
type SessionModulesResponse struct {
	Allowed []entity.Module         `json:"allowed"`
	Locked  []LockedModuleResponse  `json:"locked"`
}

// LockedModuleResponse módulo bloqueado e o nível que o liberaria.
type LockedModuleResponse struct {
	Module        entity.Module `json:"module"`
	RequiredLevel entity.Tier   `json:"requiredLevel"`
	Reason        string        `json:"reason"`
}
