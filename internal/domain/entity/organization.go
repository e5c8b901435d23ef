package entity

import "time"

// Tier nível de assinatura do tenant; determina módulos liberados e teto de assentos.
type Tier string

const (
	TierBronze Tier = "BRONZE"
	TierSilver Tier = "SILVER"
	TierGold   Tier = "GOLD"
)

// Module área funcional do console. Deve coincidir com os ids usados pelo frontend.
type Module string

const (
	ModuleDashboard   Module = "DASHBOARD"
	ModuleMarketing   Module = "MARKETING"
	ModuleSales       Module = "SALES"
	ModuleDocuments   Module = "DOCUMENTS"
	ModuleERP         Module = "ERP"
	ModuleInventory   Module = "INVENTORY"
	ModuleRH          Module = "RH"
	ModuleScheduling  Module = "SCHEDULING"
	ModuleSettings    Module = "SETTINGS"
	ModuleMasterAdmin Module = "MASTER_ADMIN"
	ModuleFinance     Module = "FINANCE"
	ModuleSecurity    Module = "SECURITY"
	ModulePricing     Module = "PRICING"
)

// Status possíveis de uma Organization. Tenant nunca é apagado, apenas suspenso.
const (
	OrgStatusActive    = "ACTIVE"
	OrgStatusSuspended = "SUSPENDED"
	OrgStatusTrial     = "TRIAL"
	OrgStatusPastDue   = "PAST_DUE"
)

// PipelineStage etapa do funil de vendas configurada por organização (ordenada).
type PipelineStage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// Branding identidade visual do tenant.
type Branding struct {
	LogoURL        string `json:"logoUrl,omitempty"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Compliance parâmetros LGPD do tenant.
type Compliance struct {
	DataRetentionDays int    `json:"dataRetentionDays"`
	AnonymizeOnDelete bool   `json:"anonymizeOnDelete"`
	DPOContact        string `json:"dpoContact"`
}

// Organization representa um tenant do sistema. Subscription delimita os módulos
// via tabela de entitlement; MaxUsers limita perfis ativos (contas root ficam fora
// da contagem).
type Organization struct {
	ID             string
	Name           string
	CNPJ           string
	Subscription   Tier
	MaxUsers       int
	Status         string // ver OrgStatus*
	Branding       Branding
	Compliance     Compliance
	PipelineStages []PipelineStage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FirstStage devolve a primeira etapa configurada do funil (estágio inicial de
// todo lead novo). Vazio se o tenant não tem funil configurado.
func (o *Organization) FirstStage() string {
	if len(o.PipelineStages) == 0 {
		return ""
	}
	return o.PipelineStages[0].ID
}

// ClosingStage devolve a etapa terminal do funil (fechamento), que concede o
// bônus maior de score ao receber um lead.
func (o *Organization) ClosingStage() string {
	if len(o.PipelineStages) == 0 {
		return ""
	}
	return o.PipelineStages[len(o.PipelineStages)-1].ID
}

// DefaultPipelineStages funil padrão aplicado no provisionamento de um tenant.
func DefaultPipelineStages() []PipelineStage {
	return []PipelineStage{
		{ID: "QUALIFICADO", Title: "OPORTUNIDADES AGENDADAS", Color: "border-cyan-500"},
		{ID: "REUNIAO", Title: "REUNIÃO ESTRATÉGICA", Color: "border-blue-500"},
		{ID: "PROPOSTA", Title: "PROPOSTA EM ANÁLISE", Color: "border-amber-500"},
		{ID: "FECHAMENTO", Title: "FECHAMENTO IMINENTE", Color: "border-emerald-500"},
	}
}
