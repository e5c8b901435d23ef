package entity

import "time"

// Papéis válidos para UserProfile.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleADM        = "ADM"
	RoleGerente    = "GERENTE"
	RoleVendedor   = "VENDEDOR"
	RoleRH         = "RH"
	RoleFinanceiro = "FINANCEIRO"
	RoleMarketing  = "MARKETING"
)

// UserProfile representa um usuário do sistema (pertence a uma Organization).
// Identidades root sintetizadas pelo gate de sessão não são persistidas aqui e
// não contam para o teto de assentos do tenant.
type UserProfile struct {
	ID             string
	OrganizationID string
	Email          string // único no sistema; lookup de login é case-insensitive
	PasswordHash   string // hash bcrypt, nunca plano no domínio após persistir
	Name           string
	Role           string // ver Role*
	IsActive       bool
	MFAEnabled     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
