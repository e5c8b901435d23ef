package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsbrasil/nexus-api/internal/domain/talent"
)

// CreateEmployeeRequest cadastro de colaborador.
type CreateEmployeeRequest struct {
	Name             string          `json:"name"`
	Role             string          `json:"role"`
	Department       string          `json:"department"`
	Salary           decimal.Decimal `json:"salary"`
	HiringDate       time.Time       `json:"hiringDate"`
	Profile          string          `json:"profile"`
	PerformanceScore int             `json:"performanceScore"`
	PotentialScore   int             `json:"potentialScore"`
	CustomAttributes map[string]any  `json:"customAttributes"`
}

// UpdateEmployeeRequest atualização parcial de colaborador.
type UpdateEmployeeRequest struct {
	Name             *string          `json:"name"`
	Role             *string          `json:"role"`
	Department       *string          `json:"department"`
	Salary           *decimal.Decimal `json:"salary"`
	Profile          *string          `json:"profile"`
	PerformanceScore *int             `json:"performanceScore"`
	PotentialScore   *int             `json:"potentialScore"`
	Status           *string          `json:"status"`
	CustomAttributes map[string]any   `json:"customAttributes"`
}

// EmployeeResponse projeção pública de Employee, com a célula 9-box derivada.
type EmployeeResponse struct {
	ID               string          `json:"id"`
	OrganizationID   string          `json:"organizationId"`
	Name             string          `json:"name"`
	Role             string          `json:"role"`
	Department       string          `json:"department"`
	Salary           decimal.Decimal `json:"salary"`
	HiringDate       time.Time       `json:"hiringDate"`
	Profile          string          `json:"profile"`
	PerformanceScore int             `json:"performanceScore"`
	PotentialScore   int             `json:"potentialScore"`
	Status           string          `json:"status"`
	NineBoxCell      talent.Cell     `json:"nineBoxCell"`
	CustomAttributes map[string]any  `json:"customAttributes,omitempty"`
}

// EmployeeListResponse listagem paginada de colaboradores.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// NineBoxResponse grade 3×3 completa: toda célula presente, mesmo vazia.
type NineBoxResponse struct {
	Grid map[talent.Cell][]EmployeeResponse `json:"grid"`
}
