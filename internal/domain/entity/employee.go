package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Perfis comportamentais DISC usados pelo RH.
const (
	ProfileExecutor    = "EXECUTOR"
	ProfileComunicador = "COMUNICADOR"
	ProfileAnalista    = "ANALISTA"
	ProfilePlanejador  = "PLANEJADOR"
)

// Status de vínculo do colaborador.
const (
	EmployeeAtivo     = "ATIVO"
	EmployeeDesligado = "DESLIGADO"
)

// Employee colaborador do tenant. PerformanceScore e PotentialScore (0-100)
// alimentam o classificador 9-box; o grid só considera status ATIVO.
type Employee struct {
	ID               string
	OrganizationID   string
	Name             string
	Role             string
	Department       string
	Salary           decimal.Decimal
	HiringDate       time.Time
	Profile          string // ver Profile*
	PerformanceScore int
	PotentialScore   int
	Status           string // ver Employee*
	CustomAttributes map[string]any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
