package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/internal/domain/talent"
)

// nineBoxScan limite de colaboradores varridos ao montar a grade 9-box.
const nineBoxScan = 1000

// EmployeeUseCase RH do tenant: cadastro de colaboradores e grade 9-box.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo}
}

// Create cadastra um colaborador ativo.
func (uc *EmployeeUseCase) Create(ctx context.Context, orgID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !validScore(in.PerformanceScore) || !validScore(in.PotentialScore) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:               uuid.NewString(),
		OrganizationID:   orgID,
		Name:             strings.TrimSpace(in.Name),
		Role:             in.Role,
		Department:       in.Department,
		Salary:           in.Salary,
		HiringDate:       in.HiringDate,
		Profile:          in.Profile,
		PerformanceScore: in.PerformanceScore,
		PotentialScore:   in.PotentialScore,
		Status:           entity.EmployeeAtivo,
		CustomAttributes: in.CustomAttributes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.employeeRepo.Upsert(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Update atualização parcial (inclui desligamento via Status).
func (uc *EmployeeUseCase) Update(ctx context.Context, orgID, employeeID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.mustGet(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Role != nil {
		emp.Role = *in.Role
	}
	if in.Department != nil {
		emp.Department = *in.Department
	}
	if in.Salary != nil {
		emp.Salary = *in.Salary
	}
	if in.Profile != nil {
		emp.Profile = *in.Profile
	}
	if in.PerformanceScore != nil {
		if !validScore(*in.PerformanceScore) {
			return nil, domain.ErrInvalidInput
		}
		emp.PerformanceScore = *in.PerformanceScore
	}
	if in.PotentialScore != nil {
		if !validScore(*in.PotentialScore) {
			return nil, domain.ErrInvalidInput
		}
		emp.PotentialScore = *in.PotentialScore
	}
	if in.Status != nil {
		if *in.Status != entity.EmployeeAtivo && *in.Status != entity.EmployeeDesligado {
			return nil, domain.ErrInvalidInput
		}
		emp.Status = *in.Status
	}
	if in.CustomAttributes != nil {
		emp.CustomAttributes = in.CustomAttributes
	}
	emp.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Upsert(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Get devolve um colaborador do tenant.
func (uc *EmployeeUseCase) Get(ctx context.Context, orgID, employeeID string) (*dto.EmployeeResponse, error) {
	emp, err := uc.mustGet(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List lista colaboradores do tenant paginados.
func (uc *EmployeeUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	emps, err := uc.employeeRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeListResponse{
		Items: make([]dto.EmployeeResponse, 0, len(emps)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(emps)},
	}
	for _, e := range emps {
		out.Items = append(out.Items, *toEmployeeResponse(e))
	}
	return out, nil
}

// Delete remove um colaborador.
func (uc *EmployeeUseCase) Delete(ctx context.Context, orgID, employeeID string) error {
	if _, err := uc.mustGet(ctx, orgID, employeeID); err != nil {
		return err
	}
	return uc.employeeRepo.Delete(ctx, employeeID)
}

// NineBox monta a grade 3×3 com os colaboradores ATIVOS do tenant. Toda célula
// aparece na resposta, mesmo vazia, para a tela renderizar a grade completa.
func (uc *EmployeeUseCase) NineBox(ctx context.Context, orgID string) (*dto.NineBoxResponse, error) {
	emps, err := uc.employeeRepo.ListByOrganization(ctx, orgID, nineBoxScan, 0)
	if err != nil {
		return nil, err
	}
	grid := make(map[talent.Cell][]dto.EmployeeResponse, 9)
	for _, c := range talent.Cells() {
		grid[c] = []dto.EmployeeResponse{}
	}
	for _, e := range emps {
		if e.Status != entity.EmployeeAtivo {
			continue
		}
		cell := talent.Classify(e.PerformanceScore, e.PotentialScore)
		grid[cell] = append(grid[cell], *toEmployeeResponse(e))
	}
	return &dto.NineBoxResponse{Grid: grid}, nil
}

func (uc *EmployeeUseCase) mustGet(ctx context.Context, orgID, employeeID string) (*entity.Employee, error) {
	emp, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return emp, nil
}

func validScore(s int) bool { return s >= 0 && s <= 100 }

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:               e.ID,
		OrganizationID:   e.OrganizationID,
		Name:             e.Name,
		Role:             e.Role,
		Department:       e.Department,
		Salary:           e.Salary,
		HiringDate:       e.HiringDate,
		Profile:          e.Profile,
		PerformanceScore: e.PerformanceScore,
		PotentialScore:   e.PotentialScore,
		Status:           e.Status,
		NineBoxCell:      talent.Classify(e.PerformanceScore, e.PotentialScore),
		CustomAttributes: e.CustomAttributes,
	}
}
