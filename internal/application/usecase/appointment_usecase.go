package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/ports"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

var validAppointmentStatus = map[string]bool{
	entity.AppointmentConfirmado: true,
	entity.AppointmentPendente:   true,
	entity.AppointmentConcluido:  true,
}

// AppointmentUseCase agenda de reuniões do tenant (módulo SCHEDULING).
type AppointmentUseCase struct {
	apptRepo repository.AppointmentRepository
	llm      ports.LLMService
	log      *logger.Logger
}

func NewAppointmentUseCase(apptRepo repository.AppointmentRepository, llm ports.LLMService, log *logger.Logger) *AppointmentUseCase {
	return &AppointmentUseCase{apptRepo: apptRepo, llm: llm, log: log}
}

// Create agenda uma reunião com status PENDENTE.
func (uc *AppointmentUseCase) Create(ctx context.Context, orgID string, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if strings.TrimSpace(in.ClientName) == "" || in.DateTime.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	duration := in.Duration
	if duration <= 0 {
		duration = 30
	}
	now := time.Now()
	appt := &entity.Appointment{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientWhatsApp: in.ClientWhatsApp,
		DateTime:       in.DateTime,
		Duration:       duration,
		Status:         entity.AppointmentPendente,
		Link:           in.Link,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.apptRepo.Upsert(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// Update atualização parcial (reagendamento, confirmação, conclusão).
func (uc *AppointmentUseCase) Update(ctx context.Context, orgID, apptID string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.mustGet(ctx, orgID, apptID)
	if err != nil {
		return nil, err
	}
	if in.ClientName != nil {
		appt.ClientName = *in.ClientName
	}
	if in.DateTime != nil {
		appt.DateTime = *in.DateTime
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, domain.ErrInvalidInput
		}
		appt.Duration = *in.Duration
	}
	if in.Status != nil {
		if !validAppointmentStatus[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		appt.Status = *in.Status
	}
	if in.Link != nil {
		appt.Link = *in.Link
	}
	appt.UpdatedAt = time.Now()
	if err := uc.apptRepo.Upsert(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// ConfirmationMessage gera a mensagem de confirmação para envio via WhatsApp.
// Falha da IA degrada para um texto padrão, nunca para erro.
func (uc *AppointmentUseCase) ConfirmationMessage(ctx context.Context, orgID, apptID string) (*dto.AITextResponse, error) {
	appt, err := uc.mustGet(ctx, orgID, apptID)
	if err != nil {
		return nil, err
	}
	fallback := fmt.Sprintf(
		"Olá %s! Confirmando nossa reunião em %s (%d min). Até lá! %s",
		appt.ClientName, appt.DateTime.Format("02/01/2006 às 15:04"), appt.Duration, appt.Link,
	)
	if uc.llm == nil {
		return &dto.AITextResponse{Text: fallback}, nil
	}
	llmCtx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()
	prompt := fmt.Sprintf(
		"Escreva uma mensagem curta e cordial de confirmação de reunião para WhatsApp. "+
			"Cliente: %s. Data: %s. Duração: %d minutos. Link: %s.",
		appt.ClientName, appt.DateTime.Format("02/01/2006 15:04"), appt.Duration, appt.Link,
	)
	text, err := uc.llm.GenerateText(llmCtx, prompt,
		"Você é a assistente de agendamento da WS Brasil. Tom profissional e caloroso, em português.", 0.7)
	if err != nil {
		uc.log.Warn().Err(err).Str("appointment_id", apptID).Msg("mensagem de confirmação gerada por fallback")
		return &dto.AITextResponse{Text: fallback}, nil
	}
	return &dto.AITextResponse{Text: text}, nil
}

const (
	// weeklyCapacityMin capacidade comercial da semana (40h) usada no cálculo de ocupação.
	weeklyCapacityMin = 40 * 60
	// scheduleScan teto de agendamentos varridos para o cálculo de ocupação.
	scheduleScan = 1000
)

// OptimizeSchedule calcula a ocupação da agenda na semana corrente e pede um
// insight estratégico de 1 frase. Falha da IA degrada para o texto padrão.
func (uc *AppointmentUseCase) OptimizeSchedule(ctx context.Context, orgID string) (*dto.ScheduleInsightResponse, error) {
	appts, err := uc.apptRepo.ListByOrganization(ctx, orgID, scheduleScan, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekStart = time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
	weekEnd := weekStart.AddDate(0, 0, 7)

	busy := 0
	for _, a := range appts {
		if a.Status != entity.AppointmentConcluido && !a.DateTime.Before(weekStart) && a.DateTime.Before(weekEnd) {
			busy += a.Duration
		}
	}
	load := busy * 100 / weeklyCapacityMin
	if load > 100 {
		load = 100
	}

	out := &dto.ScheduleInsightResponse{
		LoadPercent: load,
		Insight:     "Continue focado na prospecção ativa.",
	}
	if uc.llm == nil {
		return out, nil
	}
	llmCtx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()
	prompt := fmt.Sprintf("Minha agenda está com %d%% de ocupação esta semana. Me dê um insight estratégico de 1 frase.", load)
	text, err := uc.llm.GenerateText(llmCtx, prompt,
		"Você é um Consultor de Produtividade Executiva focado em maximizar o lucro da WS Brasil.", 0.9)
	if err != nil || strings.TrimSpace(text) == "" {
		uc.log.Warn().Err(err).Str("org_id", orgID).Msg("insight de agenda gerado por fallback")
		return out, nil
	}
	out.Insight = strings.TrimSpace(text)
	return out, nil
}

// List lista agendamentos do tenant paginados.
func (uc *AppointmentUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.AppointmentListResponse, error) {
	page.DefaultPage()
	appts, err := uc.apptRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AppointmentListResponse{
		Items: make([]dto.AppointmentResponse, 0, len(appts)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(appts)},
	}
	for _, a := range appts {
		out.Items = append(out.Items, *toAppointmentResponse(a))
	}
	return out, nil
}

// Delete cancela (remove) um agendamento.
func (uc *AppointmentUseCase) Delete(ctx context.Context, orgID, apptID string) error {
	if _, err := uc.mustGet(ctx, orgID, apptID); err != nil {
		return err
	}
	return uc.apptRepo.Delete(ctx, apptID)
}

func (uc *AppointmentUseCase) mustGet(ctx context.Context, orgID, apptID string) (*entity.Appointment, error) {
	appt, err := uc.apptRepo.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return appt, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		ClientName:     a.ClientName,
		ClientWhatsApp: a.ClientWhatsApp,
		DateTime:       a.DateTime,
		Duration:       a.Duration,
		Status:         a.Status,
		Link:           a.Link,
	}
}
