package dto

import "time"

// CreateAppointmentRequest agendamento de reunião.
type CreateAppointmentRequest struct {
	ClientName     string    `json:"clientName"`
	ClientWhatsApp string    `json:"clientWhatsApp"`
	DateTime       time.Time `json:"dateTime"`
	Duration       int       `json:"duration"`
	Link           string    `json:"link"`
}

// UpdateAppointmentRequest atualização parcial de agendamento.
type UpdateAppointmentRequest struct {
	ClientName *string    `json:"clientName"`
	DateTime   *time.Time `json:"dateTime"`
	Duration   *int       `json:"duration"`
	Status     *string    `json:"status"`
	Link       *string    `json:"link"`
}

// AppointmentResponse projeção pública de Appointment, com a mensagem de
// confirmação gerada por IA quando solicitada.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organizationId"`
	ClientName      string    `json:"clientName"`
	ClientWhatsApp  string    `json:"clientWhatsApp"`
	DateTime        time.Time `json:"dateTime"`
	Duration        int       `json:"duration"`
	Status          string    `json:"status"`
	Link            string    `json:"link"`
	ConfirmationMsg string    `json:"confirmationMessage,omitempty"`
}

// ScheduleInsightResponse ocupação semanal da agenda + insight de produtividade.
type ScheduleInsightResponse struct {
	LoadPercent int    `json:"loadPercent"`
	Insight     string `json:"insight"`
}

// AppointmentListResponse listagem paginada de agendamentos.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
