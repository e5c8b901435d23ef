package entity

import "time"

// Status de um agendamento.
const (
	AppointmentConfirmado = "CONFIRMADO"
	AppointmentPendente   = "PENDENTE"
	AppointmentConcluido  = "CONCLUIDO"
)

// Appointment reunião agendada com cliente (módulo SCHEDULING).
type Appointment struct {
	ID             string
	OrganizationID string
	ClientName     string
	ClientWhatsApp string
	DateTime       time.Time
	Duration       int // minutos
	Status         string // ver Appointment*
	Link           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
