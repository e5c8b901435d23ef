package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadTemperature faixa discreta derivada do score contínuo do lead.
type LeadTemperature string

const (
	TemperatureFogo     LeadTemperature = "FOGO"
	TemperatureAquecido LeadTemperature = "AQUECIDO"
	TemperatureFrio     LeadTemperature = "FRIO"
)

// LeadTask tarefa vinculada a um lead.
type LeadTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// LeadReminder lembrete vinculado a um lead.
type LeadReminder struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
}

// Lead oportunidade comercial no funil do tenant. Status é sempre o id de uma
// etapa do funil da organização; Temperature é função pura do Score e nunca é
// armazenada sem recomputação.
type Lead struct {
	ID               string
	OrganizationID   string
	Company          string
	CNPJ             string
	Contact          string
	Email            string
	Phone            string
	Value            decimal.Decimal
	ProductID        string
	ProductName      string
	Observations     string
	Status           string // id da etapa do funil
	Probability      int    // 0-100
	LastContact      time.Time
	Score            int // ≥ 0
	Temperature      LeadTemperature
	Tasks            []LeadTask
	Reminders        []LeadReminder
	CustomAttributes map[string]any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
