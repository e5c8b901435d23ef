package crm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wsbrasil/nexus-api/internal/domain/crm"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// Limites inclusivos em 50 e 100 exatamente como definidos.
func TestTemperatureFor_Limites(t *testing.T) {
	cases := []struct {
		score int
		want  entity.LeadTemperature
	}{
		{0, entity.TemperatureFrio},
		{49, entity.TemperatureFrio},
		{50, entity.TemperatureAquecido},
		{99, entity.TemperatureAquecido},
		{100, entity.TemperatureFogo},
		{150, entity.TemperatureFogo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, crm.TemperatureFor(tc.score), "score %d", tc.score)
	}
}

func TestBonusFor(t *testing.T) {
	assert.Equal(t, crm.ClosingBonus, crm.BonusFor("FECHAMENTO", "FECHAMENTO"))
	assert.Equal(t, crm.StageBonus, crm.BonusFor("PROPOSTA", "FECHAMENTO"))
	assert.Equal(t, crm.StageBonus, crm.BonusFor("REUNIAO", "FECHAMENTO"))
}

// Lead com score 40 movido para o fechamento: 40+50 = 90 → AQUECIDO, não FOGO.
// Verifica o bônus de +50 e a re-derivação da temperatura após o bônus.
func TestApplyStageMove_Fechamento(t *testing.T) {
	lead := &entity.Lead{Status: "PROPOSTA", Score: 40, Temperature: entity.TemperatureFrio}

	crm.ApplyStageMove(lead, "FECHAMENTO", "FECHAMENTO")

	assert.Equal(t, "FECHAMENTO", lead.Status)
	assert.Equal(t, 90, lead.Score)
	assert.Equal(t, entity.TemperatureAquecido, lead.Temperature)
}

// O bônus é acumulativo entre etapas distintas: ir e voltar soma cada travessia.
func TestApplyStageMove_Acumulativo(t *testing.T) {
	lead := &entity.Lead{Status: "QUALIFICADO", Score: 50, Temperature: entity.TemperatureAquecido}

	crm.ApplyStageMove(lead, "REUNIAO", "FECHAMENTO")
	crm.ApplyStageMove(lead, "QUALIFICADO", "FECHAMENTO")
	crm.ApplyStageMove(lead, "REUNIAO", "FECHAMENTO")

	assert.Equal(t, 80, lead.Score)
	assert.Equal(t, entity.TemperatureAquecido, lead.Temperature)
}

// Soltar o lead na etapa em que ele já está não duplica o bônus.
func TestApplyStageMove_MesmaEtapaNoOp(t *testing.T) {
	lead := &entity.Lead{Status: "REUNIAO", Score: 60, Temperature: entity.TemperatureAquecido}

	crm.ApplyStageMove(lead, "REUNIAO", "FECHAMENTO")

	assert.Equal(t, 60, lead.Score)
	assert.Equal(t, "REUNIAO", lead.Status)
}
