// Package crm implementa o motor de pontuação de leads: score acumulativo por
// movimentação no funil e temperatura discreta derivada do score.
package crm

import "github.com/wsbrasil/nexus-api/internal/domain/entity"

// Parâmetros do motor de score.
const (
	// InitialScore score de todo lead recém-criado (nasce AQUECIDO).
	InitialScore = 50
	// StageBonus bônus por entrar em qualquer etapa intermediária do funil.
	StageBonus = 10
	// ClosingBonus bônus por entrar na etapa terminal de fechamento.
	ClosingBonus = 50
)

// TemperatureFor deriva a temperatura do score atual.
// Limites inclusivos exatamente em 100 e 50:
//
//	score ≥ 100 → FOGO; 50 ≤ score < 100 → AQUECIDO; score < 50 → FRIO.
func TemperatureFor(score int) entity.LeadTemperature {
	switch {
	case score >= 100:
		return entity.TemperatureFogo
	case score >= 50:
		return entity.TemperatureAquecido
	default:
		return entity.TemperatureFrio
	}
}

// BonusFor devolve o bônus de score por mover um lead para newStage.
// A etapa terminal de fechamento vale ClosingBonus; qualquer outra, StageBonus.
func BonusFor(newStage, closingStage string) int {
	if newStage != "" && newStage == closingStage {
		return ClosingBonus
	}
	return StageBonus
}

// ApplyStageMove aplica a movimentação de funil sobre o lead: soma o bônus da
// etapa de destino e recomputa a temperatura. Soltar o lead na etapa em que ele
// já está é no-op — o bônus é acumulativo entre etapas distintas, mas nunca
// duplicado pelo mesmo drop.
func ApplyStageMove(lead *entity.Lead, newStage, closingStage string) {
	if lead.Status == newStage {
		return
	}
	lead.Status = newStage
	lead.Score += BonusFor(newStage, closingStage)
	lead.Temperature = TemperatureFor(lead.Score)
}
