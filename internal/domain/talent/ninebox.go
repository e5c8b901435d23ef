// Package talent implementa o classificador 9-box de RH: grade 3×3 cruzando
// bandas de performance e potencial, usada em planejamento sucessório.
package talent

// Band banda discreta de um eixo do 9-box.
type Band string

const (
	BandHigh   Band = "H"
	BandMedium Band = "M"
	BandLow    Band = "L"
)

// Cell célula da grade, chave ordenada (performance, potencial), ex: "H-M".
type Cell string

// BandFor converte um score 0-100 em banda: > 85 alto, > 60 médio, ≤ 60 baixo.
// Os limites são exclusivos em 85 e 60 (85 é M, 60 é L).
func BandFor(score int) Band {
	switch {
	case score > 85:
		return BandHigh
	case score > 60:
		return BandMedium
	default:
		return BandLow
	}
}

// Classify posiciona um colaborador em exatamente uma das 9 células a partir dos
// scores de performance e potencial, aplicando BandFor a cada eixo de forma
// independente. Total sobre quaisquer dois scores finitos.
func Classify(performanceScore, potentialScore int) Cell {
	return Cell(string(BandFor(performanceScore)) + "-" + string(BandFor(potentialScore)))
}

// Cells devolve as 9 células na ordem de exibição da grade
// (potencial alto → baixo por linha, performance baixa → alta por coluna).
func Cells() []Cell {
	return []Cell{
		"L-H", "M-H", "H-H",
		"L-M", "M-M", "H-M",
		"L-L", "M-L", "H-L",
	}
}
