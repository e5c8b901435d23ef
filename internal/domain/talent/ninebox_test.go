package talent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wsbrasil/nexus-api/internal/domain/talent"
)

func TestBandFor_Limites(t *testing.T) {
	// Banda alta é estritamente > 85: 85 em ponto é M.
	assert.Equal(t, talent.BandHigh, talent.BandFor(86))
	assert.Equal(t, talent.BandMedium, talent.BandFor(85))
	// Banda média é estritamente > 60: 60 em ponto é L.
	assert.Equal(t, talent.BandMedium, talent.BandFor(61))
	assert.Equal(t, talent.BandLow, talent.BandFor(60))
	assert.Equal(t, talent.BandLow, talent.BandFor(0))
	assert.Equal(t, talent.BandHigh, talent.BandFor(100))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, talent.Cell("H-H"), talent.Classify(90, 90))
	assert.Equal(t, talent.Cell("M-M"), talent.Classify(85, 85))
	assert.Equal(t, talent.Cell("L-L"), talent.Classify(60, 60))
	assert.Equal(t, talent.Cell("H-L"), talent.Classify(95, 40))
	assert.Equal(t, talent.Cell("L-H"), talent.Classify(40, 95))
}

// Totalidade: qualquer par de scores finitos cai em exatamente uma das 9 células.
func TestClassify_Totalidade(t *testing.T) {
	valid := make(map[talent.Cell]bool, 9)
	for _, c := range talent.Cells() {
		valid[c] = true
	}
	assert.Len(t, valid, 9)

	for perf := -10; perf <= 110; perf += 5 {
		for pot := -10; pot <= 110; pot += 5 {
			cell := talent.Classify(perf, pot)
			assert.True(t, valid[cell], "célula %s fora da grade para (%d, %d)", cell, perf, pot)
		}
	}
}
