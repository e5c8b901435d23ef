package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wsbrasil/nexus-api/internal/domain/pricing"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Caso canônico: custo 100, despesas 15%, lucro 30% → 100 / 0.55 ≈ 181.82.
func TestSuggestPrice_MarkupSobreMargem(t *testing.T) {
	price := pricing.SuggestPrice(d("100"), d("15"), d("30"))
	assert.Equal(t, "181.82", price.Round(2).String())

	// Markup de exibição derivado: round((181.81…/100 − 1) × 100) = 82%.
	assert.Equal(t, int64(82), pricing.DisplayMarkup(price, d("100")))
}

// Despesas + lucro ≥ 100% consumiriam toda a receita: trava custo × 2.
func TestSuggestPrice_TravaDeSeguranca(t *testing.T) {
	price := pricing.SuggestPrice(d("100"), d("60"), d("50"))
	assert.True(t, price.Equal(d("200")), "esperava 200, veio %s", price)

	// Exatamente 100% também cai na trava (divisão por zero no caminho normal).
	price = pricing.SuggestPrice(d("80"), d("70"), d("30"))
	assert.True(t, price.Equal(d("160")))
}

// Custo não-positivo → sem sugestão.
func TestSuggestPrice_CustoNaoPositivo(t *testing.T) {
	assert.True(t, pricing.SuggestPrice(d("0"), d("20"), d("30")).IsZero())
	assert.True(t, pricing.SuggestPrice(d("-10"), d("20"), d("30")).IsZero())
	assert.Equal(t, int64(0), pricing.DisplayMarkup(d("50"), d("0")))
}

func TestSuggestPrice_PercentuaisZerados(t *testing.T) {
	// Sem despesas nem lucro o preço sugerido é o próprio custo.
	price := pricing.SuggestPrice(d("100"), d("0"), d("0"))
	assert.True(t, price.Equal(d("100")))
	assert.Equal(t, int64(0), pricing.DisplayMarkup(price, d("100")))
}
