// Package pricing implementa o motor de precificação por markup sobre margem:
// custo dividido por (1 − (despesas% + lucro%)), de modo que despesas e lucro
// sejam percentuais garantidos do preço final, não do custo.
package pricing

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// SuggestPrice calcula o preço de venda sugerido a partir do custo e dos
// percentuais inteiros de despesas (overhead) e lucro desejado.
//
//   - custo ≤ 0 → sem sugestão (zero): markup sobre custo não-positivo não faz sentido.
//   - (despesas + lucro) ≥ 100% → trava de segurança custo × 2, em vez de dividir
//     por zero ou produzir preço negativo. Comportamento deliberado, não bug.
//   - caso contrário → custo / (1 − (despesas + lucro)/100).
//
// O preço retornado não é arredondado; arredondamento é só para exibição.
func SuggestPrice(cost, overheadPct, marginPct decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	combined := overheadPct.Add(marginPct).Div(hundred)
	if combined.GreaterThanOrEqual(one) {
		return cost.Mul(two)
	}
	return cost.Div(one.Sub(combined))
}

// DisplayMarkup deriva o percentual de markup exibido nas telas:
// round((price/cost − 1) × 100). Custo não-positivo → 0.
func DisplayMarkup(price, cost decimal.Decimal) int64 {
	if cost.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return price.Div(cost).Sub(one).Mul(hundred).Round(0).IntPart()
}
