package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status derivados do nível de estoque de um ProductItem.
const (
	ProductStatusAtivo         = "ATIVO"
	ProductStatusBaixo         = "BAIXO"
	ProductStatusIndisponivel  = "INDISPONÍVEL"
	LowStockThreshold    int64 = 5
)

// Stock quantidade em estoque. Unbounded representa o sentinela '∞' usado para
// itens sem controle de quantidade (serviços, licenças).
type Stock struct {
	Unbounded bool
	Qty       int64
}

// UnboundedStock devolve o sentinela '∞'.
func UnboundedStock() Stock { return Stock{Unbounded: true} }

// StockOf devolve um estoque finito.
func StockOf(qty int64) Stock { return Stock{Qty: qty} }

// MarshalJSON serializa como número ou como a string "∞".
func (s Stock) MarshalJSON() ([]byte, error) {
	if s.Unbounded {
		return json.Marshal("∞")
	}
	return json.Marshal(s.Qty)
}

// UnmarshalJSON aceita número ou a string "∞".
func (s *Stock) UnmarshalJSON(b []byte) error {
	var qty int64
	if err := json.Unmarshal(b, &qty); err == nil {
		*s = Stock{Qty: qty}
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if str == "∞" {
			*s = Stock{Unbounded: true}
			return nil
		}
		return fmt.Errorf("stock: valor %q inválido", str)
	}
	return fmt.Errorf("stock: esperado número ou \"∞\"")
}

// ProductStatusFor deriva o status de exibição a partir do estoque. A derivação
// é centralizada aqui para que nenhuma tela calcule o status por conta própria.
func ProductStatusFor(s Stock) string {
	switch {
	case s.Unbounded:
		return ProductStatusAtivo
	case s.Qty <= 0:
		return ProductStatusIndisponivel
	case s.Qty <= LowStockThreshold:
		return ProductStatusBaixo
	default:
		return ProductStatusAtivo
	}
}

// ProductItem representa um item do catálogo/estoque do tenant.
// Markup e Price são derivados do motor de precificação no momento do cadastro;
// Status é derivado do estoque via ProductStatusFor.
type ProductItem struct {
	ID               string
	OrganizationID   string
	Name             string
	Category         string
	Group            string
	Cost             decimal.Decimal
	Markup           int64 // percentual inteiro para exibição
	Price            decimal.Decimal
	Stock            Stock
	Status           string // ver ProductStatus*
	CustomAttributes map[string]any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
