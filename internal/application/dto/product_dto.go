package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// SuggestPriceRequest entrada da calculadora de markup. Percentuais inteiros
// (30 significa 30%).
type SuggestPriceRequest struct {
	Cost        decimal.Decimal `json:"cost"`
	OverheadPct decimal.Decimal `json:"overheadPct"`
	MarginPct   decimal.Decimal `json:"marginPct"`
}

// SuggestPriceResponse preço sugerido e markup de exibição derivado.
type SuggestPriceResponse struct {
	Price  decimal.Decimal `json:"price"`
	Markup int64           `json:"markup"`
}

// CreateProductRequest cadastro de item. Price/Markup saem do motor de
// precificação com os percentuais informados; Status deriva do estoque.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Group            string          `json:"group"`
	Cost             decimal.Decimal `json:"cost"`
	OverheadPct      decimal.Decimal `json:"overheadPct"`
	MarginPct        decimal.Decimal `json:"marginPct"`
	Stock            *entity.Stock   `json:"stock"`
	CustomAttributes map[string]any  `json:"customAttributes"`
}

// UpdateProductRequest atualização parcial de item.
type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Category         *string          `json:"category"`
	Group            *string          `json:"group"`
	Cost             *decimal.Decimal `json:"cost"`
	Price            *decimal.Decimal `json:"price"`
	Stock            *entity.Stock    `json:"stock"`
	CustomAttributes map[string]any   `json:"customAttributes"`
}

// ProductResponse projeção pública de ProductItem.
type ProductResponse struct {
	ID               string          `json:"id"`
	OrganizationID   string          `json:"organizationId"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Group            string          `json:"group"`
	Cost             decimal.Decimal `json:"cost"`
	Markup           int64           `json:"markup"`
	Price            decimal.Decimal `json:"price"`
	Stock            entity.Stock    `json:"stock"`
	Status           string          `json:"status"`
	CustomAttributes map[string]any  `json:"customAttributes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ProductListResponse listagem paginada com o patrimônio em estoque do tenant
// (itens com estoque '∞' entram com quantidade convencionada de 100).
type ProductListResponse struct {
	Items     []ProductResponse `json:"items"`
	Patrimony decimal.Decimal   `json:"patrimony"`
	Page      PageResponse      `json:"page"`
}
