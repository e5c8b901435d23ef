package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/pricing"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

// unboundedPatrimonyQty quantidade convencionada de um item '∞' no cálculo de
// patrimônio em estoque.
var unboundedPatrimonyQty = decimal.NewFromInt(100)

// ProductUseCase catálogo/estoque do tenant e calculadora de precificação.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// SuggestPrice expõe o motor de markup como operação avulsa (tela PRICING,
// acessível em qualquer plano).
func (uc *ProductUseCase) SuggestPrice(in dto.SuggestPriceRequest) dto.SuggestPriceResponse {
	price := pricing.SuggestPrice(in.Cost, in.OverheadPct, in.MarginPct)
	return dto.SuggestPriceResponse{
		Price:  price,
		Markup: pricing.DisplayMarkup(price, in.Cost),
	}
}

// Create cadastra um item derivando Price e Markup do motor de precificação e
// Status do estoque informado.
func (uc *ProductUseCase) Create(ctx context.Context, orgID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	stock := entity.StockOf(0)
	if in.Stock != nil {
		stock = *in.Stock
	}
	price := pricing.SuggestPrice(in.Cost, in.OverheadPct, in.MarginPct)
	now := time.Now()
	item := &entity.ProductItem{
		ID:               uuid.NewString(),
		OrganizationID:   orgID,
		Name:             strings.TrimSpace(in.Name),
		Category:         in.Category,
		Group:            in.Group,
		Cost:             in.Cost,
		Markup:           pricing.DisplayMarkup(price, in.Cost),
		Price:            price,
		Stock:            stock,
		Status:           entity.ProductStatusFor(stock),
		CustomAttributes: in.CustomAttributes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}
	return toProductResponse(item), nil
}

// Update atualização parcial. Alterar custo ou preço recalcula o markup de
// exibição; alterar estoque rederiva o status.
func (uc *ProductUseCase) Update(ctx context.Context, orgID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	item, err := uc.mustGet(ctx, orgID, productID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Group != nil {
		item.Group = *in.Group
	}
	if in.Cost != nil {
		item.Cost = *in.Cost
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Cost != nil || in.Price != nil {
		item.Markup = pricing.DisplayMarkup(item.Price, item.Cost)
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
		item.Status = entity.ProductStatusFor(item.Stock)
	}
	if in.CustomAttributes != nil {
		item.CustomAttributes = in.CustomAttributes
	}
	item.UpdatedAt = time.Now()
	if err := uc.productRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}
	return toProductResponse(item), nil
}

// Get devolve um item do tenant.
func (uc *ProductUseCase) Get(ctx context.Context, orgID, productID string) (*dto.ProductResponse, error) {
	item, err := uc.mustGet(ctx, orgID, productID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(item), nil
}

// List lista o catálogo paginado e soma o patrimônio em estoque
// (custo × quantidade; itens '∞' entram com quantidade convencionada).
func (uc *ProductUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	items, err := uc.productRepo.ListByOrganization(ctx, orgID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items:     make([]dto.ProductResponse, 0, len(items)),
		Patrimony: decimal.Zero,
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}
	for _, it := range items {
		out.Items = append(out.Items, *toProductResponse(it))
		qty := unboundedPatrimonyQty
		if !it.Stock.Unbounded {
			qty = decimal.NewFromInt(it.Stock.Qty)
		}
		out.Patrimony = out.Patrimony.Add(it.Cost.Mul(qty))
	}
	return out, nil
}

// Delete remove um item do catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, orgID, productID string) error {
	if _, err := uc.mustGet(ctx, orgID, productID); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, productID)
}

func (uc *ProductUseCase) mustGet(ctx context.Context, orgID, productID string) (*entity.ProductItem, error) {
	item, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toProductResponse(it *entity.ProductItem) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               it.ID,
		OrganizationID:   it.OrganizationID,
		Name:             it.Name,
		Category:         it.Category,
		Group:            it.Group,
		Cost:             it.Cost,
		Markup:           it.Markup,
		Price:            it.Price,
		Stock:            it.Stock,
		Status:           it.Status,
		CustomAttributes: it.CustomAttributes,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}
