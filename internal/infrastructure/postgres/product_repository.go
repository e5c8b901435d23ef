package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsbrasil/nexus-api/internal/domain/entity"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL.
// Estoque '∞' é persistido como NULL na coluna stock_qty.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, organization_id, name, category, "group", cost, markup, price, stock_qty, status, custom_attributes, created_at, updated_at`

// Upsert grava o item por id (INSERT … ON CONFLICT DO UPDATE).
func (r *ProductRepo) Upsert(ctx context.Context, item *entity.ProductItem) error {
	query := `
		INSERT INTO product_items (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category, "group" = EXCLUDED."group",
			cost = EXCLUDED.cost, markup = EXCLUDED.markup, price = EXCLUDED.price,
			stock_qty = EXCLUDED.stock_qty, status = EXCLUDED.status,
			custom_attributes = EXCLUDED.custom_attributes, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.OrganizationID, item.Name, item.Category, item.Group,
		item.Cost, item.Markup, item.Price, stockToDB(item.Stock), item.Status,
		item.CustomAttributes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", classifyError(err))
	}
	return nil
}

// GetByID obtém um item por id; (nil, nil) se não existir.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.ProductItem, error) {
	query := `SELECT ` + productColumns + ` FROM product_items WHERE id = $1`
	var it entity.ProductItem
	var qty *int64
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.OrganizationID, &it.Name, &it.Category, &it.Group,
		&it.Cost, &it.Markup, &it.Price, &qty, &it.Status,
		&it.CustomAttributes, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", classifyError(err))
	}
	it.Stock = stockFromDB(qty)
	return &it, nil
}

// ListByOrganization devolve itens do tenant paginados.
func (r *ProductRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.ProductItem, error) {
	query := `
		SELECT ` + productColumns + ` FROM product_items
		WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", classifyError(err))
	}
	defer rows.Close()

	var list []*entity.ProductItem
	for rows.Next() {
		var it entity.ProductItem
		var qty *int64
		if err := rows.Scan(
			&it.ID, &it.OrganizationID, &it.Name, &it.Category, &it.Group,
			&it.Cost, &it.Markup, &it.Price, &qty, &it.Status,
			&it.CustomAttributes, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		it.Stock = stockFromDB(qty)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete remove um item.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", classifyError(err))
	}
	return nil
}

// stockToDB converte o estoque para a coluna nullable (NULL = '∞').
func stockToDB(s entity.Stock) *int64 {
	if s.Unbounded {
		return nil
	}
	qty := s.Qty
	return &qty
}

// stockFromDB reconstrói o estoque a partir da coluna nullable.
func stockFromDB(qty *int64) entity.Stock {
	if qty == nil {
		return entity.UnboundedStock()
	}
	return entity.StockOf(*qty)
}
