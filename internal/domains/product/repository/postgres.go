package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"product-service/internal/domains/product/model"
	"product-service/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// Save inserts the product when it has no internal ID yet, otherwise updates
// the stored row. The external ID is assigned on insert iff unset and never
// rewritten on update. Runs in its own transaction.
func (r *postgresRepository) Save(ctx context.Context, product *model.Product) (*model.Product, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Product, error) {
		if product.ID == 0 {
			return r.insert(ctx, tx, product)
		}
		return r.update(ctx, tx, product)
	})
}

func (r *postgresRepository) insert(ctx context.Context, tx pgx.Tx, product *model.Product) (*model.Product, error) {
	if product.ExternalID == "" {
		product.ExternalID = model.NewExternalID()
	}

	query := `INSERT INTO products (external_id, name, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, product.ExternalID, product.Name, product.Price).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

func (r *postgresRepository) update(ctx context.Context, tx pgx.Tx, product *model.Product) (*model.Product, error) {
	query := `UPDATE products SET name=$2, price=$3, updated_at=NOW()
		WHERE id=$1
		RETURNING updated_at`

	err := tx.QueryRow(ctx, query, product.ID, product.Name, product.Price).
		Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (r *postgresRepository) FindByExternalID(ctx context.Context, externalID string) (*model.Product, error) {
	query := `SELECT id, external_id, name, price, created_at, updated_at
		FROM products WHERE external_id = $1`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, externalID).
		Scan(&p.ID, &p.ExternalID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

// FindAll returns one page of products.
// page.Offset is a zero-based page index, so the row offset is Offset*Limit.
func (r *postgresRepository) FindAll(ctx context.Context, page model.PageRequest) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT id, external_id, name, price, created_at, updated_at
		FROM products %s LIMIT $1 OFFSET $2`, orderByClause(page.Sorts))

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Offset*page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.ExternalID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}

// orderByClause builds the ORDER BY from validated sort orders.
// Column names come from the model's sortable-column whitelist, never from
// raw user input. Falls back to the insertion order.
func orderByClause(sorts []model.SortOrder) string {
	if len(sorts) == 0 {
		return "ORDER BY id ASC"
	}

	clauses := make([]string, 0, len(sorts))
	for _, s := range sorts {
		clauses = append(clauses, fmt.Sprintf("%s %s", s.Column(), s.Direction))
	}
	return "ORDER BY " + strings.Join(clauses, ", ")
}

func (r *postgresRepository) DeleteByExternalID(ctx context.Context, externalID string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM products WHERE external_id = $1`, externalID)
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		// Zero rows affected means the product was already gone; the delete
		// contract treats that as a no-op, not an error.
		return nil
	})
}
