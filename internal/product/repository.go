package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Santykk/MERCADEO/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error)
	List(ctx context.Context, categorySlug *string) ([]*Product, error)
	Create(ctx context.Context, in CreateProductInput) (*Product, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProductInput) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, title, description, price, discount_percentage, thumbnail, category_slug, stock, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.DiscountPercentage,
		&p.Thumbnail,
		&p.CategorySlug,
		&p.Stock,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByIDs fetches a batch of products in one query, keyed by id. Missing
// ids are simply absent from the result map.
func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*Product{}, nil
	}

	args := make([]any, 0, len(ids))
	placeholders := ""
	for i, id := range ids {
		if i > 0 {
			placeholders += ","
		}
		placeholders += fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*Product, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result[p.ID] = p
	}

	return result, rows.Err()
}

func (r *repository) List(ctx context.Context, categorySlug *string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "List"))

	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}

	if categorySlug != nil && *categorySlug != "" {
		query += ` WHERE category_slug = $1`
		args = append(args, *categorySlug)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) Create(ctx context.Context, in CreateProductInput) (*Product, error) {
	var p Product

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (title, description, price, discount_percentage, thumbnail, category_slug, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns+`
	`,
		in.Title,
		in.Description,
		in.Price,
		in.DiscountPercentage,
		in.Thumbnail,
		in.CategorySlug,
		in.Stock,
	).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.DiscountPercentage,
		&p.Thumbnail,
		&p.CategorySlug,
		&p.Stock,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, in UpdateProductInput) error {
	query := `UPDATE products SET `
	args := []any{}
	argIndex := 1

	appendSet := func(column string, value any) {
		if argIndex > 1 {
			query += ", "
		}
		query += fmt.Sprintf("%s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if in.Title != nil {
		appendSet("title", *in.Title)
	}
	if in.Description != nil {
		appendSet("description", *in.Description)
	}
	if in.Price != nil {
		appendSet("price", *in.Price)
	}
	if in.DiscountPercentage != nil {
		appendSet("discount_percentage", *in.DiscountPercentage)
	}
	if in.Thumbnail != nil {
		appendSet("thumbnail", *in.Thumbnail)
	}
	if in.CategorySlug != nil {
		appendSet("category_slug", *in.CategorySlug)
	}
	if in.Stock != nil {
		appendSet("stock", *in.Stock)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
