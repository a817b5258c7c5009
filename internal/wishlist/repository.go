package wishlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/google/uuid"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItem, error)
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	UpsertBatch(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			w.id, w.user_id, w.product_id, w.created_at,
			p.id, p.title, p.description, p.price, p.discount_percentage,
			p.thumbnail, p.category_slug, p.stock, p.created_at
		FROM wishlists w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*WishlistItem
	for rows.Next() {
		var (
			item WishlistItem
			p    product.Product
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&p.ID, &p.Title, &p.Description, &p.Price, &p.DiscountPercentage,
			&p.Thumbnail, &p.CategorySlug, &p.Stock, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *repository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlists (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, userID, productID)
	return err
}

func (r *repository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlists
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM wishlists
			WHERE user_id = $1 AND product_id = $2
		)
	`, userID, productID).Scan(&exists)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}

// UpsertBatch inserts the given product ids in a single statement, ignoring
// rows that already exist. Used when merging a locally held wishlist into
// the account after login.
func (r *repository) UpsertBatch(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	query := `INSERT INTO wishlists (user_id, product_id) VALUES `
	args := []any{userID}
	for i, pid := range productIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($1, $%d)", i+2)
		args = append(args, pid)
	}
	query += ` ON CONFLICT (user_id, product_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
