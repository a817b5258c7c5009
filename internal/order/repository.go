package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// queryTimeout bounds every storage round trip so a stuck connection
// surfaces as ErrTimeout instead of hanging the caller.
const queryTimeout = 5 * time.Second

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	ListComments(ctx context.Context, orderID uuid.UUID) ([]*OrderComment, error)
	AddComment(ctx context.Context, c *OrderComment) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func mapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// Create inserts the order header and its item batch in one transaction.
// Either everything lands or nothing does; an order row can never exist
// without its items.
func (r *repository) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	log := logger.FromCtx(ctx).With(
		zap.String("method", "Create"),
		zap.String("user_id", o.UserID.String()),
		zap.Int("item_count", len(o.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapTimeout(err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback order transaction", zap.Error(rbErr))
			}
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, user_email, status, total, shipping_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		o.UserID,
		o.UserEmail,
		o.Status,
		o.Total,
		o.ShippingAddress,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order header", zap.Error(err))
		return mapTimeout(err)
	}

	// Single multi-row insert for the item batch.
	query := `INSERT INTO order_items (order_id, product_id, quantity, price) VALUES `
	args := []any{o.ID}
	argIndex := 2
	for i, item := range o.Items {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($1, $%d, $%d, $%d)", argIndex, argIndex+1, argIndex+2)
		args = append(args, item.ProductID, item.Quantity, item.Price)
		argIndex += 3
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert order items", zap.Error(err))
		return mapTimeout(err)
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return mapTimeout(err)
	}

	committed = true
	log.Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("total", o.Total.String()),
	)

	return nil
}

const orderColumns = `id, user_id, user_email, status, total, shipping_address, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.UserEmail,
		&o.Status,
		&o.Total,
		&o.ShippingAddress,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, mapTimeout(err)
	}

	itemsByOrder, err := r.fetchItems(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return nil, mapTimeout(err)
	}
	o.Items = itemsByOrder[o.ID]

	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

func (r *repository) ListAll(ctx context.Context) ([]*Order, error) {
	return r.list(ctx, ``)
}

func (r *repository) list(ctx context.Context, where string, args ...any) ([]*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders `
	if where != "" {
		query += where + " "
	}
	query += `ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapTimeout(err)
	}
	defer rows.Close()

	var (
		orders   []*Order
		orderIDs []uuid.UUID
	)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapTimeout(err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.fetchItems(ctx, orderIDs)
	if err != nil {
		return nil, mapTimeout(err)
	}
	for _, o := range orders {
		o.Items = itemsByOrder[o.ID]
	}

	return orders, nil
}

// fetchItems loads the item batches for the given orders in one query, each
// item carrying the lightweight product display snapshot.
func (r *repository) fetchItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItem, error) {
	args := make([]any, 0, len(orderIDs))
	placeholders := ""
	for i, id := range orderIDs {
		if i > 0 {
			placeholders += ","
		}
		placeholders += fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.title, p.thumbnail
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			item OrderItem
			snap product.Snapshot
		)
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&snap.Title, &snap.Thumbnail,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &snap
		result[item.OrderID] = append(result[item.OrderID], item)
	}

	return result, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return mapTimeout(err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) ListComments(ctx context.Context, orderID uuid.UUID) ([]*OrderComment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, admin_user_id, comment, status, created_at, updated_at
		FROM order_comments
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, mapTimeout(err)
	}
	defer rows.Close()

	var comments []*OrderComment
	for rows.Next() {
		var c OrderComment
		err := rows.Scan(&c.ID, &c.OrderID, &c.AdminUserID, &c.Comment, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}

func (r *repository) AddComment(ctx context.Context, c *OrderComment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO order_comments (order_id, admin_user_id, comment, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`,
		c.OrderID,
		c.AdminUserID,
		c.Comment,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	return mapTimeout(err)
}
