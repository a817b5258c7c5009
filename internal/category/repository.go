package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, name, slug, icon string) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, slug, icon, created_at
		FROM categories
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, name, slug, icon string) (*Category, error) {
	var c Category

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, icon)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, icon, created_at
	`, name, slug, icon).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) error {
	query := `UPDATE categories SET `
	args := []any{}
	argIndex := 1

	if in.Name != nil {
		query += fmt.Sprintf("name = $%d", argIndex)
		args = append(args, *in.Name)
		argIndex++
	}
	if in.Icon != nil {
		if argIndex > 1 {
			query += ", "
		}
		query += fmt.Sprintf("icon = $%d", argIndex)
		args = append(args, *in.Icon)
		argIndex++
	}

	if len(args) == 0 {
		return nil
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIndex)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
