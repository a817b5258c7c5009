package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, email, hashedPassword, role string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, hashedPassword, role string) (User, error) {
	var u User

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, role, created_at
	`, email, hashedPassword, role).
		Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User

	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, role, created_at
		FROM users
		WHERE email = $1
	`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	var u User

	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, role, created_at
		FROM users
		WHERE id = $1
	`, id).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	return u, nil
}

func (r *repository) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}
