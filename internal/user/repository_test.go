package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "email", "role", "created_at"}).
			AddRow(id, "a@b.com", "USER", time.Now())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("a@b.com", "hashed", "USER").
			WillReturnRows(rows)

		u, err := repo.Create(ctx, "a@b.com", "hashed", "USER")
		assert.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("a@b.com", "hashed", "USER").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, "a@b.com", "hashed", "USER")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
			AddRow(id, "a@b.com", "hashed", "ADMIN", time.Now())

		mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE email = \$1`).
			WithArgs("a@b.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "a@b.com")
		assert.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE email = \$1`).
			WithArgs("missing@b.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByEmail(ctx, "missing@b.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
