package category

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

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "slug", "icon", "created_at"}).
		AddRow(uuid.New(), "Electronics", "electronics", "cpu", now).
		AddRow(uuid.New(), "Books", "books", "book", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, name, slug, icon, created_at FROM categories ORDER BY created_at DESC`).
		WillReturnRows(rows)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.Equal(t, "books", categories[1].Slug)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`INSERT INTO categories`).
			WithArgs("Home & Garden", "home-garden", "home").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "icon", "created_at"}).
				AddRow(id, "Home & Garden", "home-garden", "home", time.Now()))

		c, err := repo.Create(ctx, "Home & Garden", "home-garden", "home")
		require.NoError(t, err)
		assert.Equal(t, id, c.ID)
	})

	t.Run("DuplicateSlug", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO categories`).
			WithArgs("Books", "books", "book").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(ctx, "Books", "books", "book")
		assert.ErrorIs(t, err, ErrSlugExists)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrCategoryNotFound)
	})
}
