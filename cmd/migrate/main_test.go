package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE orders (id uuid PRIMARY KEY);
ALTER TABLE orders ADD COLUMN status text;

-- +migrate Down
DROP TABLE orders;
`

	t.Run("Up", func(t *testing.T) {
		up := extractSection(content, "Up")
		assert.Contains(t, up, "CREATE TABLE orders")
		assert.Contains(t, up, "ALTER TABLE orders")
		assert.NotContains(t, up, "DROP TABLE orders")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Down", func(t *testing.T) {
		down := extractSection(content, "Down")
		assert.Contains(t, down, "DROP TABLE orders")
		assert.NotContains(t, down, "CREATE TABLE orders")
	})
}

func TestMigrateUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	content := "-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, fileName), []byte(content), 0644))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE test").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, run(db, "up", tmpDir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	content := "-- +migrate Up\nCREATE TABLE test (id int);"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, fileName), []byte(content), 0644))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, run(db, "up", tmpDir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	content := "-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, fileName), []byte(content), 0644))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(fileName))
	mock.ExpectExec("DROP TABLE test").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, run(db, "down", tmpDir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = run(db, "sideways", t.TempDir())
	assert.ErrorContains(t, err, "unknown mode")
}
