//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL_Precedence(t *testing.T) {
	t.Setenv("PHOTOALBUM_TEST_DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_URL", "postgres://fallback")
	assert.Equal(t, "postgres://test", DatabaseURL())

	t.Setenv("PHOTOALBUM_TEST_DATABASE_URL", "")
	assert.Equal(t, "postgres://fallback", DatabaseURL())

	t.Setenv("DATABASE_URL", "")
	assert.True(t, ShouldSkipDatabaseTest())
}

func TestWithTx_RollsBack(t *testing.T) {
	db := Open(t)

	WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.ExecContext(context.Background(), `CREATE TABLE testdb_probe (id INT)`)
		require.NoError(t, err)
	})

	var exists bool
	err := db.QueryRowContext(context.Background(),
		`SELECT EXISTS (SELECT FROM pg_tables WHERE tablename = 'testdb_probe')`).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)
}
