package database_test

import (
	"testing"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/database"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNewDialector(t *testing.T) {
	t.Parallel()

	dialector, err := database.NewDialector("", "host=localhost")
	require.NoError(t, err)
	require.Equal(t, "postgres", dialector.Name())

	dialector, err = database.NewDialector("sqlite", ":memory:")
	require.NoError(t, err)
	require.Equal(t, "sqlite", dialector.Name())

	_, err = database.NewDialector("oracle", "")
	require.Error(t, err)
}

func TestRunMigrationOnSqlite(t *testing.T) {
	t.Parallel()

	dialector, err := database.NewDialector("sqlite", "file:migration?mode=memory&cache=shared")
	require.NoError(t, err)
	db, err := database.NewSource(dialector)
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	for _, model := range []any{&models.Post{}, &models.Account{}, &models.AuthSession{}} {
		require.True(t, db.Migrator().HasTable(model))
	}
}
