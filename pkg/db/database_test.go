package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestOpen_SQLiteAndAutoMigrate(t *testing.T) {
	ctx := context.Background()

	gdb, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.NoError(t, Migrate(ctx, gdb, DriverSQLite, "", &widget{}))
	require.NoError(t, gdb.Create(&widget{Name: "a"}).Error)

	var count int64
	require.NoError(t, gdb.Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.NoError(t, Ping(ctx, gdb))
}

func TestOpen_Rejects(t *testing.T) {
	_, err := Open(context.Background(), DriverSQLite, "")
	assert.Error(t, err)

	_, err = Open(context.Background(), "oracle", "dsn")
	assert.ErrorContains(t, err, "unknown database driver")
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "000001_init.down.sql", entries[0].Name())
}
