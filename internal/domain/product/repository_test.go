package product_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shopstore/internal/domain/product"
	dbsqlite "github.com/your-org/shopstore/internal/infrastructure/database/sqlite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	log := logrus.New()
	log.SetOutput(io.Discard)
	require.NoError(t, dbsqlite.NewMigration(db, log).Run())

	return db
}

func catalogFixture() []product.CatalogProduct {
	return []product.CatalogProduct{
		{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing", Rating: product.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "T-Shirt", Price: 22.30, Category: "men's clothing"},
		{ID: 3, Title: "Gold Ring", Price: 168.00, Category: "jewelery"},
	}
}

func TestUpsertAll(t *testing.T) {
	db := newTestDB(t)
	repo := product.NewRepository(db)

	require.NoError(t, repo.UpsertAll(catalogFixture()))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, "Backpack", all[0].Title)
	assert.Equal(t, product.Rating{Rate: 3.9, Count: 120}, all[0].Rating())
	assert.False(t, all[0].CachedAt.IsZero())
}

func TestUpsertAll_ReplacesByID(t *testing.T) {
	db := newTestDB(t)
	repo := product.NewRepository(db)

	require.NoError(t, repo.UpsertAll(catalogFixture()))

	// A second refresh carries a new price for an existing id.
	require.NoError(t, repo.UpsertAll([]product.CatalogProduct{
		{ID: 1, Title: "Backpack", Price: 99.95, Category: "men's clothing"},
	}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 99.95, got.Price)
}

func TestUpsertAll_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := product.NewRepository(db)

	assert.NoError(t, repo.UpsertAll(nil))
}

func TestGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := product.NewRepository(db)

	_, err := repo.GetByID(404)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestGetByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := product.NewRepository(db)

	require.NoError(t, repo.UpsertAll(catalogFixture()))

	clothing, err := repo.GetByCategory("men's clothing")
	require.NoError(t, err)
	require.Len(t, clothing, 2)
	assert.Equal(t, uint(1), clothing[0].ID)
	assert.Equal(t, uint(2), clothing[1].ID)

	none, err := repo.GetByCategory("electronics")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCategories(t *testing.T) {
	db := newTestDB(t)
	repo := product.NewRepository(db)

	require.NoError(t, repo.UpsertAll(catalogFixture()))

	categories, err := repo.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"jewelery", "men's clothing"}, categories)
}
