package cart_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shopstore/internal/domain/cart"
	"github.com/your-org/shopstore/internal/domain/product"
	"github.com/your-org/shopstore/internal/domain/user"
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

func createUser(t *testing.T, db *gorm.DB, email string) *user.User {
	t.Helper()
	u, err := user.NewRepository(db).Create(email, "hashed-password", "tester")
	require.NoError(t, err)
	return u
}

func TestAdd_NewLine(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	p := &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00, Image: "mouse.jpg"}
	require.NoError(t, repo.Add(u.ID, p))

	items, err := repo.Items(u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, "Wireless Mouse", items[0].Title)
	assert.Equal(t, 10.00, items[0].Price)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdd_SameProductMergesIntoOneLine(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	p := &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}
	require.NoError(t, repo.Add(u.ID, p))
	require.NoError(t, repo.Add(u.ID, p))

	items, err := repo.Items(u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_KeepsOriginalSnapshot(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}))

	// The cache was refreshed with a new price; the existing line keeps the
	// price it was added at.
	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 7, Title: "Wireless Mouse", Price: 12.50}))

	items, err := repo.Items(u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 10.00, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_SeparateUsersSeparateCarts(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	p := &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}
	require.NoError(t, repo.Add(alice.ID, p))
	require.NoError(t, repo.Add(bob.ID, p))

	aliceItems, err := repo.Items(alice.ID)
	require.NoError(t, err)
	bobItems, err := repo.Items(bob.ID)
	require.NoError(t, err)
	assert.Len(t, aliceItems, 1)
	assert.Len(t, bobItems, 1)
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}))
	items, err := repo.Items(u.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateQuantity(items[0].ID, 5))

	items, err = repo.Items(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}))
	items, err := repo.Items(u.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateQuantity(items[0].ID, 0))

	items, err = repo.Items(u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateQuantity_MissingLine(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)

	err := repo.UpdateQuantity(999, 3)
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
}

func TestRemove_MissingLine(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)

	err := repo.Remove(999)
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
}

func TestClear(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}))
	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 8, Title: "Keyboard", Price: 35.00}))

	require.NoError(t, repo.Clear(u.ID))

	items, err := repo.Items(u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an already empty cart is a no-op.
	assert.NoError(t, repo.Clear(u.ID))
}

func TestSubtotal(t *testing.T) {
	db := newTestDB(t)
	repo := cart.NewRepository(db)
	u := createUser(t, db, "shopper@example.com")

	subtotal, err := repo.Subtotal(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.00, subtotal)

	p := &product.Product{ID: 7, Title: "Wireless Mouse", Price: 10.00}
	require.NoError(t, repo.Add(u.ID, p))
	require.NoError(t, repo.Add(u.ID, p))
	require.NoError(t, repo.Add(u.ID, &product.Product{ID: 8, Title: "Keyboard", Price: 35.00}))

	subtotal, err = repo.Subtotal(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 55.00, subtotal)
}
