package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shopstore/internal/domain/product"
)

// fakeCatalog serves canned responses in place of the remote catalog
type fakeCatalog struct {
	products []product.CatalogProduct
	err      error
}

func (f *fakeCatalog) AllProducts(_ context.Context) ([]product.CatalogProduct, error) {
	return f.products, f.err
}

func (f *fakeCatalog) ProductsByCategory(_ context.Context, category string) ([]product.CatalogProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []product.CatalogProduct
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Categories(_ context.Context) ([]string, error) {
	return nil, f.err
}

func TestRefresh(t *testing.T) {
	db := newTestDB(t)
	svc := product.NewService(db, &fakeCatalog{products: catalogFixture()})

	count, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRefresh_CatalogDown(t *testing.T) {
	db := newTestDB(t)
	svc := product.NewService(db, &fakeCatalog{err: errors.New("connection refused")})

	_, err := svc.Refresh(context.Background())
	require.Error(t, err)

	// The cache is untouched when the fetch fails.
	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRefreshCategory(t *testing.T) {
	db := newTestDB(t)
	svc := product.NewService(db, &fakeCatalog{products: catalogFixture()})

	count, err := svc.RefreshCategory(context.Background(), "jewelery")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	cached, err := svc.GetByCategory("jewelery")
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "Gold Ring", cached[0].Title)

	// Untouched categories stay out of the cache.
	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
