package catalog_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shopstore/internal/config"
	"github.com/your-org/shopstore/internal/infrastructure/catalog"
)

func newClient(t *testing.T, handler http.Handler) *catalog.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Catalog: config.CatalogConfig{
			BaseURL: srv.URL,
			Timeout: 5 * time.Second,
		},
	}
	return catalog.NewClient(cfg, log)
}

func TestAllProducts(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Backpack","price":109.95,"category":"men's clothing","rating":{"rate":3.9,"count":120}},
			{"id":2,"title":"T-Shirt","price":22.3,"category":"men's clothing"}
		]`))
	}))

	products, err := client.AllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.Equal(t, 3.9, products[0].Rating.Rate)
}

func TestProductsByCategory_EscapesPath(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/men's%20clothing", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"title":"T-Shirt","price":22.3,"category":"men's clothing"}]`))
	}))

	products, err := client.ProductsByCategory(context.Background(), "men's clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "T-Shirt", products[0].Title)
}

func TestCategories(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["electronics","jewelery"]`))
	}))

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery"}, categories)
}

func TestAllProducts_UpstreamError(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.AllProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAllProducts_ContextCancelled(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.AllProducts(ctx)
	assert.Error(t, err)
}
