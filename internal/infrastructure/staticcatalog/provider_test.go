package staticcatalog

import (
	"context"
	"testing"

	"github.com/stylecart/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_AlwaysEnabled(t *testing.T) {
	provider := NewProvider()

	assert.Equal(t, "static", provider.Name())
	assert.True(t, provider.Enabled())
}

func TestSearch_EmptyFiltersReturnListing(t *testing.T) {
	provider := NewProvider()

	products, err := provider.Search(context.Background(), domain.ParsedFilters{}, 20)

	require.NoError(t, err)
	assert.Len(t, products, 10)
	assert.Equal(t, "static:1", products[0].ID)
	assert.Equal(t, "static", products[0].Vendor())
}

func TestSearch_FiltersByType(t *testing.T) {
	provider := NewProvider()

	products, err := provider.Search(context.Background(), domain.ParsedFilters{ProductType: "jeans"}, 20)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "static:3", products[0].ID)
	assert.Equal(t, "static:9", products[1].ID)
}

func TestSearch_FiltersByPriceCeiling(t *testing.T) {
	provider := NewProvider()

	products, err := provider.Search(context.Background(), domain.ParsedFilters{MaxPrice: 600}, 20)

	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.LessOrEqual(t, p.Price, 600.0)
	}
}

func TestSearch_FiltersByColorAndType(t *testing.T) {
	provider := NewProvider()
	filters := domain.ParsedFilters{Color: "red", ProductType: "t-shirt"}

	products, err := provider.Search(context.Background(), filters, 20)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Red Graphic Tee", products[0].Title)
}

func TestSearch_TruncatesToLimit(t *testing.T) {
	provider := NewProvider()

	products, err := provider.Search(context.Background(), domain.ParsedFilters{}, 3)

	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestSearch_CustomProducts(t *testing.T) {
	provider := NewProviderWithProducts([]domain.Product{
		{ID: "static:100", Title: "Test Jacket", Price: 100},
	})

	products, err := provider.Search(context.Background(), domain.ParsedFilters{Text: "jacket"}, 20)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "static:100", products[0].ID)
}
