package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stockledger/internal/inventory"
)

func TestRenderProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []inventory.Product
	}{
		{
			name:     "table_empty",
			products: nil,
		},
		{
			name: "table_products",
			products: []inventory.Product{
				{ID: 1, Name: "Widget", Price: 9.99, Quantity: 7},
				{ID: 2, Name: "A very long product name that overflows", Price: 12.5, Quantity: -4},
				{ID: 3, Name: "Gadget", Price: 0, Quantity: 0},
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderProducts(&buf, tt.products))
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestProductsResultString(t *testing.T) {
	empty := ProductsResult{Query: "zzz", Products: []inventory.Product{}, search: true}
	require.Equal(t, "No product found with the name: zzz", empty.String())

	list := ProductsResult{Products: []inventory.Product{}}
	require.Equal(t, "ID        Name                Price     Quantity  \n"+
		"--------------------------------------------------", list.String())
}

func TestStockResultString(t *testing.T) {
	q := int64(7)
	require.Equal(t, "Stock updated for ID: 1 (quantity now 7)", StockResult{ID: 1, Quantity: &q}.String())
	require.Equal(t, "Stock updated for ID: 1", StockResult{ID: 1}.String())
}
