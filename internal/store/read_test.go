package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stockledger/internal/inventory"
)

func TestList_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	products, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products, "empty result must be an empty slice, not nil")
	assert.Empty(t, products)
}

func TestList_OrderedByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	a := mustAdd(t, s, "Zeta", 1, 1)
	b := mustAdd(t, s, "Alpha", 2, 2)
	c := mustAdd(t, s, "Mid", 3, 3)

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{a, b, c}, productIDs(products))
}

func TestList_Restartable(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustAdd(t, s, "Widget", 1, 1)
	mustAdd(t, s, "Gadget", 2, 2)

	first, err := s.List(ctx)
	require.NoError(t, err)
	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestList_ClosedStoreFails(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatement)
}

func TestSearch_NoMatches(t *testing.T) {
	s := createTestStore(t)

	mustAdd(t, s, "Widget", 1, 1)

	products, err := s.Search(context.Background(), "sprocket")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_SubsetOfList(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Widget", "Gadget", "Widget Pro", "gizmo", "Blue Widget", "Bolt"} {
		mustAdd(t, s, name, 1, 1)
	}

	all, err := s.List(ctx)
	require.NoError(t, err)

	// Lowercase terms so the expectation matches LIKE's ASCII case folding.
	for _, term := range []string{"idg", "widget", "g", "bolt", "o", "xyz", " "} {
		t.Run(term, func(t *testing.T) {
			var want []int64
			for _, p := range all {
				if strings.Contains(strings.ToLower(p.Name), term) {
					want = append(want, p.ID)
				}
			}
			if want == nil {
				want = []int64{}
			}

			got, err := s.Search(ctx, term)
			require.NoError(t, err)
			assert.Equal(t, want, productIDs(got))
		})
	}
}

func TestSearch_CaseInsensitiveASCII(t *testing.T) {
	s := createTestStore(t)

	id := mustAdd(t, s, "Widget", 1, 1)

	products, err := s.Search(context.Background(), "WIDGET")
	require.NoError(t, err)
	assert.Equal(t, []int64{id}, productIDs(products))
}

func TestSearch_EmptyTermMatchesAll(t *testing.T) {
	s := createTestStore(t)

	mustAdd(t, s, "Widget", 1, 1)
	mustAdd(t, s, "Gadget", 1, 1)

	products, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestSearch_WildcardsAreNotEscaped(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustAdd(t, s, "Widget", 1, 1)
	mustAdd(t, s, "50% off", 1, 1)

	// '_' matches any single character, '%' any run.
	products, err := s.Search(ctx, "W_dget")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	products, err = s.Search(ctx, "%")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestSearchLiteral_EscapesWildcards(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustAdd(t, s, "Widget", 1, 1)
	pct := mustAdd(t, s, "50% off", 1, 1)
	under := mustAdd(t, s, "snake_case", 1, 1)
	slash := mustAdd(t, s, `back\slash`, 1, 1)

	tests := []struct {
		term string
		want []int64
	}{
		{"%", []int64{pct}},
		{"W_dget", []int64{}},
		{"_", []int64{under}},
		{`\`, []int64{slash}},
		{"idg", []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			products, err := s.SearchLiteral(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(products))
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Get(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
