package services

import (
	"net/url"
	"testing"

	"dukkan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func catalogFixture() ([]models.Product, []models.Category) {
	products := []models.Product{
		{ID: 1, CategoryID: 1, Name: "Red Shirt", Stock: intPtr(5), Price: 300, IsActive: true},
		{ID: 2, CategoryID: 1, Name: "Blue Shirt", Stock: intPtr(5), Price: 200, IsActive: false},
		{ID: 3, CategoryID: 2, Name: "Red Mug", Stock: intPtr(0), Price: 100, IsActive: true},
	}
	categories := []models.Category{
		{ID: 1, Name: "Giyim", Slug: "giyim"},
		{ID: 2, Name: "Ev", Slug: "ev"},
	}
	return products, categories
}

func TestFilterConjunctive(t *testing.T) {
	products, categories := catalogFixture()

	got := FilterProducts(products, categories, CatalogQuery{
		Search:       "red",
		CategorySlug: "giyim",
		InStockOnly:  true,
	})

	// Pasif ürün, diğer kategori ve sıfır stok dışarıda kalır
	require.Len(t, got, 1)
	assert.Equal(t, "Red Shirt", got[0].Name)
}

func TestFilterUnknownStockExcludedWhenFlagged(t *testing.T) {
	products := []models.Product{
		{ID: 1, CategoryID: 1, Name: "Bilinmeyen Stok", Stock: nil, IsActive: true},
	}

	got := FilterProducts(products, nil, CatalogQuery{InStockOnly: true})
	assert.Empty(t, got)

	got = FilterProducts(products, nil, CatalogQuery{})
	assert.Len(t, got, 1)
}

func TestFilterSearchCaseInsensitiveOverNameAndDescription(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Masa Lambası", Description: "çalışma masası için", IsActive: true},
		{ID: 2, Name: "Kulaklık", Description: "temiz ses", IsActive: true},
	}

	got := FilterProducts(products, nil, CatalogQuery{Search: "LAMBA"})
	require.Len(t, got, 1)
	assert.Equal(t, "Masa Lambası", got[0].Name)

	// Açıklama da aramaya dahildir
	got = FilterProducts(products, nil, CatalogQuery{Search: "temiz"})
	require.Len(t, got, 1)
	assert.Equal(t, "Kulaklık", got[0].Name)

	got = FilterProducts(products, nil, CatalogQuery{Search: "yok böyle"})
	assert.Empty(t, got)
}

func TestSortModes(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "b", Price: 200, IsActive: true},
		{ID: 2, Name: "a", Price: 300, IsActive: true},
		{ID: 3, Name: "c", Price: 100, IsActive: true},
	}

	asc := append([]models.Product(nil), products...)
	SortProducts(asc, SortPriceAsc)
	assert.Equal(t, []int{3, 1, 2}, ids(asc))

	desc := append([]models.Product(nil), products...)
	SortProducts(desc, SortPriceDesc)
	assert.Equal(t, []int{2, 1, 3}, ids(desc))

	name := append([]models.Product(nil), products...)
	SortProducts(name, SortNameAsc)
	assert.Equal(t, []int{2, 1, 3}, ids(name))

	// newest giriş sırasını korur
	newest := append([]models.Product(nil), products...)
	SortProducts(newest, SortNewest)
	assert.Equal(t, []int{1, 2, 3}, ids(newest))
}

func TestSortStable(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "x", Price: 100, IsActive: true},
		{ID: 2, Name: "y", Price: 100, IsActive: true},
		{ID: 3, Name: "z", Price: 100, IsActive: true},
	}
	SortProducts(products, SortPriceAsc)
	assert.Equal(t, []int{1, 2, 3}, ids(products))
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func makeProducts(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{ID: i + 1, Name: "p", IsActive: true}
	}
	return out
}

func TestPaginateClampsLow(t *testing.T) {
	page := Paginate(makeProducts(20), 0)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Products, PageSize)
	assert.Equal(t, 1, page.From)
	assert.Equal(t, 9, page.To)
}

func TestPaginateClampsHigh(t *testing.T) {
	page := Paginate(makeProducts(20), 99)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	// Son sayfa boş dönmez
	assert.Len(t, page.Products, 2)
	assert.Equal(t, 19, page.From)
	assert.Equal(t, 20, page.To)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate(nil, 5)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.From)
	assert.Equal(t, 0, page.To)
}

func TestQueryRoundTrip(t *testing.T) {
	queries := []CatalogQuery{
		{Sort: SortNewest, Page: 1},
		{Search: "kulaklık", CategorySlug: "elektronik", InStockOnly: true, Sort: SortPriceDesc, Page: 3},
		{CategorySlug: "moda", Sort: SortNameAsc, Page: 1},
		{Search: "lamba", Sort: SortNewest, Page: 2},
	}

	for _, q := range queries {
		got := ParseCatalogQuery(q.Values())
		assert.Equal(t, q, got, "round-trip bozuldu: %+v", q)
	}
}

func TestParseQueryDefaults(t *testing.T) {
	q := ParseCatalogQuery(url.Values{})
	assert.Equal(t, CatalogQuery{Sort: SortNewest, Page: 1}, q)

	// Tanınmayan sıralama ve bozuk sayfa varsayılana düşer
	q = ParseCatalogQuery(url.Values{"sort": {"banana"}, "page": {"-3"}, "cat": {"all"}})
	assert.Equal(t, CatalogQuery{Sort: SortNewest, Page: 1}, q)
}
