package services

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"dukkan/internal/models"
)

// Sayfa başına ürün sayısı.
const PageSize = 9

// Sıralama kipleri. SortNewest veri girişi sırasını korur.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
)

// CatalogQuery, vitrin listesinin filtre/sıralama/sayfa durumunu temsil eder.
// Durumun tamamı URL sorgu parametrelerine yazılır ve oradan geri okunur;
// bir bağlantı tek başına aynı listeyi yeniden kurar.
type CatalogQuery struct {
	Search       string
	CategorySlug string
	InStockOnly  bool
	Sort         string
	Page         int
}

// ParseCatalogQuery, sorgu parametrelerinden CatalogQuery kurar.
// Tanınmayan sıralama kipi SortNewest'e, bozuk sayfa numarası 1'e düşer.
func ParseCatalogQuery(values url.Values) CatalogQuery {
	q := CatalogQuery{
		Search:       values.Get("q"),
		CategorySlug: values.Get("cat"),
		InStockOnly:  values.Get("stock") == "1",
		Sort:         values.Get("sort"),
		Page:         1,
	}
	if q.CategorySlug == "all" {
		q.CategorySlug = ""
	}
	switch q.Sort {
	case SortPriceAsc, SortPriceDesc, SortNameAsc:
	default:
		q.Sort = SortNewest
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	return q
}

// Values, sorguyu URL parametrelerine yazar. Varsayılan değerler atlanır,
// böylece ParseCatalogQuery(q.Values()) etkin sorguyu birebir geri kurar.
func (q CatalogQuery) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.CategorySlug != "" {
		values.Set("cat", q.CategorySlug)
	}
	if q.InStockOnly {
		values.Set("stock", "1")
	}
	if q.Sort != "" && q.Sort != SortNewest {
		values.Set("sort", q.Sort)
	}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	return values
}

// CatalogPage, filtrelenmiş ve sayfalanmış vitrin sonucudur.
type CatalogPage struct {
	Products   []models.Product
	Total      int
	Page       int
	TotalPages int
	From       int
	To         int
}

// FilterProducts, vitrin filtresini uygular. Koşullar VE ile bağlanır:
// aktiflik, kategori eşleşmesi, ad+açıklama üzerinde harf duyarsız parça
// araması ve işaretliyse stok > 0. Bilinmeyen stok (nil) stokta yok sayılır.
func FilterProducts(products []models.Product, categories []models.Category, q CatalogQuery) []models.Product {
	catID := 0
	if q.CategorySlug != "" {
		for _, c := range categories {
			if strings.EqualFold(c.Slug, q.CategorySlug) {
				catID = c.ID
				break
			}
		}
	}
	query := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if catID != 0 && p.CategoryID != catID {
			continue
		}
		if query != "" {
			hay := strings.ToLower(p.Name + " " + p.Description)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		if q.InStockOnly && !p.InStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts, listeyi seçilen kipe göre kararlı sıralar.
// SortNewest giriş sırasını olduğu gibi bırakır.
func SortProducts(products []models.Product, mode string) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	}
}

// clamp, n'yi [min, max] aralığına sıkıştırır.
func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Paginate, sayfa numarasını [1, toplam sayfa] aralığına sıkıştırıp ilgili
// dilimi döndürür. Aralık dışı sayfa isteği sessizce boş sayfa üretmez.
func Paginate(products []models.Product, page int) CatalogPage {
	total := len(products)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	safePage := clamp(page, 1, totalPages)

	start := (safePage - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	result := CatalogPage{
		Products:   products[start:end],
		Total:      total,
		Page:       safePage,
		TotalPages: totalPages,
	}
	if total > 0 {
		result.From = start + 1
		result.To = end
	}
	return result
}

// BrowseCatalog, filtre + sıralama + sayfalamayı tek adımda uygular.
func BrowseCatalog(products []models.Product, categories []models.Category, q CatalogQuery) CatalogPage {
	filtered := FilterProducts(products, categories, q)
	SortProducts(filtered, q.Sort)
	return Paginate(filtered, q.Page)
}
