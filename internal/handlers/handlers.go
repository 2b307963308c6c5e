package handlers

import (
	"log"
	"net/http"

	"dukkan/internal/database"
	"dukkan/internal/models"
	"dukkan/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler, HTTP isteklerini yönetir.
type Handler struct {
	db          database.DBInterface
	cartService *services.CartService
	authService *services.AuthService
}

// NewHandler, yeni bir Handler örneği oluşturur.
func NewHandler(db database.DBInterface) *Handler {
	return &Handler{
		db:          db,
		cartService: services.NewCartService(db),
		authService: services.NewAuthService(db),
	}
}

// sessionID, sepet oturum çerezini döndürür; yoksa oluşturur.
func (h *Handler) sessionID(c *gin.Context) string {
	sid, err := c.Cookie("cart_session")
	if err != nil || sid == "" {
		sid = uuid.New().String()
		c.SetCookie("cart_session", sid, 30*24*3600, "/", "", false, true)
	}
	return sid
}

// baseData, her sayfanın ortak template verilerini kurar.
func (h *Handler) baseData(c *gin.Context, title string) gin.H {
	user := h.authService.CurrentUser()
	return gin.H{
		"title":      title,
		"user":       user,
		"isLoggedIn": user != nil,
		"isAdmin":    user.IsAdmin(),
		"cartCount":  h.cartService.Count(h.sessionID(c)),
	}
}

// RequireAdmin, admin sayfalarını rol bayrağıyla kapatır. Bu istemci
// tarafı bir kolaylıktır, güvenlik sınırı DEĞİLDİR: gerçek bir backend
// bağlanınca yetki kontrolü sunucu tarafında ayrıca yapılmalıdır.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := h.authService.CurrentUser()
		if user == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// HomePage, vitrin ana sayfasını oluşturur.
func (h *Handler) HomePage(c *gin.Context) {
	products, err := h.db.GetAllProducts()
	if err != nil {
		log.Printf("HomePage - ürünler alınamadı: %v", err)
		products = []models.Product{}
	}
	categories, _ := h.db.GetAllCategories()

	featured := make([]models.Product, 0, 6)
	for _, p := range products {
		if p.IsActive {
			featured = append(featured, p)
		}
		if len(featured) == 6 {
			break
		}
	}

	data := h.baseData(c, "Dükkan")
	data["products"] = featured
	data["categories"] = categories
	c.HTML(http.StatusOK, "home.html", data)
}

// ProductsPage, filtre/sıralama/sayfa durumu URL'den okunan ürün
// listesini oluşturur. Aynı URL her zaman aynı listeyi kurar.
func (h *Handler) ProductsPage(c *gin.Context) {
	products, err := h.db.GetAllProducts()
	if err != nil {
		log.Printf("ProductsPage - ürünler alınamadı: %v", err)
		products = []models.Product{}
	}
	categories, _ := h.db.GetAllCategories()

	query := services.ParseCatalogQuery(c.Request.URL.Query())
	page := services.BrowseCatalog(products, categories, query)

	data := h.baseData(c, "Ürünler")
	data["page"] = page
	data["query"] = query
	data["categories"] = categories
	data["queryString"] = query.Values().Encode()

	// Sayfa bağlantıları için sayfa numarasız temel sorgu
	base := query
	base.Page = 1
	data["queryBase"] = base.Values().Encode()
	c.HTML(http.StatusOK, "products.html", data)
}

// CategoryPage, tek kategorinin ürünlerini listeler.
func (h *Handler) CategoryPage(c *gin.Context) {
	category, err := h.db.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	products, _ := h.db.GetAllProducts()
	categories, _ := h.db.GetAllCategories()

	query := services.ParseCatalogQuery(c.Request.URL.Query())
	query.CategorySlug = category.Slug
	page := services.BrowseCatalog(products, categories, query)

	data := h.baseData(c, category.Name)
	data["category"] = category
	data["page"] = page
	data["query"] = query
	c.HTML(http.StatusOK, "category.html", data)
}

// ProductDetailPage, ürün detay sayfasını oluşturur.
func (h *Handler) ProductDetailPage(c *gin.Context) {
	product, err := h.db.GetProductBySlug(c.Param("slug"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	if !product.IsActive {
		// Pasif ürün vitrinde görünmez
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	category, _ := h.db.GetCategoryByID(product.CategoryID)

	data := h.baseData(c, product.Name)
	data["product"] = product
	data["category"] = category
	data["error"] = c.Query("error")
	data["added"] = c.Query("added") == "1"
	c.HTML(http.StatusOK, "product_detail.html", data)
}
