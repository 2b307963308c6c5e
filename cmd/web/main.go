package main

import (
	"html/template"
	"log"
	"os"

	"dukkan/internal/database"
	"dukkan/internal/handlers"
	"dukkan/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env varsa yükle; yoksa ortam değişkenleriyle devam
	if err := godotenv.Load(); err != nil {
		log.Printf(".env bulunamadı, ortam değişkenleri kullanılacak")
	}

	gin.SetMode(gin.ReleaseMode)

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("Veri dizini açılamadı: %v", err)
	}

	db, err := database.NewDatabase(store)
	if err != nil {
		log.Fatalf("Veritabanı başlatılamadı: %v", err)
	}

	h := handlers.NewHandler(db)

	// Engine'i manuel olarak oluştur
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Her sayfa için ayrı template setleri oluştur
	templates := map[string]*template.Template{}

	templateFiles := map[string][]string{
		"home.html":               {"templates/home.html", "templates/base.html"},
		"products.html":           {"templates/products.html", "templates/base.html"},
		"category.html":           {"templates/category.html", "templates/base.html"},
		"product_detail.html":     {"templates/product_detail.html", "templates/base.html"},
		"cart.html":               {"templates/cart.html", "templates/base.html"},
		"checkout.html":           {"templates/checkout.html", "templates/base.html"},
		"order_success.html":      {"templates/order_success.html", "templates/base.html"},
		"login.html":              {"templates/login.html", "templates/base.html"},
		"register.html":           {"templates/register.html", "templates/base.html"},
		"admin_dashboard.html":    {"templates/admin_dashboard.html", "templates/base.html"},
		"admin_products.html":     {"templates/admin_products.html", "templates/base.html"},
		"admin_categories.html":   {"templates/admin_categories.html", "templates/base.html"},
		"admin_orders.html":       {"templates/admin_orders.html", "templates/base.html"},
		"admin_order_detail.html": {"templates/admin_order_detail.html", "templates/base.html"},
	}

	for name, files := range templateFiles {
		tmpl, err := template.New(name).Funcs(handlers.TemplateFuncs).ParseFiles(files...)
		if err != nil {
			log.Fatalf("Template yüklenemedi %s: %v", name, err)
		}
		templates[name] = tmpl
	}

	r.HTMLRender = &handlers.HTMLRenderer{
		Templates: templates,
	}

	// Static dosyaları serve et
	r.Static("/static", "./static")
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.File("./static/favicon.ico")
	})

	// Vitrin rotaları
	r.GET("/", h.HomePage)
	r.GET("/products", h.ProductsPage)
	r.GET("/products/:slug", h.ProductDetailPage)
	r.GET("/category/:slug", h.CategoryPage)

	// Sepet rotaları
	r.GET("/cart", h.CartPage)
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCartItem)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.POST("/cart/clear", h.ClearCart)
	r.GET("/cart/count", h.GetCartCount)
	r.GET("/checkout", h.CheckoutPage)
	r.POST("/checkout", h.HandleCheckout)
	r.GET("/order-success", h.OrderSuccessPage)

	// Kimlik rotaları (sahte giriş/kayıt)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.HandleLogin)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.HandleRegister)
	r.GET("/logout", h.Logout)

	// Admin paneli rotaları (rol bayrağıyla korumalı)
	admin := r.Group("/admin")
	admin.Use(h.RequireAdmin())
	{
		admin.GET("", h.AdminDashboard)
		// Ürün yönetimi
		admin.GET("/products", h.AdminProductsPage)
		admin.POST("/products", h.AddProduct)
		admin.POST("/products/update", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		// Kategori yönetimi
		admin.GET("/categories", h.AdminCategoriesPage)
		admin.POST("/categories", h.AddCategory)
		admin.POST("/categories/update", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)
		// Sipariş yönetimi
		admin.GET("/orders", h.AdminOrdersPage)
		admin.POST("/orders", h.AdminCreateOrder)
		admin.GET("/orders/:id", h.AdminOrderDetail)
		admin.POST("/orders/:id", h.AdminUpdateOrder)
		admin.POST("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.DELETE("/orders/:id", h.AdminDeleteOrder)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	log.Printf("🌐 HTTP Server başlatılıyor (port: %s)...", port)
	log.Printf("📱 Erişim için: http://localhost:%s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("HTTP Server başlatılamadı: %v", err)
	}
}
