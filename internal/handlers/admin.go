package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dukkan/internal/database"
	"dukkan/internal/models"
	"dukkan/internal/services"
	"dukkan/internal/slug"

	"github.com/gin-gonic/gin"
)

// AdminDashboard, yönetim panosunu oluşturur: ciro trendi, durum sayıları
// ve katalog özetleri.
func (h *Handler) AdminDashboard(c *gin.Context) {
	orders, _ := h.db.GetAllOrders()
	products, _ := h.db.GetAllProducts()
	categories, _ := h.db.GetAllCategories()

	now := time.Now()
	series := services.RevenueSeries(orders, 14, now)
	seriesJSON, _ := json.Marshal(series)

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	data := h.baseData(c, "Yönetim Panosu")
	data["monthlyRevenue"] = services.MonthlyRevenue(orders, now)
	data["statusCounts"] = services.CountByStatus(orders)
	data["orderCount"] = len(orders)
	data["productCount"] = len(products)
	data["categoryCount"] = len(categories)
	data["series"] = series
	data["seriesJSON"] = string(seriesJSON)
	data["recentOrders"] = recent
	c.HTML(http.StatusOK, "admin_dashboard.html", data)
}

// --- Ürün yönetimi ---

// splitList, virgülle ayrılmış formu alan listesine çevirir.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// productFromForm, admin formunu Product'a çevirir. Slug boş bırakıldıysa
// addan türetilir. ColorImages alanı JSON'dur; bozuksa kayıt engellenir ve
// hata mesajı döner.
func productFromForm(form models.ProductForm) (*models.Product, error) {
	s := strings.TrimSpace(form.Slug)
	if s == "" {
		s = slug.Make(form.Name)
	} else {
		s = slug.Make(s)
	}
	if s == "" {
		return nil, fmt.Errorf("geçerli bir slug üretilemedi")
	}
	if form.Price < 0 {
		return nil, fmt.Errorf("fiyat negatif olamaz")
	}

	var stock *int
	if t := strings.TrimSpace(form.Stock); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("stok negatif olmayan bir sayı olmalı")
		}
		stock = &n
	}

	var colorImages map[string][]string
	if t := strings.TrimSpace(form.ColorImages); t != "" {
		if err := json.Unmarshal([]byte(t), &colorImages); err != nil {
			return nil, fmt.Errorf("renk görselleri alanı geçerli JSON olmalı")
		}
	}

	return &models.Product{
		CategoryID:      form.CategoryID,
		Name:            strings.TrimSpace(form.Name),
		Slug:            s,
		Price:           form.Price,
		Stock:           stock,
		Description:     form.Description,
		LongDescription: form.LongDescription,
		Image:           strings.TrimSpace(form.Image),
		Images:          splitList(form.Images),
		ColorImages:     colorImages,
		SizeChartImage:  strings.TrimSpace(form.SizeChartImage),
		Colors:          splitList(form.Colors),
		Sizes:           splitList(form.Sizes),
		IsActive:        form.IsActive,
	}, nil
}

// AdminProductsPage, admin ürün listesini oluşturur.
func (h *Handler) AdminProductsPage(c *gin.Context) {
	products, _ := h.db.GetAllProducts()
	categories, _ := h.db.GetAllCategories()

	// Ad/açıklama/slug üzerinde basit arama
	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			hay := strings.ToLower(p.Name + " " + p.Description + " " + p.Slug)
			if strings.Contains(hay, q) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	data := h.baseData(c, "Ürün Yönetimi")
	data["products"] = products
	data["categories"] = categories
	data["q"] = c.Query("q")
	data["error"] = c.Query("error")
	c.HTML(http.StatusOK, "admin_products.html", data)
}

// AddProduct, yeni ürünü kaydeder. Slug çakışması kaydı engeller.
func (h *Handler) AddProduct(c *gin.Context) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/products?error=Zorunlu+alanlar+eksik")
		return
	}

	product, err := productFromForm(form)
	if err != nil {
		h.redirectProductError(c, err)
		return
	}

	if err := h.db.CreateProduct(product); err != nil {
		log.Printf("AddProduct - oluşturulamadı: %v", err)
		h.redirectProductError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// UpdateProduct, mevcut ürünü günceller; değiştirilebilir alanlar formdan
// olduğu gibi yazılır, kimlik korunur.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/products?error=Zorunlu+alanlar+eksik")
		return
	}

	product, err := productFromForm(form)
	if err != nil {
		h.redirectProductError(c, err)
		return
	}
	product.ID = id

	if err := h.db.UpdateProduct(product); err != nil {
		log.Printf("UpdateProduct - güncellenemedi: %v", err)
		h.redirectProductError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

func (h *Handler) redirectProductError(c *gin.Context, err error) {
	msg := err.Error()
	if errors.Is(err, database.ErrSlugTaken) {
		msg = "Bu slug başka bir üründe kullanılıyor."
	}
	c.Redirect(http.StatusSeeOther, "/admin/products?error="+strings.ReplaceAll(msg, " ", "+"))
}

// DeleteProduct, ürünü siler.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "geçersiz ürün kimliği"})
		return
	}
	if err := h.db.DeleteProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ürün bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Kategori yönetimi ---

// AdminCategoriesPage, admin kategori listesini oluşturur.
func (h *Handler) AdminCategoriesPage(c *gin.Context) {
	categories, _ := h.db.GetAllCategories()

	data := h.baseData(c, "Kategori Yönetimi")
	data["categories"] = categories
	data["error"] = c.Query("error")
	c.HTML(http.StatusOK, "admin_categories.html", data)
}

func categoryFromForm(form models.CategoryForm) (*models.Category, error) {
	s := strings.TrimSpace(form.Slug)
	if s == "" {
		s = slug.Make(form.Name)
	} else {
		s = slug.Make(s)
	}
	name := strings.TrimSpace(form.Name)
	if len(name) < 2 {
		return nil, fmt.Errorf("kategori adı en az 2 karakter olmalı")
	}
	if len(s) < 2 {
		return nil, fmt.Errorf("slug en az 2 karakter olmalı")
	}
	return &models.Category{Name: name, Slug: s}, nil
}

// AddCategory, yeni kategoriyi kaydeder. Slug çakışması kaydı engeller.
func (h *Handler) AddCategory(c *gin.Context) {
	var form models.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/categories?error=Ad+gerekli")
		return
	}

	category, err := categoryFromForm(form)
	if err != nil {
		h.redirectCategoryError(c, err)
		return
	}

	if err := h.db.CreateCategory(category); err != nil {
		log.Printf("AddCategory - oluşturulamadı: %v", err)
		h.redirectCategoryError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/categories")
}

// UpdateCategory, mevcut kategoriyi günceller.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/categories")
		return
	}

	var form models.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/categories?error=Ad+gerekli")
		return
	}

	category, err := categoryFromForm(form)
	if err != nil {
		h.redirectCategoryError(c, err)
		return
	}
	category.ID = id

	if err := h.db.UpdateCategory(category); err != nil {
		log.Printf("UpdateCategory - güncellenemedi: %v", err)
		h.redirectCategoryError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/categories")
}

func (h *Handler) redirectCategoryError(c *gin.Context, err error) {
	msg := err.Error()
	if errors.Is(err, database.ErrSlugTaken) {
		msg = "Bu slug başka bir kategoride kullanılıyor."
	}
	c.Redirect(http.StatusSeeOther, "/admin/categories?error="+strings.ReplaceAll(msg, " ", "+"))
}

// DeleteCategory, kategoriyi siler.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "geçersiz kategori kimliği"})
		return
	}
	if err := h.db.DeleteCategory(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kategori bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Sipariş yönetimi ---

// AdminOrdersPage, siparişleri listeler; duruma ve aranan metne göre
// daraltılabilir.
func (h *Handler) AdminOrdersPage(c *gin.Context) {
	orders, _ := h.db.GetAllOrders()
	products, _ := h.db.GetAllProducts()

	status := c.Query("status")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if q != "" {
			hay := strings.ToLower(o.ID + " " + o.Customer.Name + " " + o.Customer.Email)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		filtered = append(filtered, o)
	}

	data := h.baseData(c, "Sipariş Yönetimi")
	data["orders"] = filtered
	data["products"] = products
	data["statuses"] = models.OrderStatuses
	data["status"] = status
	data["q"] = c.Query("q")
	data["error"] = c.Query("error")
	c.HTML(http.StatusOK, "admin_orders.html", data)
}

// AdminOrderDetail, tek siparişin detayını oluşturur.
func (h *Handler) AdminOrderDetail(c *gin.Context) {
	order, err := h.db.GetOrderByID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	data := h.baseData(c, "Sipariş "+order.ID)
	data["order"] = order
	data["statuses"] = models.OrderStatuses
	c.HTML(http.StatusOK, "admin_order_detail.html", data)
}

// AdminCreateOrder, admin formundan yeni sipariş oluşturur. Satır fiyatları
// ürünün o anki fiyatından anlık görüntü olarak alınır.
func (h *Handler) AdminCreateOrder(c *gin.Context) {
	var form models.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/orders?error=Zorunlu+alanlar+eksik")
		return
	}

	productIDs := c.PostFormArray("itemProductId")
	qtys := c.PostFormArray("itemQty")

	items := make([]models.OrderItem, 0, len(productIDs))
	for i, pidStr := range productIDs {
		pid, err := strconv.Atoi(pidStr)
		if err != nil || pid == 0 {
			continue
		}
		qty := 1
		if i < len(qtys) {
			if n, err := strconv.Atoi(qtys[i]); err == nil && n > 0 {
				qty = n
			}
		}
		product, err := h.db.GetProductByID(pid)
		if err != nil {
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: pid,
			Name:      product.Name,
			Qty:       qty,
			Price:     product.Price,
		})
	}
	if len(items) == 0 {
		c.Redirect(http.StatusSeeOther, "/admin/orders?error=En+az+bir+ürün+seçin")
		return
	}

	order := &models.Order{
		Customer: models.Customer{Name: form.CustomerName, Email: form.Email, Phone: form.Phone},
		Shipping: models.Shipping{Address: form.Address, Notes: form.Notes},
		Status:   form.Status,
		Items:    items,
	}
	if err := h.db.CreateOrder(order); err != nil {
		log.Printf("AdminCreateOrder - oluşturulamadı: %v", err)
		c.Redirect(http.StatusSeeOther, "/admin/orders?error=Sipariş+oluşturulamadı")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// AdminUpdateOrder, sipariş bilgilerini günceller; kimlik ve satırlar
// korunur, müşteri/teslimat/durum formdan yazılır.
func (h *Handler) AdminUpdateOrder(c *gin.Context) {
	order, err := h.db.GetOrderByID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	var form models.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/orders/"+order.ID+"?error=Zorunlu+alanlar+eksik")
		return
	}

	order.Customer = models.Customer{Name: form.CustomerName, Email: form.Email, Phone: form.Phone}
	order.Shipping = models.Shipping{Address: form.Address, Notes: form.Notes}
	if form.Status != "" {
		order.Status = form.Status
	}

	if err := h.db.UpdateOrder(order); err != nil {
		log.Printf("AdminUpdateOrder - güncellenemedi: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders/"+order.ID)
}

// AdminUpdateOrderStatus, sadece durumu değiştirir. Geçiş tablosu yoktur;
// her durum seçilebilir.
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.PostForm("status")
	if err := h.db.UpdateOrderStatus(id, status); err != nil {
		log.Printf("AdminUpdateOrderStatus - güncellenemedi: %v", err)
		c.Redirect(http.StatusSeeOther, "/admin/orders?error=Durum+güncellenemedi")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// AdminDeleteOrder, siparişi siler.
func (h *Handler) AdminDeleteOrder(c *gin.Context) {
	if err := h.db.DeleteOrder(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sipariş bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
