package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"dukkan/internal/models"
	"dukkan/internal/slug"
	"dukkan/internal/storage"
)

// Kalıcı anlık görüntü anahtarları. Her anahtar ayrı bir JSON bloğudur.
const (
	KeyProducts   = "admin-products-v1"
	KeyCategories = "admin-categories-v1"
	KeyOrders     = "admin-orders-v1"
	KeyCarts      = "ecommerce-cart-v1"
	KeyAuth       = "ecommerce-auth-v1"
)

// ErrSlugTaken, aynı türden başka bir kayıt slug'ı kullanırken kaydetmeye
// çalışınca döner. Sessiz üzerine yazma yoktur.
var ErrSlugTaken = errors.New("bu slug zaten kullanımda")

// cartSnapshot, ecommerce-cart-v1 anahtarının sarmalayıcısıdır.
type cartSnapshot struct {
	Carts []models.Cart `json:"carts"`
}

// authSnapshot, ecommerce-auth-v1 anahtarının sarmalayıcısıdır.
// User nil ise oturum açılmamıştır.
type authSnapshot struct {
	User *models.User `json:"user"`
}

// JSONDatabase, tüm veriyi bellekte tutar ve her değişiklikte ilgili anlık
// görüntüyü storage.Store üzerinden yeniden yazar. Başlangıçta bir kez
// yüklenir; okunamayan anahtarlar varsayılan tohum verisine düşer.
type JSONDatabase struct {
	mu         sync.RWMutex
	store      storage.Store
	products   []models.Product
	categories []models.Category
	orders     []models.Order
	carts      []models.Cart
	user       *models.User
}

// NewDatabase, anlık görüntüleri yükleyip bir JSONDatabase oluşturur.
func NewDatabase(store storage.Store) (*JSONDatabase, error) {
	db := &JSONDatabase{store: store}
	db.loadData()
	return db, nil
}

// loadData, beş anahtarı tek tek yükler. Eksik veya bozuk anahtar hata
// değildir: katalog tohum veriye, gerisi boşa düşer.
func (db *JSONDatabase) loadData() {
	if err := db.store.Load(KeyProducts, &db.products); err != nil {
		log.Printf("JSONDatabase - %s yüklenemedi, tohum veri kullanılıyor: %v", KeyProducts, err)
		db.products = SeedProducts()
		db.persist(KeyProducts, db.products)
	}
	if err := db.store.Load(KeyCategories, &db.categories); err != nil {
		log.Printf("JSONDatabase - %s yüklenemedi, tohum veri kullanılıyor: %v", KeyCategories, err)
		db.categories = SeedCategories()
		db.persist(KeyCategories, db.categories)
	}
	if err := db.store.Load(KeyOrders, &db.orders); err != nil {
		log.Printf("JSONDatabase - %s yüklenemedi, tohum veri kullanılıyor: %v", KeyOrders, err)
		db.orders = SeedOrders()
		db.persist(KeyOrders, db.orders)
	}

	var cs cartSnapshot
	if err := db.store.Load(KeyCarts, &cs); err != nil {
		db.carts = []models.Cart{}
	} else {
		db.carts = make([]models.Cart, 0, len(cs.Carts))
		for _, c := range cs.Carts {
			db.carts = append(db.carts, sanitizeCart(c))
		}
	}

	var as authSnapshot
	if err := db.store.Load(KeyAuth, &as); err != nil {
		db.user = nil
	} else {
		db.user = as.User
	}
}

// sanitizeCart, diskten gelen sepeti temizler: anahtarı ve ürün kimliği
// olmayan eski/bozuk satırlar atılır, eksik anahtarlar alanlardan yeniden
// kurulur, miktarlar 1'e taban sabitlenir ve toplamlar satırlardan yeniden
// hesaplanır. Diskteki toplam alanına güvenilmez.
func sanitizeCart(c models.Cart) models.Cart {
	items := make([]models.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Key == "" && it.ProductID == 0 {
			log.Printf("sanitizeCart - bozuk sepet satırı atlandı (session=%s)", c.SessionID)
			continue
		}
		if it.Key == "" {
			it.Key = models.CartItemKey(it.ProductID, it.Color, it.Size)
		}
		if it.Qty < 1 {
			it.Qty = 1
		}
		items = append(items, it)
	}
	c.Items = items
	c.Recompute()
	return c
}

func (db *JSONDatabase) persist(key string, v interface{}) {
	if err := db.store.Save(key, v); err != nil {
		log.Printf("JSONDatabase - %s kaydedilemedi: %v", key, err)
	}
}

// --- Ürünler ---

// GetAllProducts, tüm ürünlerin kopyasını döndürür.
func (db *JSONDatabase) GetAllProducts() ([]models.Product, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	products := make([]models.Product, len(db.products))
	copy(products, db.products)
	return products, nil
}

// GetProductByID, verilen kimlikteki ürünü döndürür.
func (db *JSONDatabase) GetProductByID(id int) (*models.Product, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, p := range db.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, os.ErrNotExist
}

// GetProductBySlug, verilen slug'a sahip ürünü döndürür.
func (db *JSONDatabase) GetProductBySlug(s string) (*models.Product, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, p := range db.products {
		if slug.Equal(p.Slug, s) {
			return &p, nil
		}
	}
	return nil, os.ErrNotExist
}

// productSlugTaken, slug'ın excludeID dışındaki bir ürün tarafından
// kullanılıp kullanılmadığını kontrol eder. Karşılaştırma harf duyarsızdır.
func (db *JSONDatabase) productSlugTaken(s string, excludeID int) bool {
	for _, p := range db.products {
		if p.ID != excludeID && slug.Equal(p.Slug, s) {
			return true
		}
	}
	return false
}

// CreateProduct, yeni ürün oluşturur. Slug çakışırsa ErrSlugTaken döner.
func (db *JSONDatabase) CreateProduct(product *models.Product) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.productSlugTaken(product.Slug, 0) {
		return ErrSlugTaken
	}

	maxID := 0
	for _, p := range db.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	db.products = append(db.products, *product)
	db.persist(KeyProducts, db.products)
	return nil
}

// UpdateProduct, mevcut ürünü tamamen değiştirir; kimlik korunur.
func (db *JSONDatabase) UpdateProduct(product *models.Product) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.productSlugTaken(product.Slug, product.ID) {
		return ErrSlugTaken
	}

	for i, p := range db.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now()
			db.products[i] = *product
			db.persist(KeyProducts, db.products)
			return nil
		}
	}
	return os.ErrNotExist
}

// DeleteProduct, verilen kimlikteki ürünü siler.
func (db *JSONDatabase) DeleteProduct(id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.products {
		if p.ID == id {
			db.products = append(db.products[:i], db.products[i+1:]...)
			db.persist(KeyProducts, db.products)
			return nil
		}
	}
	return os.ErrNotExist
}

// --- Kategoriler ---

// GetAllCategories, tüm kategorilerin kopyasını döndürür.
func (db *JSONDatabase) GetAllCategories() ([]models.Category, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	categories := make([]models.Category, len(db.categories))
	copy(categories, db.categories)
	return categories, nil
}

// GetCategoryByID, verilen kimlikteki kategoriyi döndürür.
func (db *JSONDatabase) GetCategoryByID(id int) (*models.Category, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, c := range db.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, os.ErrNotExist
}

// GetCategoryBySlug, verilen slug'a sahip kategoriyi döndürür.
func (db *JSONDatabase) GetCategoryBySlug(s string) (*models.Category, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, c := range db.categories {
		if slug.Equal(c.Slug, s) {
			return &c, nil
		}
	}
	return nil, os.ErrNotExist
}

func (db *JSONDatabase) categorySlugTaken(s string, excludeID int) bool {
	for _, c := range db.categories {
		if c.ID != excludeID && slug.Equal(c.Slug, s) {
			return true
		}
	}
	return false
}

// CreateCategory, yeni kategori oluşturur. Slug çakışırsa ErrSlugTaken döner.
func (db *JSONDatabase) CreateCategory(category *models.Category) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.categorySlugTaken(category.Slug, 0) {
		return ErrSlugTaken
	}

	maxID := 0
	for _, c := range db.categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	category.ID = maxID + 1
	db.categories = append(db.categories, *category)
	db.persist(KeyCategories, db.categories)
	return nil
}

// UpdateCategory, mevcut kategoriyi değiştirir; kimlik korunur.
func (db *JSONDatabase) UpdateCategory(category *models.Category) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.categorySlugTaken(category.Slug, category.ID) {
		return ErrSlugTaken
	}

	for i, c := range db.categories {
		if c.ID == category.ID {
			db.categories[i] = *category
			db.persist(KeyCategories, db.categories)
			return nil
		}
	}
	return os.ErrNotExist
}

// DeleteCategory, verilen kimlikteki kategoriyi siler.
func (db *JSONDatabase) DeleteCategory(id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, c := range db.categories {
		if c.ID == id {
			db.categories = append(db.categories[:i], db.categories[i+1:]...)
			db.persist(KeyCategories, db.categories)
			return nil
		}
	}
	return os.ErrNotExist
}

// --- Siparişler ---

// GetAllOrders, siparişleri en yeniden eskiye sıralı döndürür.
func (db *JSONDatabase) GetAllOrders() ([]models.Order, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	orders := make([]models.Order, len(db.orders))
	copy(orders, db.orders)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// GetOrderByID, verilen numaradaki siparişi döndürür.
func (db *JSONDatabase) GetOrderByID(id string) (*models.Order, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, o := range db.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, os.ErrNotExist
}

// nextOrderID, "SIP-1001" biçiminde bir sonraki sıra numarasını üretir.
func (db *JSONDatabase) nextOrderID() string {
	max := 1000
	for _, o := range db.orders {
		s := strings.TrimPrefix(o.ID, "SIP-")
		if n, err := strconv.Atoi(s); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("SIP-%d", max+1)
}

// CreateOrder, yeni sipariş oluşturur ve sıra numarası atar.
func (db *JSONDatabase) CreateOrder(order *models.Order) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	order.ID = db.nextOrderID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	db.orders = append(db.orders, *order)
	db.persist(KeyOrders, db.orders)
	return nil
}

// UpdateOrder, mevcut siparişi tamamen değiştirir; numara ve oluşturulma
// zamanı korunur.
func (db *JSONDatabase) UpdateOrder(order *models.Order) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, o := range db.orders {
		if o.ID == order.ID {
			order.CreatedAt = o.CreatedAt
			order.UpdatedAt = time.Now()
			db.orders[i] = *order
			db.persist(KeyOrders, db.orders)
			return nil
		}
	}
	return os.ErrNotExist
}

// UpdateOrderStatus, sipariş durumunu günceller. Geçiş tablosu yoktur:
// her durum her durumdan seçilebilir, canceled'dan geri dönüş dahil.
func (db *JSONDatabase) UpdateOrderStatus(id string, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("geçersiz sipariş durumu: %s", status)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, o := range db.orders {
		if o.ID == id {
			db.orders[i].Status = status
			db.orders[i].UpdatedAt = time.Now()
			db.persist(KeyOrders, db.orders)
			return nil
		}
	}
	return os.ErrNotExist
}

// DeleteOrder, verilen numaradaki siparişi siler.
func (db *JSONDatabase) DeleteOrder(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, o := range db.orders {
		if o.ID == id {
			db.orders = append(db.orders[:i], db.orders[i+1:]...)
			db.persist(KeyOrders, db.orders)
			return nil
		}
	}
	return os.ErrNotExist
}

// --- Sepetler ---

// GetCartBySessionID, oturuma ait sepeti döndürür.
func (db *JSONDatabase) GetCartBySessionID(sessionID string) (*models.Cart, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, c := range db.carts {
		if c.SessionID == sessionID {
			cart := c
			cart.Items = make([]models.CartItem, len(c.Items))
			copy(cart.Items, c.Items)
			return &cart, nil
		}
	}
	return nil, os.ErrNotExist
}

// SaveCart, sepeti ekler veya günceller ve anlık görüntüyü yeniden yazar.
func (db *JSONDatabase) SaveCart(cart *models.Cart) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cart.UpdatedAt = time.Now()
	for i, c := range db.carts {
		if c.SessionID == cart.SessionID {
			db.carts[i] = *cart
			db.persist(KeyCarts, cartSnapshot{Carts: db.carts})
			return nil
		}
	}
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = time.Now()
	}
	db.carts = append(db.carts, *cart)
	db.persist(KeyCarts, cartSnapshot{Carts: db.carts})
	return nil
}

// DeleteCart, oturuma ait sepeti siler.
func (db *JSONDatabase) DeleteCart(sessionID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, c := range db.carts {
		if c.SessionID == sessionID {
			db.carts = append(db.carts[:i], db.carts[i+1:]...)
			db.persist(KeyCarts, cartSnapshot{Carts: db.carts})
			return nil
		}
	}
	return os.ErrNotExist
}

// --- Oturum açmış kullanıcı ---

// CurrentUser, kayıtlı kullanıcıyı döndürür; oturum yoksa nil.
func (db *JSONDatabase) CurrentUser() *models.User {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.user == nil {
		return nil
	}
	u := *db.user
	return &u
}

// SetCurrentUser, kullanıcı kaydını değiştirir; nil oturumu kapatır.
func (db *JSONDatabase) SetCurrentUser(user *models.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.user = user
	db.persist(KeyAuth, authSnapshot{User: user})
	return nil
}
