package database

import "dukkan/internal/models"

// DBInterface, veritabanı işlemlerini tanımlar. Servisler ve handler'lar
// somut JSONDatabase yerine bu arayüze bağlanır; testlerde bellek içi
// store ile aynı uygulama kullanılır.
type DBInterface interface {
	// Ürünler
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id int) (*models.Product, error)
	GetProductBySlug(slug string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id int) error
	// Kategoriler
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(id int) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(id int) error
	// Siparişler
	GetAllOrders() ([]models.Order, error)
	GetOrderByID(id string) (*models.Order, error)
	CreateOrder(order *models.Order) error
	UpdateOrder(order *models.Order) error
	UpdateOrderStatus(id string, status string) error
	DeleteOrder(id string) error
	// Sepetler
	GetCartBySessionID(sessionID string) (*models.Cart, error)
	SaveCart(cart *models.Cart) error
	DeleteCart(sessionID string) error
	// Oturum açmış kullanıcı
	CurrentUser() *models.User
	SetCurrentUser(user *models.User) error
}
