package models

import "time"

// Sipariş durumları. pending → paid → shipped → done doğrusal ilerler,
// canceled yan çıkıştır; geçiş tablosu zorlanmaz, admin her durumu her
// durumdan seçebilir (canceled dahil).
const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusShipped  = "shipped"
	OrderStatusDone     = "done"
	OrderStatusCanceled = "canceled"
)

// OrderStatuses, geçerli sipariş durumlarını sırayla döndürür.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDone,
	OrderStatusCanceled,
}

// ValidOrderStatus, verilen durumun tanınan bir durum olup olmadığını döndürür.
func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Customer, sipariş üzerindeki müşteri bilgilerini temsil eder.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Shipping, teslimat bilgilerini temsil eder.
type Shipping struct {
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// OrderItem, sipariş satırını temsil eder. Price, sipariş anındaki birim
// fiyat anlık görüntüsüdür; katalogdan tekrar okunmaz.
type OrderItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Qty       int    `json:"qty"`
	Price     int    `json:"price"`
}

// Order, admin panelinde yönetilen siparişi temsil eder.
// ID okunabilir bir sıra numarasıdır, örn. "SIP-1001".
type Order struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Customer  Customer    `json:"customer"`
	Shipping  Shipping    `json:"shipping"`
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
}

// Total, sipariş tutarını satırlardaki fiyat anlık görüntülerinden hesaplar.
func (o *Order) Total() int {
	sum := 0
	for _, it := range o.Items {
		sum += it.Qty * it.Price
	}
	return sum
}

// OrderForm, admin sipariş formu verilerini temsil eder.
type OrderForm struct {
	CustomerName string `form:"customerName" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Phone        string `form:"phone" binding:"required"`
	Address      string `form:"address" binding:"required"`
	Notes        string `form:"notes"`
	Status       string `form:"status"`
}

// CheckoutForm, ödeme sayfası formunu temsil eder. Gerçek ödeme yoktur;
// form doğrulanır, sepet boşaltılır.
type CheckoutForm struct {
	CustomerName string `form:"customerName" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Phone        string `form:"phone" binding:"required"`
	Address      string `form:"address" binding:"required"`
	Notes        string `form:"notes"`
}
