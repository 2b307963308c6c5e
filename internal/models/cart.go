package models

import (
	"fmt"
	"net/url"
	"time"
)

// Cart, bir oturuma ait sepeti temsil eder.
// TotalItems ve TotalPrice türetilmiş alanlardır; diskten okunan değerlere
// asla güvenilmez, her yüklemede Items üzerinden yeniden hesaplanır.
type Cart struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice int        `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem, sepetteki bir satırı temsil eder.
// Key, ürün + seçilen varyantın (renk, beden) birleşik anahtarıdır ve satır
// yaşadığı sürece değişmez; miktar değişikliği anahtarı etkilemez.
// Price, ürünün sepete eklendiği andaki birim fiyatıdır; katalogdaki sonraki
// fiyat değişiklikleri bu satırı etkilemez.
type CartItem struct {
	Key       string `json:"key"`
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Image     string `json:"image,omitempty"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Price     int    `json:"price"` // birim fiyat, ekleme anındaki
	Qty       int    `json:"qty"`
}

// LineTotal, satırın toplam tutarını döndürür.
func (it *CartItem) LineTotal() int {
	return it.Qty * it.Price
}

// CartItemKey, ürün + varyant seçiminden satır anahtarını üretir.
// Seçilmemiş renk/beden boş dizeye normalize edilir; alanlar URL kaçışından
// geçirildiği için ayırıcı "::" alan içinde görünemez ve örneğin
// (renk="A::B") ile (renk="A", beden="B") çakışamaz.
func CartItemKey(productID int, color, size string) string {
	return fmt.Sprintf("%d::%s::%s", productID, url.QueryEscape(color), url.QueryEscape(size))
}

// Recompute, türetilmiş toplamları satırlardan yeniden hesaplar.
// Her değişiklikte ve her yüklemede çağrılır; kalıcı toplamlara güvenilmez.
func (c *Cart) Recompute() {
	totalItems := 0
	totalPrice := 0
	for _, it := range c.Items {
		totalItems += it.Qty
		totalPrice += it.Qty * it.Price
	}
	c.TotalItems = totalItems
	c.TotalPrice = totalPrice
}
