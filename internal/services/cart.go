package services

import (
	"log"
	"time"

	"dukkan/internal/database"
	"dukkan/internal/models"
)

// CartService, sepet işlemlerini yönetir. Satır kimliği ürün + seçilen
// varyanttır: aynı ürün aynı renk/beden ile tekrar eklenirse miktarlar
// birleşir, farklı seçimle eklenirse ayrı satır açılır.
type CartService struct {
	db database.DBInterface
}

// NewCartService, yeni bir CartService örneği oluşturur.
func NewCartService(db database.DBInterface) *CartService {
	return &CartService{db: db}
}

// GetCart, oturuma ait sepeti döndürür; yoksa boş sepet oluşturur.
func (cs *CartService) GetCart(sessionID string) *models.Cart {
	cart, err := cs.db.GetCartBySessionID(sessionID)
	if err != nil {
		cart = &models.Cart{
			SessionID: sessionID,
			Items:     []models.CartItem{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := cs.db.SaveCart(cart); err != nil {
			log.Printf("CartService.GetCart - sepet oluşturulamadı: %v", err)
		}
	}
	return cart
}

// Add, ürünü seçilen varyantla sepete ekler. Miktar 1'e taban sabitlenir.
// Aynı anahtarlı satır varsa miktarı artar; yoksa ürünün adı, o anki
// fiyatı, görseli ve slug'ı anlık görüntü olarak alınıp yeni satır açılır.
func (cs *CartService) Add(sessionID string, product *models.Product, qty int, color, size string) error {
	if qty < 1 {
		qty = 1
	}

	cart := cs.GetCart(sessionID)
	key := models.CartItemKey(product.ID, color, size)

	for i := range cart.Items {
		if cart.Items[i].Key == key {
			cart.Items[i].Qty += qty
			cart.Recompute()
			log.Printf("CartService.Add - satır birleşti: key=%s qty=%d", key, cart.Items[i].Qty)
			return cs.db.SaveCart(cart)
		}
	}

	item := models.CartItem{
		Key:       key,
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		Image:     product.MainImage(),
		Color:     color,
		Size:      size,
		Price:     product.Price,
		Qty:       qty,
	}
	cart.Items = append([]models.CartItem{item}, cart.Items...)
	cart.Recompute()
	log.Printf("CartService.Add - yeni satır: key=%s qty=%d", key, qty)
	return cs.db.SaveCart(cart)
}

// Remove, anahtara sahip satırı sepetten siler. Satır yoksa hata değildir.
func (cs *CartService) Remove(sessionID, key string) error {
	cart := cs.GetCart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Key == key {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.Recompute()
			return cs.db.SaveCart(cart)
		}
	}
	return nil
}

// Increment, satırın miktarını 1 artırır.
func (cs *CartService) Increment(sessionID, key string) error {
	cart := cs.GetCart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Key == key {
			cart.Items[i].Qty++
			cart.Recompute()
			return cs.db.SaveCart(cart)
		}
	}
	return nil
}

// Decrement, satırın miktarını 1 azaltır; taban 1'dir. Sıfıra inip satır
// silinmez, silme ayrı ve açık bir işlemdir.
func (cs *CartService) Decrement(sessionID, key string) error {
	cart := cs.GetCart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Key == key {
			if cart.Items[i].Qty > 1 {
				cart.Items[i].Qty--
			}
			cart.Recompute()
			return cs.db.SaveCart(cart)
		}
	}
	return nil
}

// SetQty, satırın miktarını ayarlar; 1'in altı 1'e sabitlenir.
func (cs *CartService) SetQty(sessionID, key string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	cart := cs.GetCart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Key == key {
			cart.Items[i].Qty = qty
			cart.Recompute()
			return cs.db.SaveCart(cart)
		}
	}
	return nil
}

// Clear, sepeti boşaltır ve toplamları sıfırlar.
func (cs *CartService) Clear(sessionID string) error {
	cart := cs.GetCart(sessionID)
	cart.Items = []models.CartItem{}
	cart.Recompute()
	return cs.db.SaveCart(cart)
}

// Count, sepetteki toplam ürün adedini döndürür.
func (cs *CartService) Count(sessionID string) int {
	return cs.GetCart(sessionID).TotalItems
}
