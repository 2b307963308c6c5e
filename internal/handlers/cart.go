package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"dukkan/internal/models"

	"github.com/gin-gonic/gin"
)

// CartPage, sepet sayfasını oluşturur.
func (h *Handler) CartPage(c *gin.Context) {
	cart := h.cartService.GetCart(h.sessionID(c))

	data := h.baseData(c, "Sepetim")
	data["cart"] = cart
	c.HTML(http.StatusOK, "cart.html", data)
}

// AddToCart, ürünü seçilen varyantla sepete ekler. Renk/beden seçeneği
// olan üründe seçim zorunludur; eksik seçim detay sayfasına hata ile döner.
func (h *Handler) AddToCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.PostForm("productId"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	product, err := h.db.GetProductByID(productID)
	if err != nil {
		log.Printf("AddToCart - ürün bulunamadı: %d", productID)
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
	if err != nil || qty < 1 {
		qty = 1
	}
	color := c.PostForm("color")
	size := c.PostForm("size")

	detail := "/products/" + product.Slug
	if len(product.Colors) > 0 && color == "" {
		c.Redirect(http.StatusSeeOther, detail+"?error="+url.QueryEscape("önce renk seçin"))
		return
	}
	if len(product.Sizes) > 0 && size == "" {
		c.Redirect(http.StatusSeeOther, detail+"?error="+url.QueryEscape("önce beden seçin"))
		return
	}

	if err := h.cartService.Add(h.sessionID(c), product, qty, color, size); err != nil {
		log.Printf("AddToCart - eklenemedi: %v", err)
	}
	c.Redirect(http.StatusSeeOther, detail+"?added=1")
}

// UpdateCartItem, satır miktarını günceller: action inc, dec veya set.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sid := h.sessionID(c)
	key := c.PostForm("key")

	var err error
	switch c.PostForm("action") {
	case "inc":
		err = h.cartService.Increment(sid, key)
	case "dec":
		err = h.cartService.Decrement(sid, key)
	default:
		qty, convErr := strconv.Atoi(c.PostForm("qty"))
		if convErr != nil {
			qty = 1
		}
		err = h.cartService.SetQty(sid, key, qty)
	}
	if err != nil {
		log.Printf("UpdateCartItem - güncellenemedi: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveFromCart, satırı sepetten çıkarır.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	if err := h.cartService.Remove(h.sessionID(c), c.PostForm("key")); err != nil {
		log.Printf("RemoveFromCart - silinemedi: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// ClearCart, sepeti tamamen boşaltır.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(h.sessionID(c)); err != nil {
		log.Printf("ClearCart - boşaltılamadı: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// GetCartCount, sepetteki ürün adedini JSON olarak döndürür.
func (h *Handler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.cartService.Count(h.sessionID(c))})
}

// CheckoutPage, ödeme sayfasını oluşturur. Sepet boşsa sepete yönlendirir.
func (h *Handler) CheckoutPage(c *gin.Context) {
	cart := h.cartService.GetCart(h.sessionID(c))
	if len(cart.Items) == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	data := h.baseData(c, "Ödeme")
	data["cart"] = cart
	c.HTML(http.StatusOK, "checkout.html", data)
}

// HandleCheckout, sahte ödemeyi yapar: formu doğrular, sepeti boşaltır ve
// teşekkür sayfasına yönlendirir. Gerçek ödeme entegrasyonu yoktur.
func (h *Handler) HandleCheckout(c *gin.Context) {
	sid := h.sessionID(c)
	cart := h.cartService.GetCart(sid)
	if len(cart.Items) == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	var form models.CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		data := h.baseData(c, "Ödeme")
		data["cart"] = cart
		data["error"] = "Tüm zorunlu alanları doldurun."
		c.HTML(http.StatusBadRequest, "checkout.html", data)
		return
	}

	if err := h.cartService.Clear(sid); err != nil {
		log.Printf("HandleCheckout - sepet boşaltılamadı: %v", err)
	}
	log.Printf("HandleCheckout - sahte ödeme tamam: %s", form.Email)
	c.Redirect(http.StatusSeeOther, "/order-success")
}

// OrderSuccessPage, sipariş teşekkür sayfasını oluşturur.
func (h *Handler) OrderSuccessPage(c *gin.Context) {
	c.HTML(http.StatusOK, "order_success.html", h.baseData(c, "Teşekkürler"))
}
