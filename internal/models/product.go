package models

import (
	"time"
)

// Product, katalogdaki bir ürünü temsil eder.
// Stock nil ise stok bilgisi bilinmiyor demektir, 0 ise ürün tükenmiştir.
type Product struct {
	ID              int                 `json:"id"`
	CategoryID      int                 `json:"category_id"`
	Name            string              `json:"name"`
	Slug            string              `json:"slug"`
	Price           int                 `json:"price"` // kuruş cinsinden
	Stock           *int                `json:"stock"`
	Description     string              `json:"description,omitempty"`
	LongDescription string              `json:"long_description,omitempty"`
	Image           string              `json:"image,omitempty"`
	Images          []string            `json:"images,omitempty"`
	ColorImages     map[string][]string `json:"color_images,omitempty"`
	SizeChartImage  string              `json:"size_chart_image,omitempty"`
	Colors          []string            `json:"colors,omitempty"`
	Sizes           []string            `json:"sizes,omitempty"`
	IsActive        bool                `json:"is_active"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// MainImage, ürünün vitrin görselini döndürür (galeri varsa ilk görsel).
func (p *Product) MainImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// InStock, ürünün satın alınabilir stokta olup olmadığını döndürür.
// Bilinmeyen stok (nil) stokta yok sayılır.
func (p *Product) InStock() bool {
	return p.Stock != nil && *p.Stock > 0
}

// HasVariants, ürünün renk veya beden seçenekleri olup olmadığını döndürür.
func (p *Product) HasVariants() bool {
	return len(p.Colors) > 0 || len(p.Sizes) > 0
}

// ProductForm, admin ürün formu verilerini temsil eder.
// ColorImages serbest metin alanından JSON olarak gelir; bozuk JSON kaydı
// engeller.
type ProductForm struct {
	Name            string `form:"name" binding:"required"`
	Slug            string `form:"slug"`
	CategoryID      int    `form:"categoryId" binding:"required"`
	Price           int    `form:"price"`
	Stock           string `form:"stock"`
	Description     string `form:"description"`
	LongDescription string `form:"longDescription"`
	Image           string `form:"image"`
	Images          string `form:"images"` // virgülle ayrılmış
	ColorImages     string `form:"colorImages"`
	SizeChartImage  string `form:"sizeChartImage"`
	Colors          string `form:"colors"` // virgülle ayrılmış
	Sizes           string `form:"sizes"`  // virgülle ayrılmış
	IsActive        bool   `form:"isActive"`
}
