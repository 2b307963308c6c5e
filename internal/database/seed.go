package database

import (
	"time"

	"dukkan/internal/models"
)

func intPtr(n int) *int { return &n }

// SeedCategories, boş veritabanı için örnek kategorileri döndürür.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Moda", Slug: "moda"},
		{ID: 2, Name: "Elektronik", Slug: "elektronik"},
		{ID: 3, Name: "Ev", Slug: "ev"},
	}
}

// SeedProducts, boş veritabanı için örnek ürünleri döndürür.
func SeedProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          1,
			CategoryID:  2,
			Name:        "Kablosuz Kulaklık",
			Slug:        "kablosuz-kulaklik",
			Description: "Temiz ses, uzun pil ömrü, rahat kullanım.",
			Price:       299000,
			Stock:       intPtr(15),
			Image:       "/products/kulaklik.jpeg",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			CategoryID:  1,
			Name:        "Oversize Tişört",
			Slug:        "oversize-tisort",
			Description: "Serin kumaş, modern kesim.",
			Price:       129000,
			Stock:       intPtr(32),
			Image:       "/products/tisort/1.jpg",
			IsActive:    true,
			Colors:      []string{"Krem", "Beyaz", "Siyah", "Lacivert"},
			Sizes:       []string{"M", "L", "XL", "2XL"},
			LongDescription: "Kumaş: penye 30/1...\nKesim: oversize fit...\n" +
				"Bakım: ters çevirip yıkayın...",
			Images: []string{
				"/products/tisort/1.jpg",
				"/products/tisort/2.jpg",
				"/products/tisort/3.jpg",
				"/products/tisort/4.jpg",
			},
			ColorImages: map[string][]string{
				"Krem":     {"/products/tisort/krem/1.jpg", "/products/tisort/krem/2.jpg"},
				"Beyaz":    {"/products/tisort/beyaz/1.jpg", "/products/tisort/beyaz/2.jpg"},
				"Siyah":    {"/products/tisort/siyah/1.jpg", "/products/tisort/siyah/2.jpg"},
				"Lacivert": {"/products/tisort/lacivert/1.jpg", "/products/tisort/lacivert/2.jpg"},
			},
			SizeChartImage: "/size-chart/oversize-tisort.jpg",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:          3,
			CategoryID:  3,
			Name:        "Minimalist Masa Lambası",
			Slug:        "minimalist-masa-lambasi",
			Description: "Çalışma masası ve yatak odası için uygun.",
			Price:       189000,
			Stock:       intPtr(8),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          4,
			CategoryID:  2,
			Name:        "Oyuncu Mouse",
			Slug:        "oyuncu-mouse",
			Description: "Hassas sensör, rahat tutuş.",
			Price:       159000,
			Stock:       intPtr(0),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedOrders, admin paneli boş açılmasın diye iki örnek sipariş döndürür.
func SeedOrders() []models.Order {
	now := time.Now()
	return []models.Order{
		{
			ID:        "SIP-1001",
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-48 * time.Hour),
			Customer:  models.Customer{Name: "Ayşe Yılmaz", Email: "ayse@example.com", Phone: "05550001122"},
			Shipping:  models.Shipping{Address: "Atatürk Cad. No: 12, Kadıköy, İstanbul"},
			Status:    models.OrderStatusPending,
			Items: []models.OrderItem{
				{ProductID: 2, Name: "Oversize Tişört", Qty: 2, Price: 129000},
			},
		},
		{
			ID:        "SIP-1002",
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-20 * time.Hour),
			Customer:  models.Customer{Name: "Mehmet Demir", Email: "mehmet@example.com", Phone: "05550003344"},
			Shipping:  models.Shipping{Address: "Cumhuriyet Mah. 5. Sok. No: 3, Çankaya, Ankara", Notes: "Kapıya bırakın"},
			Status:    models.OrderStatusPaid,
			Items: []models.OrderItem{
				{ProductID: 1, Name: "Kablosuz Kulaklık", Qty: 1, Price: 299000},
				{ProductID: 3, Name: "Minimalist Masa Lambası", Qty: 1, Price: 189000},
			},
		},
	}
}
