package models

// Category, ürün kategorisini temsil eder.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryForm, admin kategori formu verilerini temsil eder.
type CategoryForm struct {
	Name string `form:"name" binding:"required"`
	Slug string `form:"slug"`
}
