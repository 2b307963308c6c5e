package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItemKey(t *testing.T) {
	// Seçimsiz ekleme boş dizeye normalize edilir
	assert.Equal(t, CartItemKey(5, "", ""), CartItemKey(5, "", ""))

	// Aynı ürün, farklı varyantlar farklı anahtar üretir
	assert.NotEqual(t, CartItemKey(5, "Siyah", "M"), CartItemKey(5, "Siyah", "L"))
	assert.NotEqual(t, CartItemKey(5, "Siyah", "M"), CartItemKey(5, "Beyaz", "M"))
	assert.NotEqual(t, CartItemKey(5, "", ""), CartItemKey(6, "", ""))
}

func TestCartItemKeyDelimiterEscaped(t *testing.T) {
	// Alan içindeki ":" ayırıcıyla çakışma üretemez
	a := CartItemKey(5, "A::B", "")
	b := CartItemKey(5, "A", "B")
	assert.NotEqual(t, a, b)
}

func TestCartRecompute(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Key: "1::::", ProductID: 1, Qty: 3, Price: 100},
			{Key: "2::::", ProductID: 2, Qty: 2, Price: 250},
		},
		// Bayat kalıcı toplamlar; Recompute bunları ezmeli
		TotalItems: 99,
		TotalPrice: 99999,
	}
	cart.Recompute()

	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, 800, cart.TotalPrice)
}

func TestRoleFromEmail(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromEmail("admin@test.com"))
	assert.Equal(t, RoleAdmin, RoleFromEmail("  ADMIN@dukkan.com "))
	assert.Equal(t, RoleUser, RoleFromEmail("ayse@test.com"))
	assert.Equal(t, RoleUser, RoleFromEmail("notadmin@test.com"))
}
