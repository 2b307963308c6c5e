package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"basit ad", "Oversize Tisort", "oversize-tisort"},
		{"ingilizce ad", "Wireless Headphone", "wireless-headphone"},
		{"fazla boşluk", "  Masa   Lambası ", "masa-lambas"},
		{"özel karakterler", "Ürün %50 İndirim!", "rn-50-indirim"},
		{"tireler birleşir", "a --- b", "a-b"},
		{"zaten slug", "oyuncu-mouse", "oyuncu-mouse"},
		{"boş", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Fashion", "fashion"))
	assert.True(t, Equal(" moda ", "MODA"))
	assert.False(t, Equal("moda", "ev"))
}
