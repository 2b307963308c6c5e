// Package slug, isimlerden URL dostu slug üretir.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalid    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// Make, isimden slug üretir: küçük harfe çevirir, [a-z0-9 -] dışını atar,
// boşlukları tek tireye indirger, ardışık tireleri birleştirir.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalid.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Equal, iki slug'ı büyük/küçük harfe duyarsız karşılaştırır.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
