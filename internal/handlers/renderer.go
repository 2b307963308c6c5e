package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

// HTMLRenderer, her sayfa için ayrı template setlerini yönetir.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

// Instance, render işlemini gerçekleştirir.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Data:     data,
	}
}

// Render, HTTP yanıtını yazar.
func (r *HTMLRenderer) Render(w http.ResponseWriter, code int, data ...interface{}) error {
	name := data[0].(string)
	templateData := data[1]
	instance := r.Instance(name, templateData)
	return instance.Render(w)
}

// TemplateFuncs, template'lerde kullanılan yardımcı fonksiyonlardır.
var TemplateFuncs = template.FuncMap{
	// money, kuruş cinsinden tutarı "1.290,00 ₺" biçiminde yazar.
	"money": func(kurus int) string {
		lira := kurus / 100
		kalan := kurus % 100
		return fmt.Sprintf("%s,%02d ₺", groupDigits(lira), kalan)
	},
	// mul, satır tutarı gibi çarpımlar için.
	"mul": func(a, b int) int { return a * b },
	// pageURL, mevcut filtre durumunu koruyarak sayfa bağlantısı üretir.
	"pageURL": func(base string, page int) string {
		if base == "" {
			return fmt.Sprintf("/products?page=%d", page)
		}
		return fmt.Sprintf("/products?%s&page=%d", base, page)
	},
	// pages, sayfalama bağlantıları için 1..n dilimi üretir.
	"pages": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
}

// groupDigits, tam sayıyı binlik ayraçlarla yazar.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out)
}
