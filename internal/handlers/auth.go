package handlers

import (
	"net/http"

	"dukkan/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginPage, giriş sayfasını oluşturur.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.baseData(c, "Giriş Yap"))
}

// HandleLogin, sahte girişi yönetir. Doğrulama hataları sayfada gösterilir;
// admin rolü /admin'e, diğerleri ana sayfaya gider.
func (h *Handler) HandleLogin(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		data := h.baseData(c, "Giriş Yap")
		data["error"] = "E-posta ve parola gerekli."
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	user, err := h.authService.LoginDummy(form.Email, form.Password)
	if err != nil {
		data := h.baseData(c, "Giriş Yap")
		data["error"] = err.Error()
		data["email"] = form.Email
		c.HTML(http.StatusUnauthorized, "login.html", data)
		return
	}

	if user.IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage, kayıt sayfasını oluşturur.
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.baseData(c, "Kayıt Ol"))
}

// HandleRegister, sahte kaydı yönetir; başarılı kayıt oturumu açar.
func (h *Handler) HandleRegister(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		data := h.baseData(c, "Kayıt Ol")
		data["error"] = "Tüm alanları doldurun."
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	if _, err := h.authService.RegisterDummy(form.Name, form.Email, form.Password, form.Phone, form.Address); err != nil {
		data := h.baseData(c, "Kayıt Ol")
		data["error"] = err.Error()
		data["form"] = form
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Logout, oturumu kapatır.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService.Logout(); err == nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
