package models

import "strings"

// Kullanıcı rolleri.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User, oturum açmış kullanıcıyı temsil eder. Kimlik doğrulama sahtedir:
// parola hiçbir zaman kontrol edilmez, rol e-posta adresinden türetilir.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// IsAdmin, kullanıcının admin rolünde olup olmadığını döndürür.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RoleFromEmail, rolü e-posta adresinden türetir: "admin@" ile başlayan
// adresler admin, gerisi user. Kimlik bilgisi doğrulaması yoktur.
func RoleFromEmail(email string) string {
	e := strings.ToLower(strings.TrimSpace(email))
	if strings.HasPrefix(e, "admin@") {
		return RoleAdmin
	}
	return RoleUser
}

// LoginForm, giriş formu verilerini temsil eder.
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm, kayıt formu verilerini temsil eder.
type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
	Address  string `form:"address" binding:"required"`
}
