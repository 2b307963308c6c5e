package services

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"dukkan/internal/database"
	"dukkan/internal/models"
)

// AuthService, sahte kimlik doğrulamayı yönetir. Parola hiçbir zaman
// doğrulanmaz; rol e-posta adresinden türetilir ve tek kullanıcı kaydı
// kalıcı anlık görüntüde tutulur. Bu bir güvenlik mekanizması DEĞİLDİR:
// admin kapısı istemci tarafı bir kolaylıktan ibarettir, gerçek yetki
// kontrolü sunucu tarafında ayrıca yapılmalıdır.
type AuthService struct {
	db database.DBInterface
}

// NewAuthService, yeni bir AuthService örneği oluşturur.
func NewAuthService(db database.DBInterface) *AuthService {
	return &AuthService{db: db}
}

// LoginDummy, sahte girişi yapar. E-posta "@" içermeli, parola en az 4
// karakter olmalıdır; hatalar kullanıcıya gösterilecek mesajlardır.
func (as *AuthService) LoginDummy(email, password string) (*models.User, error) {
	e := strings.ToLower(strings.TrimSpace(email))

	if !strings.Contains(e, "@") {
		return nil, fmt.Errorf("geçerli bir e-posta adresi girin")
	}
	if len(password) < 4 {
		return nil, fmt.Errorf("parola en az 4 karakter olmalı")
	}

	role := models.RoleFromEmail(e)
	name := "Kullanıcı"
	if role == models.RoleAdmin {
		name = "Admin"
	}

	user := &models.User{Name: name, Email: e, Role: role}
	if err := as.db.SetCurrentUser(user); err != nil {
		return nil, err
	}
	log.Printf("AuthService.LoginDummy - giriş: %s (%s)", e, role)
	return user, nil
}

// RegisterDummy, sahte kaydı yapar; rol her zaman user olur. Parola sadece
// kayıt amaçlı hashlenir, girişte kontrol edilmez.
func (as *AuthService) RegisterDummy(name, email, password, phone, address string) (*models.User, error) {
	n := strings.TrimSpace(name)
	e := strings.ToLower(strings.TrimSpace(email))

	if len(n) < 2 {
		return nil, fmt.Errorf("ad en az 2 karakter olmalı")
	}
	if !strings.Contains(e, "@") {
		return nil, fmt.Errorf("geçerli bir e-posta adresi girin")
	}
	if len(password) < 4 {
		return nil, fmt.Errorf("parola en az 4 karakter olmalı")
	}
	if len(strings.TrimSpace(phone)) < 6 {
		return nil, fmt.Errorf("geçerli bir telefon numarası girin")
	}
	if len(strings.TrimSpace(address)) < 10 {
		return nil, fmt.Errorf("adres en az 10 karakter olmalı")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         n,
		Email:        e,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	if err := as.db.SetCurrentUser(user); err != nil {
		return nil, err
	}
	log.Printf("AuthService.RegisterDummy - kayıt: %s", e)
	return user, nil
}

// Logout, kullanıcı kaydını temizler.
func (as *AuthService) Logout() error {
	return as.db.SetCurrentUser(nil)
}

// CurrentUser, oturum açmış kullanıcıyı döndürür; yoksa nil.
func (as *AuthService) CurrentUser() *models.User {
	return as.db.CurrentUser()
}
