package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dukkan/internal/models"
)

func TestLoginDummyRoleFromEmail(t *testing.T) {
	db := newTestDB(t)
	as := NewAuthService(db)

	user, err := as.LoginDummy("admin@dukkan.test", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Admin", user.Name)
	assert.True(t, user.IsAdmin())

	user, err = as.LoginDummy("ali@dukkan.test", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "Kullanıcı", user.Name)
	assert.False(t, user.IsAdmin())
}

func TestLoginDummyNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	as := NewAuthService(db)

	user, err := as.LoginDummy("  Admin@Dukkan.Test ", "1234")
	require.NoError(t, err)
	assert.Equal(t, "admin@dukkan.test", user.Email)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginDummyValidation(t *testing.T) {
	db := newTestDB(t)
	as := NewAuthService(db)

	_, err := as.LoginDummy("epostasiz", "1234")
	assert.Error(t, err)

	_, err = as.LoginDummy("ali@dukkan.test", "123")
	assert.Error(t, err)

	// Başarısız giriş oturum bırakmaz
	assert.Nil(t, as.CurrentUser())
}

func TestRegisterDummyValidation(t *testing.T) {
	db := newTestDB(t)
	as := NewAuthService(db)

	cases := []struct {
		name, email, password, phone, address string
	}{
		{"A", "ali@dukkan.test", "1234", "05551112233", "Uzun bir teslimat adresi"},
		{"Ali", "epostasiz", "1234", "05551112233", "Uzun bir teslimat adresi"},
		{"Ali", "ali@dukkan.test", "123", "05551112233", "Uzun bir teslimat adresi"},
		{"Ali", "ali@dukkan.test", "1234", "555", "Uzun bir teslimat adresi"},
		{"Ali", "ali@dukkan.test", "1234", "05551112233", "kısa"},
	}
	for _, c := range cases {
		_, err := as.RegisterDummy(c.name, c.email, c.password, c.phone, c.address)
		assert.Error(t, err, "geçersiz kayıt kabul edildi: %+v", c)
	}
	assert.Nil(t, as.CurrentUser())
}

func TestRegisterDummyAlwaysUserRole(t *testing.T) {
	db := newTestDB(t)
	as := NewAuthService(db)

	// Kayıtta admin@ öneki bile user rolü alır
	user, err := as.RegisterDummy("Admin Aday", "admin@dukkan.test", "1234", "05551112233", "Uzun bir teslimat adresi")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	// Hash kayıt amaçlıdır ama gerçekten parolaya aittir
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("1234")))
}

func TestAuthSessionPersistsAndLogoutClears(t *testing.T) {
	db := newTestDB(t)
	as := NewAuthService(db)

	_, err := as.LoginDummy("ayse@dukkan.test", "1234")
	require.NoError(t, err)

	current := as.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "ayse@dukkan.test", current.Email)

	require.NoError(t, as.Logout())
	assert.Nil(t, as.CurrentUser())
}
