// Package storage, anahtar başına JSON anlık görüntü saklayan basit bir
// kalıcılık katmanı sağlar. Gerçek bir backend/veritabanı ileride bu arayüzün
// arkasına takılır; görünüm katmanı değişmez.
package storage

// Store, anahtarlı JSON anlık görüntülerin yüklenip kaydedilmesini tanımlar.
// Load, anahtar yoksa veya içerik çözülemiyorsa hata döndürür; çağıran
// elindeki varsayılan değerle devam eder.
type Store interface {
	Load(key string, v interface{}) error
	Save(key string, v interface{}) error
}
