package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore, her anahtarı veri dizininde ayrı bir JSON dosyası olarak saklar.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore, verilen dizini kullanan bir FileStore oluşturur.
// Dizin yoksa oluşturulur.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Load, anahtara ait dosyayı okuyup v içine çözer. Dosya yoksa veya
// çözülemiyorsa hata döndürür ve v'ye dokunmaz; çağıran varsayılanıyla
// devam eder.
func (fs *FileStore) Load(key string, v interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return os.ErrNotExist
	}
	return json.Unmarshal(data, v)
}

// Save, v'yi anahtara ait dosyaya JSON olarak yazar.
func (fs *FileStore) Save(key string, v interface{}) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path(key), data, 0644)
}
