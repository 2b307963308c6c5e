package storage

import (
	"encoding/json"
	"os"
	"sync"
)

// MemoryStore, anlık görüntüleri bellekte tutar. Testlerde ve diske yazmanın
// istenmediği durumlarda kullanılır.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore, boş bir MemoryStore oluşturur.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

// Load, anahtara ait veriyi v içine çözer. Anahtar yoksa os.ErrNotExist döner.
func (ms *MemoryStore) Load(key string, v interface{}) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	data, ok := ms.data[key]
	if !ok {
		return os.ErrNotExist
	}
	return json.Unmarshal(data, v)
}

// Save, v'yi anahtarın altına JSON olarak kaydeder.
func (ms *MemoryStore) Save(key string, v interface{}) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ms.data[key] = data
	return nil
}

// Put, ham JSON'u doğrudan anahtarın altına koyar. Bozuk kayıtların
// davranışını test etmek için kullanılır.
func (ms *MemoryStore) Put(key string, raw []byte) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.data[key] = raw
}
