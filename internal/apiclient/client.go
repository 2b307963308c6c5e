// Package apiclient, ileride bağlanacak gerçek backend için ince bir HTTP
// istemcisidir. Şu an hiçbir akış tarafından çağrılmaz; bir API geldiğinde
// görünüm katmanına dokunmadan buradan bağlanılır.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
)

// APIError, 2xx dışı yanıtları temsil eder. Message, sunucunun gövdede
// döndürdüğü "message" alanından gelir; yoksa durum kodundan üretilir.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client, temel URL'si ortam değişkeninden gelen JSON istemcisidir.
// Çerezler korunur (credentials included).
type Client struct {
	baseURL string
	http    *http.Client
}

// New, API_URL ortam değişkenini kullanan bir Client oluşturur.
func New() (*Client, error) {
	base := os.Getenv("API_URL")
	if base == "" {
		return nil, fmt.Errorf("API_URL tanımlı değil")
	}
	return NewWithBase(base)
}

// NewWithBase, verilen temel URL ile bir Client oluşturur.
func NewWithBase(base string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

// Do, isteği JSON olarak gönderir ve yanıtı out içine çözer (out nil
// olabilir). 2xx dışı yanıtlar *APIError olarak döner.
func (c *Client) Do(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("istek başarısız (%d)", resp.StatusCode),
		}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
