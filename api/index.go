package handler

import (
	"encoding/json"
	"net/http"
)

// Handler, serverless dağıtımlar için basit bir durum ucu.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]string{
		"app":    "dukkan",
		"status": "ok",
		"path":   r.URL.Path,
	})
}
