package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// payload ответ всегда содержит success и message
type payload map[string]any

func respondJSON(w http.ResponseWriter, status int, v payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func ok(w http.ResponseWriter, msg string, extra payload) {
	body := payload{"success": true, "message": msg}
	for k, v := range extra {
		body[k] = v
	}
	respondJSON(w, http.StatusOK, body)
}

func fail(w http.ResponseWriter, status int, msg string, extra payload) {
	body := payload{"success": false, "message": msg}
	for k, v := range extra {
		body[k] = v
	}
	respondJSON(w, status, body)
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// idParam id из пути; 0 если параметр не число
func idParam(r *http.Request) uint {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
