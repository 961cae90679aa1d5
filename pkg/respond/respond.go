package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON encodes data before touching w, so an encoding failure becomes a
// plain 500 instead of a half-written body.
func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

// Message writes msg as a bare JSON string.
func Message(w http.ResponseWriter, r *http.Request, code int, msg string) {
	JSON(w, r, code, msg)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, ErrorBody{Error: message})
}
