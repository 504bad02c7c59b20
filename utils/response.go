package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope returned by every endpoint
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Error   bool        `json:"error"`
	Status  int         `json:"status,omitempty"`
}

// RespondJSON writes the response envelope with the given status code
func RespondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// RespondData writes a 2xx envelope with a payload
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Response{
		Data:    data,
		Message: http.StatusText(status),
		Error:   false,
	})
}

// RespondError writes an error envelope with the status reason phrase as the
// message; internal details never reach the client
func RespondError(w http.ResponseWriter, status int) {
	RespondJSON(w, status, Response{
		Message: http.StatusText(status),
		Error:   true,
		Status:  status,
	})
}

// RespondErrorMessage writes an error envelope with an explicit reason phrase
func RespondErrorMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{
		Message: message,
		Error:   true,
		Status:  status,
	})
}
