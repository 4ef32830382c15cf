package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it as the response body with
// the given status code and an "application/json" content type. It is the
// single JSON egress point for the API handlers, so account, claim, and
// analytics payloads all serialize the same way.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error. On success it returns the number of body bytes
// written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
