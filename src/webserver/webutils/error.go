package webutils

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

// JSONError writes a JSON object with an error message and sets the HTTP status code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	resp := jsonErrorMessage{
		Error: message,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&resp); err != nil {
		log.Errorf("error writing JSON error body: %s", err)
	}
}

// JSONResponse encodes resp as the JSON body of a successful response.
func JSONResponse(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		log.Errorf("error writing JSON response: %s", err)
	}
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}
