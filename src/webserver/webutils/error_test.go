package webutils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ironsmile/mosaic/src/webserver/webutils"
)

// TestJSONError makes sure that the JSONError function really encodes the response
// as a valid JSON.
func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	errMsg := "some error message for testing"

	webutils.JSONError(rec, errMsg, http.StatusBadGateway)

	res := rec.Result()
	defer func() {
		res.Body.Close()
	}()

	if res.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected Bad Gateway status but got %d", res.StatusCode)
	}

	if !strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		t.Errorf("Expected JSON content type but got %s", res.Header.Get("Content-Type"))
	}

	respJSON := struct {
		Error string `json:"error"`
	}{}
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&respJSON); err != nil {
		t.Errorf("Failed decoding the JSON response: %s", err)
	}

	if respJSON.Error != errMsg {
		t.Errorf("Expected error `%s` but got `%s`", errMsg, respJSON.Error)
	}
}

// TestJSONResponse checks that successful responses are JSON encoded.
func TestJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	webutils.JSONResponse(rec, map[string]int{"answer": 42})

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Errorf("Expected OK status but got %d", res.StatusCode)
	}

	resp := map[string]int{}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed decoding the JSON response: %s", err)
	}

	if resp["answer"] != 42 {
		t.Errorf("Expected 42 but got %d", resp["answer"])
	}
}
