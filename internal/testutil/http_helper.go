// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/auth"
)

// MakeJSONRequest is a helper function for making JSON requests in tests.
// A non-empty token is attached as the portal token cookie.
func MakeJSONRequest(body gin.H, token string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeListRequest performs a GET against an endpoint that responds with a
// JSON array of documents.
func MakeListRequest(token string, r *gin.Engine, endpoint string) (*httptest.ResponseRecorder, []map[string]interface{}) {
	req, _ := http.NewRequest(http.MethodGet, endpoint, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp []map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}
