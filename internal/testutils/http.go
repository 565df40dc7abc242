package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// APIClient drives a configured router in-process
type APIClient struct {
	Router *gin.Engine
}

// NewAPIClient wraps a router built by the routes package
func NewAPIClient(router *gin.Engine) *APIClient {
	gin.SetMode(gin.TestMode)
	return &APIClient{Router: router}
}

// Get issues a GET with optional headers
func (c *APIClient) Get(url string, headers map[string]string) *httptest.ResponseRecorder {
	return c.Do(http.MethodGet, url, nil, headers)
}

// Post issues a POST with body encoded as JSON
func (c *APIClient) Post(url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	return c.Do(http.MethodPost, url, body, headers)
}

// Do serves a single request. A nil body sends no payload and no content type.
func (c *APIClient) Do(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c.Router.ServeHTTP(w, req)
	return w
}

// AssertJSONResponse checks the status and content type, then decodes the body into target
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target interface{}) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	if target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks an error envelope. An empty message only checks the status and success flag.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())

	var env struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if env.Success != nil {
		assert.False(t, *env.Success)
	}
	if message != "" {
		assert.Contains(t, env.Error, message)
	}
}
