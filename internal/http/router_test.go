package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router-test-secret")

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Handlers{}, testSecret)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doRequest(t, newTestRouter(), "GET", "/health", "")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var body struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, nethttp.StatusOK, body.StatusCode)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	w := doRequest(t, newTestRouter(), "GET", "/nope", "")
	require.Equal(t, nethttp.StatusNotFound, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "route not found", body.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/api/v1/booking", "/api/v1/auth/profile", "/api/v1/files"} {
		w := doRequest(t, r, "GET", path, "")
		assert.Equal(t, nethttp.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestAdminGateRejectsRegularUser(t *testing.T) {
	r := newTestRouter()

	userToken, err := utils.GenerateToken(utils.TokenClaims{ID: 5, Email: "u@e.c", Role: "USER"},
		testSecret, time.Minute)
	require.NoError(t, err)

	w := doRequest(t, r, "GET", "/api/v1/users", userToken)
	assert.Equal(t, nethttp.StatusForbidden, w.Code)

	w = doRequest(t, r, "DELETE", "/api/v1/event/1", userToken)
	assert.Equal(t, nethttp.StatusForbidden, w.Code)
}
