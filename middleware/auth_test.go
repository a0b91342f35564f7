package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snap-point/insta-api/utils"
)

var secret = []byte("test-secret")

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(secret))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": utils.Actor(c).UserID})
	})
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAnonymous(t *testing.T) {
	w := get(newEngine(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0}`, w.Body.String())
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.IssueToken(secret, 9, "n@example.com", utils.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	w := get(newEngine(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":9}`, w.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	refresh, err := utils.IssueToken(secret, 9, "n@example.com", utils.TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	for _, header := range []string{"Bearer", "Token abc", "Bearer not-a-jwt", "Bearer " + refresh} {
		w := get(newEngine(), header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}
