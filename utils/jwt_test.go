package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestIssueAndParseToken(t *testing.T) {
	raw, err := IssueToken(secret, 12, "a@example.com", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, raw, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)

	again, err := IssueToken(secret, 12, "a@example.com", TokenTypeAccess, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, raw, again)
}

func TestParseTokenRejects(t *testing.T) {
	access, err := IssueToken(secret, 1, "a@example.com", TokenTypeAccess, time.Minute)
	require.NoError(t, err)
	expired, err := IssueToken(secret, 1, "a@example.com", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseToken([]byte("other"), access, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseToken(secret, expired, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseToken(secret, "garbage", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.False(t, Actor(c).Authenticated())

	SetUser(c, &UserClaims{UserID: 5, Email: "e@example.com"})
	actor := Actor(c)
	assert.True(t, actor.Authenticated())
	assert.Equal(t, uint(5), actor.UserID)
}
