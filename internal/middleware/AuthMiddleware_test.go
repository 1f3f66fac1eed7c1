package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidate(t *testing.T) {
	tm := NewTokenManager("secret")

	sub, err := tm.Validate(signHS256(t, "secret", "42"))
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
}

func TestValidateWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret")

	_, err := tm.Validate(signHS256(t, "other", "42"))
	assert.Error(t, err)
}

func TestValidateEmptySecretRejectsEverything(t *testing.T) {
	tm := NewTokenManager("")

	_, err := tm.Validate(signHS256(t, "", "42"))
	assert.Error(t, err)
}

func whoamiRouter(tm *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalAuth(tm))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId")})
	})
	return r
}

func TestOptionalAuthSetsUserID(t *testing.T) {
	router := whoamiRouter(NewTokenManager("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signHS256(t, "secret", "42"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"42"}`, w.Body.String())
}

func TestOptionalAuthAnonymousWhenSecretUnset(t *testing.T) {
	// With no configured secret every request is anonymous, even one
	// carrying a token signed with the empty key.
	router := whoamiRouter(NewTokenManager(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signHS256(t, "", "42"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":""}`, w.Body.String())
}
