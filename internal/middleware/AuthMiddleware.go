package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager validates access tokens issued by the auth service.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

func (m *TokenManager) Validate(tokenStr string) (string, error) {
	// An unset secret means auth is disabled; never accept tokens
	// HMAC-signed with the empty key.
	if len(m.secret) == 0 {
		return "", errors.New("no token secret configured")
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sub, ok := claims["sub"].(string); ok {
			return sub, nil
		}
	}
	return "", errors.New("invalid token")
}

// OptionalAuth sets "userId" in the request context when a valid Bearer
// token is present. Catalog endpoints serve anonymous traffic too, so a
// missing or bad token just means an anonymous request.
func OptionalAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, err := tm.Validate(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
