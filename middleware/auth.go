package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Gong130/Server-of-iNews/auth"
	"github.com/gin-gonic/gin"
)

// TokenVerifier is implemented by auth.Service.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth protects routes behind a Bearer token. Every failure — missing
// header, bad format, invalid or expired token — answers 401 with the same
// body so clients learn nothing about the cause.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		uid, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("userID", uint(uid))
		c.Set("role", claims.Role)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing or invalid credentials"})
	c.Abort()
}
