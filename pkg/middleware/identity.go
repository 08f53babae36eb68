package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mcstudio/pkg/utils"
)

const UserIDKey = "user_id"

// OptionalIdentityMiddleware resolves a signed-in visitor from a bearer
// token when one is present. There is no sign-in surface of our own: the
// token is a capability the host application may supply. Anonymous requests
// pass through untouched.
func OptionalIdentityMiddleware(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if jwtSecret == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			c.Next()
			return
		}

		if id, err := uuid.Parse(claims.UserID); err == nil {
			c.Set(UserIDKey, id)
		}
		c.Next()
	}
}

// UserIDFrom returns the authenticated user id, if any.
func UserIDFrom(c *gin.Context) *uuid.UUID {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
