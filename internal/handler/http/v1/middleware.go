package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const claimsContextKey = "auth_claims"

// IdentifyMiddleware parses an optional Bearer token and stores its claims in
// the request context. Requests without an Authorization header pass through
// anonymously; a malformed or expired token is rejected outright.
func IdentifyMiddleware(tokens *service.TokenManager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Warn("Rejected request with invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// claimsFrom returns the authenticated claims, or nil for anonymous requests.
func claimsFrom(c *gin.Context) *service.Claims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

// currentUserID returns the authenticated user's UUID, or nil.
func currentUserID(c *gin.Context) *uuid.UUID {
	claims := claimsFrom(c)
	if claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}
	return &id
}
