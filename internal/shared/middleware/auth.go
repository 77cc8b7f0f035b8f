package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sanad-backend/internal/shared/response"
	"sanad-backend/pkg/jwt"
)

// TokenRevoker reports the revocation cutoff for a user. Tokens issued
// before the cutoff are dead (logout revokes them all at once).
type TokenRevoker interface {
	TokensRevokedAt(ctx context.Context, userID string) (time.Time, error)
}

// Auth validates the Bearer token and injects the authenticated user's id
// and email into the request context.
func Auth(tokens *jwt.Manager, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		if revoker != nil {
			cutoff, err := revoker.TokensRevokedAt(c.Request.Context(), claims.UserID)
			if err != nil {
				response.InternalServerError(c, "could not verify token")
				c.Abort()
				return
			}
			if !cutoff.IsZero() && claims.IssuedAt != nil && claims.IssuedAt.Time.Before(cutoff) {
				response.Unauthorized(c, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userEmail", claims.Email)

		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
