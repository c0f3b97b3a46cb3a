package transport

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reward-lab/auth"
	"reward-lab/domain"
)

const (
	ctxUserID = "userID"
	ctxTier   = "tier"
)

// RequireAuth validates the bearer token and attaches the caller's
// identity and tier to the gin context. The tier is derived from the
// token roles on every request so a plan change takes effect on the
// caller's next call.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxTier, auth.TierFromRoles(claims.Roles))
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func callerTier(c *gin.Context) domain.TierContext {
	tier, _ := c.Get(ctxTier)
	if t, ok := tier.(domain.TierContext); ok {
		return t
	}
	return domain.TierContext{}
}
