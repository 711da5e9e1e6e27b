package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gestor-xarxa/internal/core/auth"
	resp "gestor-xarxa/internal/transport/http/response"
)

const KeyClaims = "claims"

// AuthJWT requires a bearer token signed by j. requireRole, when set, must
// match the token's role claim.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error("missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error("invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error("forbidden"))
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}
