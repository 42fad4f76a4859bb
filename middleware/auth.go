package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"valuation/utils"
)

// RequireEditToken admits a request only when its bearer token was issued for the :id session.
func RequireEditToken(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			utils.ErrorResponse(c, "Authorization header missing or malformed", http.StatusUnauthorized)
			c.Abort()
			return
		}

		claims, err := issuer.ValidateEditToken(strings.TrimSpace(tokenStr))
		if err != nil {
			utils.ErrorResponse(c, "Invalid or expired edit token", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if claims.SessionID != c.Param("id") {
			utils.ErrorResponse(c, "Edit token does not belong to this valuation", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}
