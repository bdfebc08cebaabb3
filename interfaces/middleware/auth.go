package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessTokenKey is the gin context key the bearer credential is stored
// under for downstream handlers.
const AccessTokenKey = "access_token"

// BearerToken extracts the Authorization bearer credential and rejects the
// request with 401 before any remote call when it is absent. The token is
// opaque here: validity and scoping are the provider's business.
func BearerToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No access token provided"})
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No access token provided"})
			return
		}

		ctx.Set(AccessTokenKey, parts[1])
		ctx.Next()
	}
}
