package middlewares

import (
	"net/http"
	"strings"

	"github.com/gueleresra1/Yemeksystem/services"
	"github.com/gueleresra1/Yemeksystem/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware validates the Bearer token and stores the resolved actor in
// the request context. The role name comes from the token claims; handlers
// never look at role ids.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(currentUserKey, services.CurrentUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})

		c.Next()
	}
}

// CurrentUser returns the actor stored by AuthMiddleware. The bool is false
// on unauthenticated routes.
func CurrentUser(c *gin.Context) (services.CurrentUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return services.CurrentUser{}, false
	}
	user, ok := v.(services.CurrentUser)
	return user, ok
}
