package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nextute/chatbot-be/types"
	"github.com/nextute/chatbot-be/utils"
)

const ClaimsContextKey = "claims"

// AdminAuthMiddleware guards the administrative routes: bearer token, valid
// signature, admin role.
func AdminAuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header is required",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header format must be Bearer {token}",
		})
		return
	}

	claims, err := utils.ParseUserToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Invalid token",
		})
		return
	}
	if claims.Role != types.USER_ROLE_ADMIN {
		c.AbortWithStatusJSON(http.StatusForbidden, types.DataResponse{
			Status:  false,
			Message: "Admin role required",
		})
		return
	}

	c.Set(ClaimsContextKey, claims)
	c.Next()
}
