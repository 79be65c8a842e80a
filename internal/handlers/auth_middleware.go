package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentorship-service/internal/auth"
	"github.com/mentorlink/mentorship-service/internal/models"
)

// JWTAuthMiddleware authenticates requests with bearer tokens issued by the
// login endpoint.
type JWTAuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewJWTAuthMiddleware(tokens *auth.TokenManager) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{tokens: tokens}
}

// AuthMiddleware verifies the Authorization header and stores the caller's
// identity in the context.
func (am *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header missing",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := am.tokens.Verify(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RequireRoleMiddleware rejects callers whose role is not in the allowed
// set. It is the single place role gates produce 403s; handlers never check
// roles themselves.
func (am *JWTAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "User role not found in context",
			})
			return
		}

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Message: fmt.Sprintf("Insufficient permissions, required role: %v", requiredRoles),
		})
	}
}

// GetUserIDFromContext extracts the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", fmt.Errorf("user ID not found in context")
	}
	id, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid user ID type in context")
	}
	return id, nil
}

// GetUserRoleFromContext extracts the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (models.UserRole, error) {
	v, exists := c.Get("user_role")
	if !exists {
		return "", fmt.Errorf("user role not found in context")
	}
	role, ok := v.(models.UserRole)
	if !ok {
		return "", fmt.Errorf("invalid user role type in context")
	}
	return role, nil
}
