package middleware

import (
	"net/http"
	"strings"

	"podium/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxSubjectID = "subjectID"
	CtxRole      = "role"
)

// Roles recognised on tokens. Role assignment and the approval workflow
// live with the auth collaborator; we only read the claim.
const (
	RoleSpeaker   = "speaker"
	RoleOrganizer = "organizer"
)

// JWTAuth validates the bearer token and stores the caller's identity in
// the request context. When requiredRole is non-empty the token's role
// claim must match it.
func JWTAuth(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractIdentity(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(CtxSubjectID, subject)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// OptionalJWTAuth populates identity when a valid token is present but
// never rejects the request. Used by endpoints open to anonymous visitors,
// like inquiry submission.
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if subject, role, err := utils.ExtractIdentity(tokenString); err == nil && subject != "" {
				c.Set(CtxSubjectID, subject)
				c.Set(CtxRole, role)
			}
		}
		c.Next()
	}
}
