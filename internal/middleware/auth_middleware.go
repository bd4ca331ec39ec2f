package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/pkg/apperrors"
	"github.com/ozank/collegium/internal/pkg/auth"
	"github.com/ozank/collegium/internal/pkg/results"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware guards routes with token validation and role checks.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores its claims in the request
// context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(results.CodeTokenInvalid, "authentication required", results.LevelImportant))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := results.CodeTokenInvalid
			message := "invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = results.CodeTokenExpired
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(code, message, results.LevelImportant))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired rejects callers whose token role is not in the allowed set.
// It expects JWTAuth to have run first.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(results.CodeTokenInvalid, "authentication required", results.LevelImportant))
			return
		}

		role, _ := value.(string)
		for _, allowed := range roles {
			if role == string(allowed) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(results.CodeAccessDenied, results.Message(results.CodeAccessDenied), results.LevelImportant))
	}
}

// UserID returns the authenticated caller's account id from the context.
func UserID(c *gin.Context) (int, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}
