package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/auth"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

const principalKey = "principal"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the caller's principal
// on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(principalKey, authorization.Principal{
			ID:   claims.UserID,
			Role: claims.Role,
		})
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// PrincipalFromContext returns the authenticated caller set by RequireAuth.
func PrincipalFromContext(c *gin.Context) (authorization.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return authorization.Principal{}, false
	}
	principal, ok := value.(authorization.Principal)
	return principal, ok
}
