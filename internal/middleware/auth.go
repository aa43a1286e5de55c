package middleware

import (
	"net/http"
	"os"
	"strings"

	"backend/internal/auth"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "currentUser"

// GetJWTSecret returns the process-wide token signing secret
func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "h2eaux-secret-key-2025" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// AuthMiddleware resolves bearer tokens to user records and enforces
// capability and role checks on protected routes
type AuthMiddleware struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

func NewAuthMiddleware(users repository.UserRepository, tokens *auth.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{users: users, tokens: tokens}
}

// RequireAuth validates the bearer token and loads the subject's user record
// into the request context. A token whose subject no longer exists fails
// exactly like a bad signature: the caller only ever sees a 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
				return
			}
			tokenString = parts[1]
		} else if isWebsocketUpgrade(c.Request) {
			// Browsers cannot set headers on websocket handshakes; the
			// query-string token is accepted only there
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		subject, err := m.tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authentication credentials"))
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authentication credentials"))
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequirePermission checks the named capability flag on the authenticated
// user; an absent flag reads as false. Must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(capability model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}
		if !user.Permissions.Has(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access to "+string(capability)+" not permitted"))
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts a route to the admin role. This is a stricter check
// layered on top of capability flags, used for account registration.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}
		if user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Only admin can create new users"))
			return
		}
		c.Next()
	}
}

func isWebsocketUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

// CurrentUser returns the authenticated user stored by RequireAuth, or nil
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
