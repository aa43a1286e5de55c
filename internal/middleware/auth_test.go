package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/auth"
	"backend/internal/database"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *auth.TokenIssuer, *model.User) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)
	user := &model.User{Username: "admin", Role: model.RoleAdmin, Permissions: model.AdminPermissions(), HashedPassword: "x"}
	require.NoError(t, users.Create(context.Background(), user))

	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	return NewAuthMiddleware(users, tokens), tokens, user
}

func TestRequireAuthQueryToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, tokens, user := newAuthFixture(t)

	token, err := tokens.Issue(user.ID.String())
	require.NoError(t, err)

	router := gin.New()
	router.GET("/ws", mw.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).Username)
	})

	// Websocket handshakes cannot carry an Authorization header, so the
	// token is accepted as a query parameter on upgrade requests
	req := httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestRequireAuthQueryTokenOnlyOnUpgrade(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, tokens, user := newAuthFixture(t)

	token, err := tokens.Issue(user.ID.String())
	require.NoError(t, err)

	router := gin.New()
	router.GET("/clients", mw.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// A valid token in the query string is refused on plain HTTP requests
	req := httptest.NewRequest(http.MethodGet, "/clients?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization is missing")
}

func TestGetJWTSecretFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "")
	assert.Equal(t, []byte("h2eaux-secret-key-2025"), GetJWTSecret())

	t.Setenv("JWT_SECRET", "configured")
	assert.Equal(t, []byte("configured"), GetJWTSecret())
}

func TestGetJWTSecretPanicsInRelease(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "release")
	assert.Panics(t, func() { GetJWTSecret() })
}
