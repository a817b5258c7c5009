package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Santykk/MERCADEO/internal/user"
	"github.com/Santykk/MERCADEO/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() (*gin.Engine, *user.Identity) {
	captured := &user.Identity{}

	r := gin.New()
	r.Use(Auth())
	r.GET("/whoami", func(c *gin.Context) {
		if id, ok := utils.GetUserIDFromContext(c.Request.Context()); ok {
			captured.UserID = id
			captured.Email = utils.GetUserEmailFromContext(c.Request.Context())
			captured.Role = user.Role(utils.GetUserRoleFromContext(c.Request.Context()))
		}
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestAuth_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	id := uuid.New()
	token, err := user.GenerateJWT(id, string(user.RoleAdmin), "admin@example.com")
	require.NoError(t, err)

	r, captured := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, captured.UserID)
	assert.Equal(t, "admin@example.com", captured.Email)
	assert.True(t, captured.IsAdmin())
}

func TestAuth_CookiePreferred(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	id := uuid.New()
	token, err := user.GenerateJWT(id, string(user.RoleUser), "u@example.com")
	require.NoError(t, err)

	r, captured := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, captured.UserID)
}

func TestAuth_InvalidTokenIsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	r, captured := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.IsZero())
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	r := gin.New()
	r.Use(Auth())
	authed := r.Group("", RequireAuth())
	authed.GET("/private", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Authenticated", func(t *testing.T) {
		token, err := user.GenerateJWT(uuid.New(), string(user.RoleUser), "u@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	r := gin.New()
	r.Use(Auth())
	admin := r.Group("", RequireAdmin())
	admin.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("RegularUser", func(t *testing.T) {
		token, err := user.GenerateJWT(uuid.New(), string(user.RoleUser), "u@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin", func(t *testing.T) {
		token, err := user.GenerateJWT(uuid.New(), string(user.RoleAdmin), "a@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRateLimit_AuthenticatedUsersGetSeparateBuckets(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	// Identity resolution runs first so the limiter keys by user id.
	r := gin.New()
	r.Use(Auth())
	r.Use(RateLimit())
	r.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	tokenA, err := user.GenerateJWT(uuid.New(), string(user.RoleUser), "a@example.com")
	require.NoError(t, err)
	tokenB, err := user.GenerateJWT(uuid.New(), string(user.RoleUser), "b@example.com")
	require.NoError(t, err)

	// Two users behind one IP, alternating past the shared-bucket burst.
	// Per-user quotas mean neither caller is rejected.
	tokens := []string{tokenA, tokenB}
	for i := 0; i < 2*burstStrict; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.10:1234"
		req.Header.Set("Authorization", "Bearer "+tokens[i%2])
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimit_Strict(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit())
	r.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	var lastCode int
	for i := 0; i < burstStrict+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
