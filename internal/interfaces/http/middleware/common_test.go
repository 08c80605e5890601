package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMiddlewareRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doGet(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	router := newMiddlewareRouter(CORS())

	t.Run("default empty whitelist sets no headers for cross-origin", func(t *testing.T) {
		w := doGet(router, "http://somewhere.example")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("same-origin request passes", func(t *testing.T) {
		w := doGet(router, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight still returns 204 without headers", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://somewhere.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORSWithConfig(t *testing.T) {
	t.Run("whitelisted origin is echoed back", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://app.example"},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))

		w := doGet(router, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		w = doGet(router, "http://app.example")
		assert.Equal(t, "http://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no headers", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(CORSConfig{
			AllowOrigins: []string{"http://allowed.example"},
		}))

		w := doGet(router, "http://other.example")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin but never credentials", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))

		w := doGet(router, "http://anywhere.example")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		// Browsers reject credentials with a wildcard origin
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("max-age is seconds as a decimal string", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       12 * time.Hour,
		}))

		w := doGet(router, "http://localhost:3000")
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("expose headers are joined", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET"},
			AllowHeaders:  []string{"Content-Type"},
			ExposeHeaders: []string{"X-Request-ID", "X-Total-Count"},
		}))

		w := doGet(router, "http://localhost:3000")
		assert.Equal(t, "X-Request-ID, X-Total-Count", w.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("preflight from a whitelisted origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT"},
			AllowHeaders: []string{"Content-Type", "X-Request-ID"},
		}))

		req := httptest.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, X-Request-ID", w.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()

	assert.Empty(t, cfg.AllowOrigins, "default whitelist must be empty")
	assert.Contains(t, cfg.AllowMethods, "GET")
	assert.Contains(t, cfg.AllowMethods, "POST")
	assert.Contains(t, cfg.AllowHeaders, "Content-Type")
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, 12*time.Hour, cfg.MaxAge)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		w := doGet(router, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
	})

	t.Run("propagates a client-supplied id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "client-id-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-1", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "client-id-1", w.Body.String())
	})
}

func TestGenerateRequestID(t *testing.T) {
	id1 := generateRequestID()
	id2 := generateRequestID()

	assert.NotEqual(t, id1, id2)
	assert.Len(t, id1, 32) // 16 random bytes, hex encoded
}

func TestSecure(t *testing.T) {
	router := newMiddlewareRouter(Secure())
	w := doGet(router, "")

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))

	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "frame-ancestors 'none'")

	// HSTS stays off until TLS termination is verified
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	assert.Contains(t, w.Header().Get("Permissions-Policy"), "camera=()")
}

func TestSecureWithConfig(t *testing.T) {
	t.Run("custom CSP directive", func(t *testing.T) {
		router := newMiddlewareRouter(SecureWithConfig(SecurityConfig{
			CSPEnabled:   true,
			CSPDirective: "default-src 'none'; script-src 'self'",
		}))
		w := doGet(router, "")

		assert.Equal(t, "default-src 'none'; script-src 'self'", w.Header().Get("Content-Security-Policy"))
		assert.Empty(t, w.Header().Get("Permissions-Policy"))
	})

	t.Run("HSTS header formats", func(t *testing.T) {
		router := newMiddlewareRouter(SecureWithConfig(SecurityConfig{
			HSTSEnabled:           true,
			HSTSMaxAge:            63072000,
			HSTSIncludeSubdomains: true,
			HSTSPreload:           true,
		}))
		w := doGet(router, "")
		assert.Equal(t, "max-age=63072000; includeSubDomains; preload", w.Header().Get("Strict-Transport-Security"))

		router = newMiddlewareRouter(SecureWithConfig(SecurityConfig{
			HSTSEnabled: true,
			HSTSMaxAge:  31536000,
		}))
		w = doGet(router, "")
		assert.Equal(t, "max-age=31536000", w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("optional headers disabled leaves the basics", func(t *testing.T) {
		router := newMiddlewareRouter(SecureWithConfig(SecurityConfig{}))
		w := doGet(router, "")

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Empty(t, w.Header().Get("Content-Security-Policy"))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Empty(t, w.Header().Get("Permissions-Policy"))
	})
}

func TestDefaultSecurityConfig(t *testing.T) {
	cfg := DefaultSecurityConfig()

	assert.False(t, cfg.HSTSEnabled)
	assert.Equal(t, 31536000, cfg.HSTSMaxAge)
	assert.True(t, cfg.HSTSIncludeSubdomains)

	assert.True(t, cfg.CSPEnabled)
	assert.Contains(t, cfg.CSPDirective, "default-src 'self'")

	assert.True(t, cfg.PermissionsPolicyEnabled)
	assert.Contains(t, cfg.PermissionsPolicyDirective, "camera=()")
}

func TestTimeout(t *testing.T) {
	router := newMiddlewareRouter(Timeout(30 * time.Second))
	w := doGet(router, "")
	assert.Equal(t, "30s", w.Header().Get("X-Request-Timeout"))
}
