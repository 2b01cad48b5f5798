package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naya-blog/auth"
	"naya-blog/config"
	"naya-blog/eventbus"
	"naya-blog/repositories"
	"naya-blog/services"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

const createBody = `{"title":"Routing test","excerpt":"e","content":"<p>hi</p>","author":"a","category":"tutorials","status":"published"}`

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTManager, *eventbus.MemoryEventBus) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewJWTManager(config.AuthConfig{JWTSecret: "test-secret"})
	require.NoError(t, err)

	repo := repositories.NewMemoryPostRepository()
	bus := eventbus.NewMemoryEventBus()
	r := New(Deps{
		Posts:   services.NewPostService(repo, bus, eventbus.NewTopic("naya.posts"), nil),
		Sitemap: services.NewSitemapService(repo, config.SiteConfig{BaseURL: "https://nayastack.com"}, nil),
		Health:  okPinger{},
		Tokens:  tokens,
		CORS:    config.CORSConfig{AllowedOrigins: []string{"https://nayastack.com"}},
	})
	return r, tokens, bus
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, tokens *auth.JWTManager, role string) string {
	t.Helper()
	token, err := tokens.Sign("editor", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	r, tokens, _ := newTestRouter(t)

	testCases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"user role", bearer(t, tokens, auth.RoleUser), http.StatusForbidden},
		{"admin role", bearer(t, tokens, auth.RoleAdmin), http.StatusCreated},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", strings.NewReader(createBody))
			req.Header.Set("Content-Type", "application/json")
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(r, req)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/admin/posts", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicRoutesAndEvents(t *testing.T) {
	r, tokens, bus := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", strings.NewReader(createBody))
	req.Header.Set("Authorization", bearer(t, tokens, auth.RoleAdmin))
	req.Header.Set("X-Request-Id", "req-42")
	w := serve(r, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))

	published := bus.Events("naya.posts")
	require.Len(t, published, 1)
	assert.Contains(t, string(published[0].Payload), `"request_id":"req-42"`)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/posts/routing-test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = serve(r, httptest.NewRequest(http.MethodPost, "/api/v1/posts/routing-test/view", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{"/health", "/api/v1/health", "/api/v1/sitemap", "/api/v1/posts", "/metrics"} {
		w = serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// 브라우저는 요청 헤더 목록을 소문자, 공백 없이 보낸다.
	testCases := []struct {
		requestHeaders string
		wantOrigin     string
	}{
		{"authorization,content-type", "https://nayastack.com"},
		{"content-type", "https://nayastack.com"},
		{"Authorization, Content-Type", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.requestHeaders, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/posts", nil)
			req.Header.Set("Origin", "https://nayastack.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", tc.requestHeaders)
			w := serve(r, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tc.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
