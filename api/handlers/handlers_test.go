package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naya-blog/config"
	"naya-blog/dto"
	"naya-blog/eventbus"
	"naya-blog/repositories"
	"naya-blog/services"
)

const validBody = `{
	"title": "Hello, World! 2024",
	"excerpt": "An excerpt",
	"content": "<h2>Intro</h2><p>word word word</p>",
	"author": "Naya",
	"category": "tutorials",
	"status": "published",
	"tags": ["go"]
}`

func newTestEngine(repo *repositories.MemoryPostRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	posts := services.NewPostService(repo, eventbus.NewMemoryEventBus(), eventbus.NewTopic("t"), nil)
	sitemap := services.NewSitemapService(repo, config.SiteConfig{BaseURL: "https://nayastack.com", StaticRoutes: []string{"/"}}, nil)

	r := gin.New()
	r.GET("/posts", ListPostsHandler(posts))
	r.GET("/posts/:slug", GetPostHandler(posts))
	r.POST("/posts/:slug/view", RegisterViewHandler(posts))
	r.POST("/posts/:slug/like", RegisterLikeHandler(posts))
	r.POST("/posts", CreatePostHandler(posts))
	r.PUT("/posts/:id", UpdatePostHandler(posts))
	r.DELETE("/posts/:id", DeletePostHandler(posts))
	r.GET("/admin/posts", AdminListPostsHandler(posts))
	r.GET("/sitemap", SitemapHandler(sitemap))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCreatePostHandler(t *testing.T) {
	r := newTestEngine(repositories.NewMemoryPostRepository())

	w := do(r, http.MethodPost, "/posts", validBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	out := decode[dto.PostMutationDTO](t, w)
	assert.Equal(t, "Post created successfully", out.Message)
	assert.Len(t, out.Post.ID, 24)
	assert.Equal(t, "hello-world-2024", out.Post.Slug)
	assert.Equal(t, 4, out.Post.WordCount)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	post := raw["post"].(map[string]any)
	assert.NotContains(t, post, "_id")
	assert.NotContains(t, post, "ID")
	assert.Contains(t, post, "id")

	w = do(r, http.MethodPost, "/posts", validBody)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Slug already exists", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestCreatePostHandlerRejectsBadBodies(t *testing.T) {
	r := newTestEngine(repositories.NewMemoryPostRepository())

	testCases := []struct {
		name string
		body string
		want string
	}{
		{"unknown field", `{"title":"x","is_admin":true}`, "unknown field"},
		{"not json", `title=x`, "invalid request body"},
		{"empty body", ``, "invalid request body"},
		{"trailing data", validBody + `{}`, "unexpected data"},
		{"missing fields", `{"title":"Only a title"}`, "Missing required fields"},
		{"wrong type", `{"title": 12}`, "invalid request body"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/posts", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[dto.ErrorResponseDTO](t, w).Error, tc.want)
		})
	}
}

func TestUpdateAndDeletePostHandlers(t *testing.T) {
	r := newTestEngine(repositories.NewMemoryPostRepository())
	created := decode[dto.PostMutationDTO](t, do(r, http.MethodPost, "/posts", validBody)).Post

	w := do(r, http.MethodPut, "/posts/"+created.ID, `{"title":"New title","featured":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[dto.PostMutationDTO](t, w)
	assert.Equal(t, "Post updated successfully", out.Message)
	assert.Equal(t, "New title", out.Post.Title)
	assert.True(t, out.Post.Featured)
	assert.Equal(t, created.Slug, out.Post.Slug)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/posts/65f000000000000000000000", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/posts/nope", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/posts/"+created.ID, `{"_id":"x"}`).Code)

	w = do(r, http.MethodDelete, "/posts/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post deleted successfully", decode[dto.MessageResponseDTO](t, w).Message)

	w = do(r, http.MethodDelete, "/posts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestListAndGetPostHandlers(t *testing.T) {
	r := newTestEngine(repositories.NewMemoryPostRepository())
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/posts", validBody).Code)
	draft := strings.Replace(strings.Replace(validBody, `"published"`, `"draft"`, 1), "Hello, World! 2024", "Draft post", 1)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/posts", draft).Code)

	w := do(r, http.MethodGet, "/posts?page=abc&limit=5&category=all", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.PostListDTO](t, w)
	require.Len(t, list.Posts, 1)
	assert.Equal(t, dto.PaginationDTO{CurrentPage: 1, TotalPages: 1, TotalPosts: 1}, list.Pagination)

	w = do(r, http.MethodGet, "/posts/hello-world-2024", "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[dto.PostDetailDTO](t, w)
	assert.Equal(t, `<h2 id="intro">Intro</h2><p>word word word</p>`, detail.RenderedContent)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/posts/draft-post", "").Code)

	w = do(r, http.MethodGet, "/admin/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[dto.AdminPostListDTO](t, w).Total)
}

func TestCounterHandlers(t *testing.T) {
	r := newTestEngine(repositories.NewMemoryPostRepository())
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/posts", validBody).Code)

	w := do(r, http.MethodPost, "/posts/hello-world-2024/view", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, *decode[dto.CounterDTO](t, w).Views)

	w = do(r, http.MethodPost, "/posts/hello-world-2024/like", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, *decode[dto.CounterDTO](t, w).Likes)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/posts/missing/like", "").Code)
}

func TestSitemapHandler(t *testing.T) {
	r := newTestEngine(repositories.NewMemoryPostRepository())
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/posts", validBody).Code)

	w := do(r, http.MethodGet, "/sitemap", "")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[dto.SitemapDTO](t, w)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "https://nayastack.com/", out.Entries[0].URL)
	assert.Equal(t, "https://nayastack.com/blog/hello-world-2024", out.Entries[1].URL)
}

func TestPersistenceErrorsAreHidden(t *testing.T) {
	repo := repositories.NewMemoryPostRepository()
	repo.Err = errors.New("mongo: connection refused")
	r := newTestEngine(repo)

	w := do(r, http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch blog posts", decode[dto.ErrorResponseDTO](t, w).Error)

	w = do(r, http.MethodPost, "/posts", validBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create blog post", decode[dto.ErrorResponseDTO](t, w).Error)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	healthy := true
	r.GET("/health", HealthHandler(pingerFunc(func(context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("no reachable servers")
	})))

	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthDTO](t, w).Status)

	healthy = false
	w = do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "down", decode[dto.HealthDTO](t, w).Mongo)
}
