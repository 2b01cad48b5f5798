package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"naya-blog/api/handlers"
	"naya-blog/api/middleware"
	"naya-blog/config"
	_ "naya-blog/docs"
	"naya-blog/metrics"
	"naya-blog/services"
)

// Deps are the collaborators the routes need. Tokens may be nil, which leaves
// the write routes unauthenticated (local development only).
type Deps struct {
	Posts   *services.PostService
	Sitemap *services.SitemapService
	Health  handlers.Pinger
	Tokens  middleware.TokenParser
	CORS    config.CORSConfig
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestTrace(),
		middleware.RequestLogging(),
		middleware.Metrics(),
		middleware.CORS(d.CORS),
	)

	// Health check
	r.GET("/health", handlers.HealthHandler(d.Health))

	// Prometheus
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthHandler(d.Health))
		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.GET("/posts/:slug", handlers.GetPostHandler(d.Posts))
		api.POST("/posts/:slug/view", handlers.RegisterViewHandler(d.Posts))
		api.POST("/posts/:slug/like", handlers.RegisterLikeHandler(d.Posts))
		api.GET("/sitemap", handlers.SitemapHandler(d.Sitemap))
	}

	admin := api.Group("")
	if d.Tokens != nil {
		admin.Use(middleware.AdminAuth(d.Tokens))
	}
	{
		admin.POST("/posts", handlers.CreatePostHandler(d.Posts))
		admin.PUT("/posts/:id", handlers.UpdatePostHandler(d.Posts))
		admin.DELETE("/posts/:id", handlers.DeletePostHandler(d.Posts))
		admin.GET("/admin/posts", handlers.AdminListPostsHandler(d.Posts))
	}

	return r
}
