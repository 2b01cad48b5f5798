package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"naya-blog/services"
)

// ListPostsHandler godoc
// @Summary      List published posts
// @Description  List published posts newest first with search, category filter and pagination
// @Tags         posts
// @Param        page      query  int     false  "Page number (1-based)"  default(1)
// @Param        limit     query  int     false  "Page size (<=100)"  default(10)
// @Param        search    query  string  false  "Full-text search over title, excerpt, content and tags"
// @Param        category  query  string  false  "Category, or all"
// @Produce      json
// @Success      200  {object}  dto.PostListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		// pagination; invalid numbers fall back to the defaults
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
		// filters
		in.Search = c.Query("search")
		in.Category = c.Query("category")

		out, err := svc.ListPublished(c.Request.Context(), in)
		if err != nil {
			writeError(c, err, "Failed to fetch blog posts")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetPostHandler godoc
// @Summary      Get published post by slug
// @Description  Get a published post; rendered_content carries heading anchors for the TOC
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDetailDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err, "Failed to fetch blog post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// RegisterViewHandler godoc
// @Summary      Increment view count
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.CounterDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug}/view [post]
func RegisterViewHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.RegisterView(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err, "Failed to register view")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// RegisterLikeHandler godoc
// @Summary      Increment like count
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.CounterDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug}/like [post]
func RegisterLikeHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.RegisterLike(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err, "Failed to register like")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
