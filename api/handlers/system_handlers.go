package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"naya-blog/dto"
	"naya-blog/services"
)

// SitemapHandler godoc
// @Summary      Sitemap entries
// @Description  Static routes and every published post with its last modification time
// @Tags         sitemap
// @Produce      json
// @Success      200  {object}  dto.SitemapDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sitemap [get]
func SitemapHandler(svc *services.SitemapService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Entries(c.Request.Context())
		if err != nil {
			writeError(c, err, "Failed to generate sitemap")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// Pinger is implemented by *db.Mongo.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthDTO
// @Failure      503  {object}  dto.HealthDTO
// @Router       /health [get]
func HealthHandler(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "degraded", Mongo: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok"})
	}
}
