package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"naya-blog/dto"
	"naya-blog/services"
)

// @Summary Create a post
// @Description Create a post; slug, TOC, reading time and SEO fallbacks are derived on save
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.PostRequest true "Post fields"
// @Success 201 {object} dto.PostMutationDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Security BearerAuth
// @Router /posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostRequest
		if err := bindStrictJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		post, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeError(c, err, "Failed to create blog post")
			return
		}
		c.JSON(http.StatusCreated, dto.PostMutationDTO{Message: "Post created successfully", Post: post})
	}
}

// @Summary Update a post
// @Description Apply the supplied fields and re-derive the post
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body dto.PostRequest true "Fields to change"
// @Success 200 {object} dto.PostMutationDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Security BearerAuth
// @Router /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostRequest
		if err := bindStrictJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		post, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			writeError(c, err, "Failed to update blog post")
			return
		}
		c.JSON(http.StatusOK, dto.PostMutationDTO{Message: "Post updated successfully", Post: post})
	}
}

// @Summary Delete a post
// @Description Delete a post by ID
// @Tags admin
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Security BearerAuth
// @Router /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err, "Failed to delete blog post")
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Post deleted successfully"})
	}
}

// @Summary List posts for admin
// @Description List every post regardless of status, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminPostListDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Security BearerAuth
// @Router /admin/posts [get]
func AdminListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.AdminList(c.Request.Context())
		if err != nil {
			writeError(c, err, "Failed to fetch blog posts")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
