package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/post"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
	"github.com/scorpaust/conex-blog/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// List - GET /v1/posts?page=1&per_page=15&sort=title&sort_dir=asc&filter=
func (h *PostHandler) List(c *gin.Context) {
	var params pagination.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid search parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetByID - GET /v1/posts/:id
// The response carries the post's author, resolved by a separate lookup.
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	resp, err := h.service.GetWithAuthor(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetBySlug - GET /v1/posts/slug/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	resp, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create - POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "validation failed", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Publish - POST /v1/posts/:id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	h.setPublished(c, h.service.Publish)
}

// Unpublish - POST /v1/posts/:id/unpublish
func (h *PostHandler) Unpublish(c *gin.Context) {
	h.setPublished(c, h.service.Unpublish)
}

func (h *PostHandler) setPublished(c *gin.Context, op func(context.Context, uuid.UUID) (*post.PostResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	resp, err := op(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *PostHandler) renderError(c *gin.Context, err error) {
	response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
}
