// Blog HTTP handlers.
//
// This file exposes the blog endpoints:
//   - GET  /blog               (published posts, paginated, ETag support)
//   - GET  /blog/{slug}        (published post; admin also sees drafts)
//   - POST /blog/generate      (admin: draft a post from a topic)
//   - POST /blog/{id}/publish  (admin)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/repo"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

// GenerateDraftRequest is the JSON payload for drafting a blog post.
type GenerateDraftRequest struct {
	// Topic seeds the draft. It must be non-empty.
	Topic    string `json:"topic" binding:"required,min=1" example:"Merkür retrosu"`
	Language string `json:"language" example:"tr"`
}

// ListPostsResponse wraps a page of posts and pagination information.
type ListPostsResponse struct {
	Posts      []domain.BlogPost `json:"posts"`
	Pagination Pagination        `json:"pagination"`
}

// ListPosts godoc
// @ID          listPosts
// @Summary     List blog posts (paginated)
// @Description Returns published posts. Admin callers also see drafts. Supports weak ETag via If-None-Match.
// @Tags        Blog
// @Produce     json
// @Param       If-None-Match header string false "Return 304 if ETag matches"
// @Param       page          query  int    false "Page number"    minimum(1) default(1)
// @Param       page_size     query  int    false "Items per page" minimum(1) maximum(100) default(20)
// @Success     200 {object} handlers.ListPostsResponse
// @Header      200 {string} ETag "Weak ETag for current post set"
// @Success     304 {string} string "Not Modified"
// @Failure     500 {object} handlers.ErrorResponse "Internal error"
// @Router      /blog [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()
	admin := isAdmin(c)
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort, published posts only).
	if h.DB != nil && !admin {
		count, maxTS, err := repo.BlogStats(ctx, h.DB)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"blog:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.blog.ListPage(ctx, page, pageSize, admin)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListPostsResponse{
		Posts:      items,
		Pagination: paginate(page, pageSize, total),
	})
}

// GetPost godoc
// @ID          getPost
// @Summary     Get a blog post by slug
// @Description Drafts are only visible to admin callers.
// @Tags        Blog
// @Produce     json
// @Param       id path string true "Post slug" example(merkur-retrosu-basliyor)
// @Success     200 {object} domain.BlogPost
// @Failure     404 {object} handlers.ErrorResponse "Post not found"
// @Router      /blog/{id} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	p, err := h.blog.GetBySlug(c.Request.Context(), c.Param("id"), isAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// GenerateDraft godoc
// @ID          generateDraft
// @Summary     Draft a blog post (admin)
// @Description Generates a draft on the topic; the draft stays invisible until published.
// @Tags        Blog
// @Accept      json
// @Produce     json
// @Param       X-Admin-Token header string true "Admin token"
// @Param       body          body   handlers.GenerateDraftRequest true "Draft request"
// @Success     201 {object} domain.BlogPost
// @Failure     400 {object} handlers.ErrorResponse "Invalid topic"
// @Failure     500 {object} handlers.ErrorResponse "Generation failed"
// @Router      /blog/generate [post]
func (h *Handlers) GenerateDraft(c *gin.Context) {
	var req GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic required")
		return
	}

	post, err := h.blog.GenerateDraft(c.Request.Context(), req.Topic, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTopic):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic required")
		case errors.Is(err, services.ErrTooLong):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic too long")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, post)
}

// PublishPost godoc
// @ID          publishPost
// @Summary     Publish a draft (admin)
// @Tags        Blog
// @Produce     json
// @Param       X-Admin-Token header string true "Admin token"
// @Param       id            path   string true "Post ID (UUID)" format(uuid)
// @Success     200 {object} domain.BlogPost
// @Failure     404 {object} handlers.ErrorResponse "Post not found"
// @Failure     409 {object} handlers.ErrorResponse "Already published"
// @Router      /blog/{id}/publish [post]
func (h *Handlers) PublishPost(c *gin.Context) {
	post, err := h.blog.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
		case errors.Is(err, services.ErrAlreadyPublished):
			fail(c, http.StatusConflict, ErrCodeConflict, "post already published")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, post)
}
