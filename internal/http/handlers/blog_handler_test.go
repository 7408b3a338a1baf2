package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kehanet/go-arcana-backend/internal/domain"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

func TestListPosts_DraftVisibility(t *testing.T) {
	var sawDrafts bool
	fake := &fakeBlog{
		listPage: func(page, pageSize int, includeDrafts bool) ([]domain.BlogPost, int64, error) {
			sawDrafts = includeDrafts
			return []domain.BlogPost{{ID: "b1", Slug: "merkur-retrosu", Status: domain.PostPublished}}, 1, nil
		},
	}
	h := newTestHandlers(deps{blog: fake})

	w := serve(t, func(r *gin.Engine) { r.GET("/blog", h.ListPosts) },
		httptest.NewRequest(http.MethodGet, "/blog", nil))
	if w.Code != http.StatusOK || sawDrafts {
		t.Fatalf("public: status=%d includeDrafts=%v", w.Code, sawDrafts)
	}
	var resp ListPostsResponse
	decodeJSON(t, w, &resp)
	if len(resp.Posts) != 1 || resp.Pagination.Total != 1 {
		t.Fatalf("unexpected page: %+v", resp)
	}

	w = serve(t, func(r *gin.Engine) {
		r.GET("/blog", func(c *gin.Context) { c.Set("isAdmin", true) }, h.ListPosts)
	}, httptest.NewRequest(http.MethodGet, "/blog", nil))
	if w.Code != http.StatusOK || !sawDrafts {
		t.Fatalf("admin: status=%d includeDrafts=%v", w.Code, sawDrafts)
	}
}

func TestGetPost_BySlug(t *testing.T) {
	fake := &fakeBlog{
		getBySlug: func(slug string, includeDrafts bool) (*domain.BlogPost, error) {
			if slug == "taslak" && !includeDrafts {
				return nil, services.ErrPostNotFound
			}
			return &domain.BlogPost{ID: "b2", Slug: slug, Status: domain.PostDraft}, nil
		},
	}
	h := newTestHandlers(deps{blog: fake})

	// Public caller cannot see the draft.
	w := serve(t, func(r *gin.Engine) { r.GET("/blog/:id", h.GetPost) },
		httptest.NewRequest(http.MethodGet, "/blog/taslak", nil))
	wantErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)

	// Admin caller can.
	w = serve(t, func(r *gin.Engine) {
		r.GET("/blog/:id", func(c *gin.Context) { c.Set("isAdmin", true) }, h.GetPost)
	}, httptest.NewRequest(http.MethodGet, "/blog/taslak", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("admin: status = %d", w.Code)
	}
}

func TestGenerateDraft(t *testing.T) {
	fake := &fakeBlog{
		generateDraft: func(topic, lang string) (*domain.BlogPost, error) {
			switch topic {
			case "uzun":
				return nil, services.ErrTooLong
			case " ":
				return nil, services.ErrEmptyTopic
			}
			return &domain.BlogPost{
				ID: "b3", Slug: "dolunay-ritueli", Title: "Dolunay Ritüeli",
				Topic: topic, Status: domain.PostDraft, Source: domain.SourceProvider,
			}, nil
		},
	}
	h := newTestHandlers(deps{blog: fake})
	register := func(r *gin.Engine) { r.POST("/blog/generate", h.GenerateDraft) }

	w := serve(t, register, httptest.NewRequest(http.MethodPost, "/blog/generate",
		jsonBody(t, map[string]any{"topic": "dolunay ritüeli"})))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var post domain.BlogPost
	decodeJSON(t, w, &post)
	if post.Status != domain.PostDraft {
		t.Fatalf("new post must start as draft: %+v", post)
	}

	w = serve(t, register, httptest.NewRequest(http.MethodPost, "/blog/generate",
		jsonBody(t, map[string]any{"topic": "uzun"})))
	wantErrorCode(t, w, http.StatusBadRequest, ErrCodeBadRequest)

	w = serve(t, register, httptest.NewRequest(http.MethodPost, "/blog/generate",
		jsonBody(t, map[string]any{})))
	wantErrorCode(t, w, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestPublishPost(t *testing.T) {
	fake := &fakeBlog{
		publish: func(id string) (*domain.BlogPost, error) {
			switch id {
			case "gone":
				return nil, services.ErrPostNotFound
			case "live":
				return nil, services.ErrAlreadyPublished
			}
			return &domain.BlogPost{ID: id, Status: domain.PostPublished}, nil
		},
	}
	h := newTestHandlers(deps{blog: fake})
	register := func(r *gin.Engine) { r.POST("/blog/:id/publish", h.PublishPost) }

	w := serve(t, register, httptest.NewRequest(http.MethodPost, "/blog/b1/publish", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var post domain.BlogPost
	decodeJSON(t, w, &post)
	if post.Status != domain.PostPublished {
		t.Fatalf("status field = %q", post.Status)
	}

	w = serve(t, register, httptest.NewRequest(http.MethodPost, "/blog/gone/publish", nil))
	wantErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)

	w = serve(t, register, httptest.NewRequest(http.MethodPost, "/blog/live/publish", nil))
	wantErrorCode(t, w, http.StatusConflict, ErrCodeConflict)
}
