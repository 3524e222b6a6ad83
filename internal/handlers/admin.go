// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pressfolio/internal/cache"
	"pressfolio/internal/lifecycle"
	"pressfolio/internal/models"
	"pressfolio/internal/seo"
	"pressfolio/internal/storage"
	"pressfolio/internal/store"
)

// Admin groups the authenticated content management handlers. Every save
// goes through the lifecycle manager so slugs, meta defaults, publish
// timestamps, and scores stay consistent regardless of content type.
type Admin struct {
	posts    *store.BlogPostStore
	courses  *store.CourseStore
	news     *store.NewsItemStore
	pages    *store.PageStore
	projects *store.ProjectStore

	lifecycle     *lifecycle.Manager
	storageClient *storage.Client
	respCache     *cache.ResponseCache
	site          seo.SiteInfo
}

// NewAdmin creates a new Admin handler group. storageClient and respCache
// may be nil when S3 or Valkey are not configured.
func NewAdmin(
	posts *store.BlogPostStore,
	courses *store.CourseStore,
	news *store.NewsItemStore,
	pages *store.PageStore,
	projects *store.ProjectStore,
	lc *lifecycle.Manager,
	storageClient *storage.Client,
	respCache *cache.ResponseCache,
	site seo.SiteInfo,
) *Admin {
	return &Admin{
		posts:         posts,
		courses:       courses,
		news:          news,
		pages:         pages,
		projects:      projects,
		lifecycle:     lc,
		storageClient: storageClient,
		respCache:     respCache,
		site:          site,
	}
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, &models.ValidationError{Field: "id", Message: "invalid UUID"}
	}
	return id, nil
}

// sanitizeShared validates the shared fields and normalizes the enum
// strings that arrive from the JSON boundary. An empty status means draft.
func sanitizeShared(c *models.Content) error {
	// Scores are computed at save time; whatever the request carried
	// is discarded.
	c.SEOScore = nil
	c.ReadabilityScore = nil

	status, err := models.ParseStatus(statusOrDraft(c.Status))
	if err != nil {
		return err
	}
	c.Status = status

	card, err := models.ParseTwitterCard(string(c.TwitterCardType))
	if err != nil {
		return err
	}
	c.TwitterCardType = card

	return validateShared(c)
}

func statusOrDraft(s models.Status) string {
	if s == "" {
		return string(models.StatusDraft)
	}
	return string(s)
}

// carryScores copies the stored scores onto a decoded update payload.
// Normalize recomputes them when the body is non-empty; an empty body
// keeps the previous values instead of blanking them.
func carryScores(c, existing *models.Content) {
	c.SEOScore = existing.SEOScore
	c.ReadabilityScore = existing.ReadabilityScore
}

// invalidate clears the public cache for one content type after a write.
func (a *Admin) invalidate(ctx context.Context, contentType string) {
	if a.respCache != nil {
		a.respCache.InvalidateType(ctx, contentType)
	}
}

// transitionRequest is the body of a status transition call.
type transitionRequest struct {
	Status string `json:"status"`
}

// seoPreviewResponse returns the computed preview and scores without
// persisting anything, so editors can see the effect of a change before
// saving.
type seoPreviewResponse struct {
	Preview          seo.Preview `json:"preview"`
	SEOScore         *int        `json:"seo_score,omitempty"`
	ReadabilityScore *float64    `json:"readability_score,omitempty"`
	Slug             string      `json:"slug"`
	MetaTitle        string      `json:"meta_title"`
	MetaDescription  string      `json:"meta_description"`
}

// previewRecord runs save-time normalization on a scratch copy and
// reports what would be stored.
func (a *Admin) previewRecord(rec models.Record, section string) seoPreviewResponse {
	a.lifecycle.Normalize(rec, time.Now())
	c := rec.Fields()
	return seoPreviewResponse{
		Preview:          seo.BuildPreview(rec, a.storageClient.URL(c.OGImageKey), a.site.BaseURL+"/"+section+"/"+c.Slug+"/"),
		SEOScore:         c.SEOScore,
		ReadabilityScore: c.ReadabilityScore,
		Slug:             c.Slug,
		MetaTitle:        c.MetaTitle,
		MetaDescription:  c.MetaDescription,
	}
}

// --- Blog posts ---

// ListBlogPosts serves every non-deleted post for the admin UI.
func (a *Admin) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	items, err := a.posts.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Page: 1})
}

// GetBlogPost serves one post by ID, regardless of status.
func (a *Admin) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	post, err := a.posts.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if post == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// decodeBlogPost parses and validates a blog post payload.
func decodeBlogPost(r *http.Request) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		return nil, err
	}
	if err := sanitizeShared(&post.Content); err != nil {
		return nil, err
	}
	if err := validateBody("body", post.Body); err != nil {
		return nil, err
	}
	if err := validateExcerpt("excerpt", post.Excerpt); err != nil {
		return nil, err
	}
	if post.AuthorID == uuid.Nil {
		return nil, &models.ValidationError{Field: "author_id", Message: "author is required"}
	}
	return &post, nil
}

// CreateBlogPost saves a new post through the lifecycle manager.
func (a *Admin) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := decodeBlogPost(r)
	if err != nil {
		writeError(w, err)
		return
	}
	post.EstimateReadingTime()
	a.lifecycle.Normalize(post, time.Now())
	if err := a.posts.Create(post); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "blog_posts")
	writeJSON(w, http.StatusCreated, post)
}

// UpdateBlogPost replaces a post's editable fields. Status and lifecycle
// timestamps are preserved; status changes go through TransitionBlogPost.
func (a *Admin) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := a.posts.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeNotFound(w)
		return
	}

	post, err := decodeBlogPost(r)
	if err != nil {
		writeError(w, err)
		return
	}
	post.ID = existing.ID
	post.Status = existing.Status
	post.PublishedAt = existing.PublishedAt
	post.CreatedAt = existing.CreatedAt
	post.DeletedAt = existing.DeletedAt
	carryScores(&post.Content, &existing.Content)

	post.ReadingTimeMinutes = nil
	post.EstimateReadingTime()
	a.lifecycle.Normalize(post, time.Now())
	if err := a.posts.Update(post); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "blog_posts")
	writeJSON(w, http.StatusOK, post)
}

// TransitionBlogPost moves a post between statuses.
func (a *Admin) TransitionBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := a.posts.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if post == nil {
		writeNotFound(w)
		return
	}
	if err := a.lifecycle.Transition(post, to, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	if err := a.posts.Update(post); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "blog_posts")
	writeJSON(w, http.StatusOK, post)
}

// DeleteBlogPost soft-deletes a post. Deleting twice is a no-op.
func (a *Admin) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.posts.SoftDelete(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "blog_posts")
	w.WriteHeader(http.StatusNoContent)
}

// RestoreBlogPost brings a soft-deleted post back.
func (a *Admin) RestoreBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.posts.Restore(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "blog_posts")
	w.WriteHeader(http.StatusNoContent)
}

// FeatureBlogPost toggles the featured flag.
func (a *Admin) FeatureBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	post, err := a.posts.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if post == nil {
		writeNotFound(w)
		return
	}
	post.Featured = !post.Featured
	if err := a.posts.Update(post); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "blog_posts")
	writeJSON(w, http.StatusOK, post)
}

// PreviewBlogPost computes scores and the sharing preview without saving.
func (a *Admin) PreviewBlogPost(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		writeError(w, err)
		return
	}
	if err := sanitizeShared(&post.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.previewRecord(&post, "blog"))
}
