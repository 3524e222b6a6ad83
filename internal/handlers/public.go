// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pressfolio/internal/cache"
	"pressfolio/internal/markdown"
	"pressfolio/internal/models"
	"pressfolio/internal/seo"
	"pressfolio/internal/storage"
	"pressfolio/internal/store"
)

// defaultPageSize bounds public listings.
const defaultPageSize = 20

// Public groups the read-only handlers serving visible content. Listing
// and detail responses are cached in Valkey; admin writes invalidate the
// affected type.
type Public struct {
	posts    *store.BlogPostStore
	courses  *store.CourseStore
	news     *store.NewsItemStore
	pages    *store.PageStore
	projects *store.ProjectStore
	users    *store.UserStore
	taxonomy *store.TaxonomyStore

	storageClient *storage.Client
	respCache     *cache.ResponseCache
	site          seo.SiteInfo
}

// NewPublic creates a new Public handler group. storageClient may be nil
// if S3 is not configured; respCache may be nil if Valkey is down.
func NewPublic(
	posts *store.BlogPostStore,
	courses *store.CourseStore,
	news *store.NewsItemStore,
	pages *store.PageStore,
	projects *store.ProjectStore,
	users *store.UserStore,
	taxonomy *store.TaxonomyStore,
	storageClient *storage.Client,
	respCache *cache.ResponseCache,
	site seo.SiteInfo,
) *Public {
	return &Public{
		posts:         posts,
		courses:       courses,
		news:          news,
		pages:         pages,
		projects:      projects,
		users:         users,
		taxonomy:      taxonomy,
		storageClient: storageClient,
		respCache:     respCache,
		site:          site,
	}
}

// pageParam reads ?page, returning a 1-based page number.
func pageParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// cached serves a response from Valkey when present; otherwise it runs
// build, stores the result, and serves it. Cache failures fall through to
// a direct build.
func (p *Public) cached(w http.ResponseWriter, r *http.Request, key string, build func() (any, error)) {
	ctx := r.Context()
	if p.respCache != nil {
		if body, ok := p.respCache.Get(ctx, key); ok {
			writeRaw(w, http.StatusOK, body)
			return
		}
	}

	v, err := build()
	if err != nil {
		writeError(w, err)
		return
	}
	if v == nil {
		writeNotFound(w)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		writeError(w, fmt.Errorf("encode response: %w", err))
		return
	}
	if p.respCache != nil {
		p.respCache.Set(ctx, key, buf.Bytes())
	}
	writeRaw(w, http.StatusOK, buf.Bytes())
}

// renderBody converts Markdown to HTML, logging and returning the raw
// text on failure rather than dropping the content.
func renderBody(source string) string {
	html, err := markdown.ToHTML(source)
	if err != nil {
		slog.Warn("markdown render failed", "error", err)
		return source
	}
	return html
}

// detail wraps a content record with its rendered body and sharing data.
type detail struct {
	Item     any             `json:"item"`
	BodyHTML string          `json:"body_html,omitempty"`
	Preview  seo.Preview     `json:"preview"`
	JSONLD   json.RawMessage `json:"json_ld,omitempty"`
}

// listResponse wraps a public listing.
type listResponse struct {
	Items any `json:"items"`
	Page  int `json:"page"`
}

func (p *Public) imageURL(key string) string {
	return p.storageClient.URL(key)
}

func (p *Public) canonical(section, slug string) string {
	return fmt.Sprintf("%s/%s/%s/", p.site.BaseURL, section, slug)
}

// authorName resolves a user's display name, tolerating missing rows.
func (p *Public) authorName(id uuid.UUID) string {
	u, err := p.users.FindByID(id)
	if err != nil || u == nil {
		return ""
	}
	return u.DisplayName
}

// ListBlogPosts serves visible blog posts, newest first.
func (p *Public) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	p.cached(w, r, cache.Key("blog_posts", fmt.Sprintf("list:%d", page)), func() (any, error) {
		items, err := p.posts.ListPublished(defaultPageSize, (page-1)*defaultPageSize)
		if err != nil {
			return nil, err
		}
		return listResponse{Items: items, Page: page}, nil
	})
}

// GetBlogPost serves one visible blog post by slug, with rendered body
// and structured data.
func (p *Public) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.cached(w, r, cache.Key("blog_posts", "slug:"+slugParam), func() (any, error) {
		post, err := p.posts.FindBySlug(slugParam)
		if err != nil || post == nil {
			return nil, err
		}
		imageURL := p.imageURL(post.OGImageKey)
		author := p.authorName(post.AuthorID)
		jsonLD, err := seo.BlogPostingSchema(post, author, p.site, imageURL)
		if err != nil {
			return nil, err
		}
		return detail{
			Item:     post,
			BodyHTML: renderBody(post.Body),
			Preview:  seo.BuildPreview(post, imageURL, p.canonical("blog", post.Slug)),
			JSONLD:   jsonLD,
		}, nil
	})
}

// ListCourses serves visible courses, newest first.
func (p *Public) ListCourses(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	p.cached(w, r, cache.Key("courses", fmt.Sprintf("list:%d", page)), func() (any, error) {
		items, err := p.courses.ListPublished(defaultPageSize, (page-1)*defaultPageSize)
		if err != nil {
			return nil, err
		}
		return listResponse{Items: items, Page: page}, nil
	})
}

// GetCourse serves one visible course by slug.
func (p *Public) GetCourse(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.cached(w, r, cache.Key("courses", "slug:"+slugParam), func() (any, error) {
		course, err := p.courses.FindBySlug(slugParam)
		if err != nil || course == nil {
			return nil, err
		}
		imageURL := p.imageURL(course.OGImageKey)
		instructor := p.authorName(course.InstructorID)
		jsonLD, err := seo.CourseSchema(course, instructor, p.site, imageURL)
		if err != nil {
			return nil, err
		}
		return detail{
			Item:     course,
			BodyHTML: renderBody(course.Description),
			Preview:  seo.BuildPreview(course, imageURL, p.canonical("courses", course.Slug)),
			JSONLD:   jsonLD,
		}, nil
	})
}

// ListNews serves visible news, urgent first.
func (p *Public) ListNews(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	p.cached(w, r, cache.Key("news_items", fmt.Sprintf("list:%d", page)), func() (any, error) {
		items, err := p.news.ListPublished(defaultPageSize, (page-1)*defaultPageSize)
		if err != nil {
			return nil, err
		}
		return listResponse{Items: items, Page: page}, nil
	})
}

// GetNewsItem serves one visible news item by slug.
func (p *Public) GetNewsItem(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.cached(w, r, cache.Key("news_items", "slug:"+slugParam), func() (any, error) {
		item, err := p.news.FindBySlug(slugParam)
		if err != nil || item == nil {
			return nil, err
		}
		imageURL := p.imageURL(item.OGImageKey)
		jsonLD, err := seo.NewsArticleSchema(item, p.site, imageURL)
		if err != nil {
			return nil, err
		}
		return detail{
			Item:     item,
			BodyHTML: renderBody(item.Body),
			Preview:  seo.BuildPreview(item, imageURL, p.canonical("news", item.Slug)),
			JSONLD:   jsonLD,
		}, nil
	})
}

// ListProjects serves visible projects, most recently completed first.
func (p *Public) ListProjects(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	p.cached(w, r, cache.Key("projects", fmt.Sprintf("list:%d", page)), func() (any, error) {
		items, err := p.projects.ListPublished(defaultPageSize, (page-1)*defaultPageSize)
		if err != nil {
			return nil, err
		}
		return listResponse{Items: items, Page: page}, nil
	})
}

// GetProject serves one visible project by slug.
func (p *Public) GetProject(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.cached(w, r, cache.Key("projects", "slug:"+slugParam), func() (any, error) {
		project, err := p.projects.FindBySlug(slugParam)
		if err != nil || project == nil {
			return nil, err
		}
		imageURL := p.imageURL(project.OGImageKey)
		jsonLD, err := seo.CreativeWorkSchema(project, imageURL)
		if err != nil {
			return nil, err
		}
		return detail{
			Item:     project,
			BodyHTML: renderBody(project.Description),
			Preview:  seo.BuildPreview(project, imageURL, p.canonical("projects", project.Slug)),
			JSONLD:   jsonLD,
		}, nil
	})
}

// Menu serves the top-level navigation pages.
func (p *Public) Menu(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.Key("pages", "menu"), func() (any, error) {
		pages, err := p.pages.Menu()
		if err != nil {
			return nil, err
		}
		type menuEntry struct {
			Title string `json:"title"`
			Slug  string `json:"slug"`
		}
		entries := make([]menuEntry, 0, len(pages))
		for i := range pages {
			pages[i].DefaultMenuTitle()
			entries = append(entries, menuEntry{Title: pages[i].MenuTitle, Slug: pages[i].Slug})
		}
		return map[string]any{"items": entries}, nil
	})
}

// Homepage serves the page flagged as homepage.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.Key("pages", "homepage"), func() (any, error) {
		page, err := p.pages.Homepage()
		if err != nil || page == nil {
			return nil, err
		}
		return p.pageDetail(page)
	})
}

// GetPage serves one visible page by slug, with breadcrumbs.
func (p *Public) GetPage(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	p.cached(w, r, cache.Key("pages", "slug:"+slugParam), func() (any, error) {
		page, err := p.pages.FindBySlug(slugParam)
		if err != nil || page == nil {
			return nil, err
		}
		return p.pageDetail(page)
	})
}

func (p *Public) pageDetail(page *models.Page) (any, error) {
	crumbs, err := p.pages.Breadcrumbs(page.ID)
	if err != nil {
		return nil, err
	}
	type crumb struct {
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	trail := make([]crumb, 0, len(crumbs))
	for _, c := range crumbs {
		trail = append(trail, crumb{Title: c.Title, Slug: c.Slug})
	}
	imageURL := p.imageURL(page.OGImageKey)
	return struct {
		detail
		Breadcrumbs []crumb `json:"breadcrumbs"`
	}{
		detail: detail{
			Item:     page,
			BodyHTML: renderBody(page.Body),
			Preview:  seo.BuildPreview(page, imageURL, p.canonical("pages", page.Slug)),
		},
		Breadcrumbs: trail,
	}, nil
}

// Taxonomy serves the lookup tables the frontend filters by.
func (p *Public) Taxonomy(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.Key("taxonomy", "all"), func() (any, error) {
		categories, err := p.taxonomy.Categories()
		if err != nil {
			return nil, err
		}
		tags, err := p.taxonomy.Tags()
		if err != nil {
			return nil, err
		}
		newsCategories, err := p.taxonomy.NewsCategories()
		if err != nil {
			return nil, err
		}
		technologies, err := p.taxonomy.Technologies()
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"categories":      categories,
			"tags":            tags,
			"news_categories": newsCategories,
			"technologies":    technologies,
		}, nil
	})
}
