// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// maxBreadcrumbDepth caps ancestor walks so a cyclic parent chain cannot
// loop forever.
const maxBreadcrumbDepth = 10

// PageStore handles page database operations, including the navigation
// tree built from parent links.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageCols = contentCols + `,
	body, template, parent_id, page_order, is_homepage, show_in_menu, menu_title,
	custom_css, custom_js`

func pageDest(p *models.Page) []any {
	return append(contentDest(&p.Content),
		&p.Body, &p.Template, &p.ParentID, &p.PageOrder,
		&p.IsHomepage, &p.ShowInMenu, &p.MenuTitle,
		&p.CustomCSS, &p.CustomJS)
}

// ListPublished returns publicly visible pages in tree order.
func (s *PageStore) ListPublished() ([]models.Page, error) {
	return s.list(publishedWhere + ` ORDER BY page_order, title`)
}

// ListAll returns all non-deleted pages for the admin surface, in tree order.
func (s *PageStore) ListAll() ([]models.Page, error) {
	return s.list(adminWhere + ` ORDER BY page_order, title`)
}

// Menu returns publicly visible top-level pages flagged for navigation,
// ordered by their menu position.
func (s *PageStore) Menu() ([]models.Page, error) {
	return s.list(publishedWhere + ` AND show_in_menu AND parent_id IS NULL ORDER BY page_order, title`)
}

// Children returns publicly visible direct children of a page, ordered by
// menu position.
func (s *PageStore) Children(parentID uuid.UUID) ([]models.Page, error) {
	return s.list(publishedWhere+` AND parent_id = $1 ORDER BY page_order, title`, parentID)
}

func (s *PageStore) list(whereAndOrder string, args ...any) ([]models.Page, error) {
	rows, err := s.db.Query(`SELECT `+pageCols+` FROM pages WHERE `+whereAndOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var p models.Page
		if err := rows.Scan(pageDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// FindByID retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	return s.find(`id = $1`, id)
}

// FindBySlug retrieves a publicly visible page by slug. Returns nil if not found.
func (s *PageStore) FindBySlug(slug string) (*models.Page, error) {
	return s.find(`slug = $1 AND `+publishedWhere, slug)
}

// Homepage retrieves the publicly visible homepage. Returns nil if none is set.
func (s *PageStore) Homepage() (*models.Page, error) {
	return s.find(`is_homepage AND ` + publishedWhere)
}

func (s *PageStore) find(where string, args ...any) (*models.Page, error) {
	p := &models.Page{}
	err := s.db.QueryRow(`SELECT `+pageCols+` FROM pages WHERE `+where, args...).
		Scan(pageDest(p)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page: %w", err)
	}
	return p, nil
}

// Breadcrumbs returns the ancestor chain for a page from the root down,
// ending with the page itself. Only live ancestors appear.
func (s *PageStore) Breadcrumbs(id uuid.UUID) ([]models.Page, error) {
	var chain []models.Page
	next := &id
	for depth := 0; next != nil && depth < maxBreadcrumbDepth; depth++ {
		p, err := s.find(`id = $1 AND deleted_at IS NULL`, *next)
		if err != nil {
			return nil, err
		}
		if p == nil {
			break
		}
		chain = append(chain, *p)
		next = p.ParentID
	}
	// Reverse so the root comes first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// checkHomepage rejects a save that would create a second homepage.
func (s *PageStore) checkHomepage(p *models.Page) error {
	if !p.IsHomepage {
		return nil
	}
	var title string
	err := s.db.QueryRow(
		`SELECT title FROM pages WHERE is_homepage AND deleted_at IS NULL AND id <> $1`, p.ID).
		Scan(&title)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check homepage: %w", err)
	}
	return &models.ValidationError{
		Field:   "is_homepage",
		Message: fmt.Sprintf("%q is already set as the homepage", title),
	}
}

// Create inserts a new page and writes back generated timestamps. Saving
// a second homepage fails with a ValidationError naming the current one.
func (s *PageStore) Create(p *models.Page) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := s.checkHomepage(p); err != nil {
		return err
	}
	err := s.db.QueryRow(`
		INSERT INTO pages (
			id, title, slug, status,
			meta_title, meta_description, og_image_key, focus_keyword, secondary_keywords,
			readability_score, seo_score,
			social_media_title, social_media_description, twitter_card_type,
			published_at,
			body, template, parent_id, page_order, is_homepage, show_in_menu, menu_title,
			custom_css, custom_js
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,
			$16,$17,$18,$19,$20,$21,$22,$23,$24)
		RETURNING created_at, updated_at
	`,
		p.ID, p.Title, p.Slug, p.Status,
		p.MetaTitle, p.MetaDescription, p.OGImageKey, p.FocusKeyword, p.SecondaryKeywords,
		p.ReadabilityScore, p.SEOScore,
		p.SocialMediaTitle, p.SocialMediaDescription, p.TwitterCardType,
		p.PublishedAt,
		p.Body, p.Template, p.ParentID, p.PageOrder, p.IsHomepage, p.ShowInMenu, p.MenuTitle,
		p.CustomCSS, p.CustomJS,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	return nil
}

// Update persists changes to an existing page, enforcing the single
// homepage rule.
func (s *PageStore) Update(p *models.Page) error {
	if err := s.checkHomepage(p); err != nil {
		return err
	}
	err := s.db.QueryRow(`
		UPDATE pages SET
			title = $2, slug = $3, status = $4,
			meta_title = $5, meta_description = $6, og_image_key = $7,
			focus_keyword = $8, secondary_keywords = $9,
			readability_score = $10, seo_score = $11,
			social_media_title = $12, social_media_description = $13, twitter_card_type = $14,
			published_at = $15,
			body = $16, template = $17, parent_id = $18, page_order = $19,
			is_homepage = $20, show_in_menu = $21, menu_title = $22,
			custom_css = $23, custom_js = $24,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`,
		p.ID, p.Title, p.Slug, p.Status,
		p.MetaTitle, p.MetaDescription, p.OGImageKey,
		p.FocusKeyword, p.SecondaryKeywords,
		p.ReadabilityScore, p.SEOScore,
		p.SocialMediaTitle, p.SocialMediaDescription, p.TwitterCardType,
		p.PublishedAt,
		p.Body, p.Template, p.ParentID, p.PageOrder,
		p.IsHomepage, p.ShowInMenu, p.MenuTitle,
		p.CustomCSS, p.CustomJS,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// SoftDelete hides a page from all surfaces without removing the row.
func (s *PageStore) SoftDelete(id uuid.UUID) error {
	return softDelete(s.db, "pages", id)
}

// Restore brings a soft-deleted page back.
func (s *PageStore) Restore(id uuid.UUID) error {
	return restore(s.db, "pages", id)
}
