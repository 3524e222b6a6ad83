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

// NewsItemStore handles news item database operations.
type NewsItemStore struct {
	db *sql.DB
}

// NewNewsItemStore creates a new NewsItemStore with the given database connection.
func NewNewsItemStore(db *sql.DB) *NewsItemStore {
	return &NewsItemStore{db: db}
}

const newsItemCols = contentCols + `,
	body, source_url, source_name, category_id, priority, featured`

func newsItemDest(n *models.NewsItem) []any {
	return append(contentDest(&n.Content),
		&n.Body, &n.SourceURL, &n.SourceName, &n.CategoryID, &n.Priority, &n.Featured)
}

// ListPublished returns publicly visible news, urgent items first, then
// newest first within the same priority.
func (s *NewsItemStore) ListPublished(limit, offset int) ([]models.NewsItem, error) {
	return s.list(publishedWhere+`
		ORDER BY CASE priority
			WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3
		END, published_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByCategory returns publicly visible news in one category, newest first.
func (s *NewsItemStore) ListByCategory(categoryID uuid.UUID, limit int) ([]models.NewsItem, error) {
	return s.list(publishedWhere+` AND category_id = $1 ORDER BY published_at DESC LIMIT $2`,
		categoryID, limit)
}

// ListAll returns all non-deleted news for the admin surface, newest first.
func (s *NewsItemStore) ListAll() ([]models.NewsItem, error) {
	return s.list(adminWhere + ` ORDER BY created_at DESC`)
}

func (s *NewsItemStore) list(whereAndOrder string, args ...any) ([]models.NewsItem, error) {
	rows, err := s.db.Query(`SELECT `+newsItemCols+` FROM news_items WHERE `+whereAndOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("list news items: %w", err)
	}
	defer rows.Close()

	var items []models.NewsItem
	for rows.Next() {
		var n models.NewsItem
		if err := rows.Scan(newsItemDest(&n)...); err != nil {
			return nil, fmt.Errorf("scan news item: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// FindByID retrieves a news item by its UUID. Returns nil if not found.
func (s *NewsItemStore) FindByID(id uuid.UUID) (*models.NewsItem, error) {
	return s.find(`id = $1`, id)
}

// FindBySlug retrieves a publicly visible news item by slug. Returns nil if not found.
func (s *NewsItemStore) FindBySlug(slug string) (*models.NewsItem, error) {
	return s.find(`slug = $1 AND `+publishedWhere, slug)
}

func (s *NewsItemStore) find(where string, args ...any) (*models.NewsItem, error) {
	n := &models.NewsItem{}
	err := s.db.QueryRow(`SELECT `+newsItemCols+` FROM news_items WHERE `+where, args...).
		Scan(newsItemDest(n)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news item: %w", err)
	}
	return n, nil
}

// Create inserts a new news item and writes back generated timestamps.
func (s *NewsItemStore) Create(n *models.NewsItem) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	err := s.db.QueryRow(`
		INSERT INTO news_items (
			id, title, slug, status,
			meta_title, meta_description, og_image_key, focus_keyword, secondary_keywords,
			readability_score, seo_score,
			social_media_title, social_media_description, twitter_card_type,
			published_at,
			body, source_url, source_name, category_id, priority, featured
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		RETURNING created_at, updated_at
	`,
		n.ID, n.Title, n.Slug, n.Status,
		n.MetaTitle, n.MetaDescription, n.OGImageKey, n.FocusKeyword, n.SecondaryKeywords,
		n.ReadabilityScore, n.SEOScore,
		n.SocialMediaTitle, n.SocialMediaDescription, n.TwitterCardType,
		n.PublishedAt,
		n.Body, n.SourceURL, n.SourceName, n.CategoryID, n.Priority, n.Featured,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create news item: %w", err)
	}
	return nil
}

// Update persists changes to an existing news item.
func (s *NewsItemStore) Update(n *models.NewsItem) error {
	err := s.db.QueryRow(`
		UPDATE news_items SET
			title = $2, slug = $3, status = $4,
			meta_title = $5, meta_description = $6, og_image_key = $7,
			focus_keyword = $8, secondary_keywords = $9,
			readability_score = $10, seo_score = $11,
			social_media_title = $12, social_media_description = $13, twitter_card_type = $14,
			published_at = $15,
			body = $16, source_url = $17, source_name = $18, category_id = $19,
			priority = $20, featured = $21,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`,
		n.ID, n.Title, n.Slug, n.Status,
		n.MetaTitle, n.MetaDescription, n.OGImageKey,
		n.FocusKeyword, n.SecondaryKeywords,
		n.ReadabilityScore, n.SEOScore,
		n.SocialMediaTitle, n.SocialMediaDescription, n.TwitterCardType,
		n.PublishedAt,
		n.Body, n.SourceURL, n.SourceName, n.CategoryID,
		n.Priority, n.Featured,
	).Scan(&n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update news item: %w", err)
	}
	return nil
}

// SoftDelete hides a news item from all surfaces without removing the row.
func (s *NewsItemStore) SoftDelete(id uuid.UUID) error {
	return softDelete(s.db, "news_items", id)
}

// Restore brings a soft-deleted news item back.
func (s *NewsItemStore) Restore(id uuid.UUID) error {
	return restore(s.db, "news_items", id)
}
