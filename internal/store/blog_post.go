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

// BlogPostStore handles blog post database operations.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore creates a new BlogPostStore with the given database connection.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

const blogPostCols = contentCols + `,
	excerpt, body, cover_image_key, author_id, reading_time_minutes, featured, allow_comments`

func blogPostDest(p *models.BlogPost) []any {
	return append(contentDest(&p.Content),
		&p.Excerpt, &p.Body, &p.CoverImageKey, &p.AuthorID,
		&p.ReadingTimeMinutes, &p.Featured, &p.AllowComments)
}

// ListPublished returns publicly visible posts, newest first.
func (s *BlogPostStore) ListPublished(limit, offset int) ([]models.BlogPost, error) {
	return s.list(publishedWhere+` ORDER BY published_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListFeatured returns publicly visible featured posts, newest first.
func (s *BlogPostStore) ListFeatured(limit int) ([]models.BlogPost, error) {
	return s.list(publishedWhere+` AND featured ORDER BY published_at DESC LIMIT $1`, limit)
}

// ListAll returns all non-deleted posts for the admin surface, newest first.
func (s *BlogPostStore) ListAll() ([]models.BlogPost, error) {
	return s.list(adminWhere + ` ORDER BY created_at DESC`)
}

func (s *BlogPostStore) list(whereAndOrder string, args ...any) ([]models.BlogPost, error) {
	rows, err := s.db.Query(`SELECT `+blogPostCols+` FROM blog_posts WHERE `+whereAndOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(blogPostDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *BlogPostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	return s.find(`id = $1`, id)
}

// FindBySlug retrieves a publicly visible post by slug. Returns nil if not found.
func (s *BlogPostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	return s.find(`slug = $1 AND `+publishedWhere, slug)
}

func (s *BlogPostStore) find(where string, args ...any) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.db.QueryRow(`SELECT `+blogPostCols+` FROM blog_posts WHERE `+where, args...).
		Scan(blogPostDest(p)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	if p.CategoryIDs, err = loadIDs(s.db, "blog_post_categories", "blog_post_id", "category_id", p.ID); err != nil {
		return nil, err
	}
	if p.TagIDs, err = loadIDs(s.db, "blog_post_tags", "blog_post_id", "tag_id", p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post and writes back generated timestamps.
func (s *BlogPostStore) Create(p *models.BlogPost) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	err := s.db.QueryRow(`
		INSERT INTO blog_posts (
			id, title, slug, status,
			meta_title, meta_description, og_image_key, focus_keyword, secondary_keywords,
			readability_score, seo_score,
			social_media_title, social_media_description, twitter_card_type,
			published_at,
			excerpt, body, cover_image_key, author_id, reading_time_minutes, featured, allow_comments
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		RETURNING created_at, updated_at
	`,
		p.ID, p.Title, p.Slug, p.Status,
		p.MetaTitle, p.MetaDescription, p.OGImageKey, p.FocusKeyword, p.SecondaryKeywords,
		p.ReadabilityScore, p.SEOScore,
		p.SocialMediaTitle, p.SocialMediaDescription, p.TwitterCardType,
		p.PublishedAt,
		p.Excerpt, p.Body, p.CoverImageKey, p.AuthorID, p.ReadingTimeMinutes, p.Featured, p.AllowComments,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}
	return s.saveRelations(p)
}

// Update persists changes to an existing post.
func (s *BlogPostStore) Update(p *models.BlogPost) error {
	err := s.db.QueryRow(`
		UPDATE blog_posts SET
			title = $2, slug = $3, status = $4,
			meta_title = $5, meta_description = $6, og_image_key = $7,
			focus_keyword = $8, secondary_keywords = $9,
			readability_score = $10, seo_score = $11,
			social_media_title = $12, social_media_description = $13, twitter_card_type = $14,
			published_at = $15,
			excerpt = $16, body = $17, cover_image_key = $18, author_id = $19,
			reading_time_minutes = $20, featured = $21, allow_comments = $22,
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
		p.Excerpt, p.Body, p.CoverImageKey, p.AuthorID,
		p.ReadingTimeMinutes, p.Featured, p.AllowComments,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return s.saveRelations(p)
}

func (s *BlogPostStore) saveRelations(p *models.BlogPost) error {
	if err := replaceIDs(s.db, "blog_post_categories", "blog_post_id", "category_id", p.ID, p.CategoryIDs); err != nil {
		return err
	}
	return replaceIDs(s.db, "blog_post_tags", "blog_post_id", "tag_id", p.ID, p.TagIDs)
}

// SoftDelete hides a post from all surfaces without removing the row.
func (s *BlogPostStore) SoftDelete(id uuid.UUID) error {
	return softDelete(s.db, "blog_posts", id)
}

// Restore brings a soft-deleted post back.
func (s *BlogPostStore) Restore(id uuid.UUID) error {
	return restore(s.db, "blog_posts", id)
}
