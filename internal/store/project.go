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

// ProjectStore handles portfolio project database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectCols = contentCols + `,
	summary, description, thumbnail_key, github_url, live_url, demo_video_url,
	project_type, completion_date, featured, difficulty`

func projectDest(p *models.Project) []any {
	return append(contentDest(&p.Content),
		&p.Summary, &p.Description, &p.ThumbnailKey, &p.GithubURL, &p.LiveURL, &p.DemoVideoURL,
		&p.Type, &p.CompletionDate, &p.Featured, &p.Difficulty)
}

// ListPublished returns publicly visible projects, most recently completed
// first.
func (s *ProjectStore) ListPublished(limit, offset int) ([]models.Project, error) {
	return s.list(publishedWhere+` ORDER BY completion_date DESC NULLS LAST, published_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

// ListFeatured returns publicly visible featured projects.
func (s *ProjectStore) ListFeatured(limit int) ([]models.Project, error) {
	return s.list(publishedWhere+` AND featured ORDER BY completion_date DESC NULLS LAST LIMIT $1`, limit)
}

// ListByType returns publicly visible projects of one type.
func (s *ProjectStore) ListByType(t models.ProjectType, limit int) ([]models.Project, error) {
	return s.list(publishedWhere+` AND project_type = $1 ORDER BY completion_date DESC NULLS LAST LIMIT $2`,
		t, limit)
}

// ListAll returns all non-deleted projects for the admin surface, newest first.
func (s *ProjectStore) ListAll() ([]models.Project, error) {
	return s.list(adminWhere + ` ORDER BY created_at DESC`)
}

func (s *ProjectStore) list(whereAndOrder string, args ...any) ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT `+projectCols+` FROM projects WHERE `+whereAndOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(projectDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	return s.find(`id = $1`, id)
}

// FindBySlug retrieves a publicly visible project by slug. Returns nil if not found.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	return s.find(`slug = $1 AND `+publishedWhere, slug)
}

func (s *ProjectStore) find(where string, args ...any) (*models.Project, error) {
	p := &models.Project{}
	err := s.db.QueryRow(`SELECT `+projectCols+` FROM projects WHERE `+where, args...).
		Scan(projectDest(p)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if p.TechnologyIDs, err = loadIDs(s.db, "project_technologies", "project_id", "technology_id", p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new project and writes back generated timestamps.
func (s *ProjectStore) Create(p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	err := s.db.QueryRow(`
		INSERT INTO projects (
			id, title, slug, status,
			meta_title, meta_description, og_image_key, focus_keyword, secondary_keywords,
			readability_score, seo_score,
			social_media_title, social_media_description, twitter_card_type,
			published_at,
			summary, description, thumbnail_key, github_url, live_url, demo_video_url,
			project_type, completion_date, featured, difficulty
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,
			$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
		RETURNING created_at, updated_at
	`,
		p.ID, p.Title, p.Slug, p.Status,
		p.MetaTitle, p.MetaDescription, p.OGImageKey, p.FocusKeyword, p.SecondaryKeywords,
		p.ReadabilityScore, p.SEOScore,
		p.SocialMediaTitle, p.SocialMediaDescription, p.TwitterCardType,
		p.PublishedAt,
		p.Summary, p.Description, p.ThumbnailKey, p.GithubURL, p.LiveURL, p.DemoVideoURL,
		p.Type, p.CompletionDate, p.Featured, p.Difficulty,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return replaceIDs(s.db, "project_technologies", "project_id", "technology_id", p.ID, p.TechnologyIDs)
}

// Update persists changes to an existing project.
func (s *ProjectStore) Update(p *models.Project) error {
	err := s.db.QueryRow(`
		UPDATE projects SET
			title = $2, slug = $3, status = $4,
			meta_title = $5, meta_description = $6, og_image_key = $7,
			focus_keyword = $8, secondary_keywords = $9,
			readability_score = $10, seo_score = $11,
			social_media_title = $12, social_media_description = $13, twitter_card_type = $14,
			published_at = $15,
			summary = $16, description = $17, thumbnail_key = $18,
			github_url = $19, live_url = $20, demo_video_url = $21,
			project_type = $22, completion_date = $23, featured = $24, difficulty = $25,
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
		p.Summary, p.Description, p.ThumbnailKey,
		p.GithubURL, p.LiveURL, p.DemoVideoURL,
		p.Type, p.CompletionDate, p.Featured, p.Difficulty,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return replaceIDs(s.db, "project_technologies", "project_id", "technology_id", p.ID, p.TechnologyIDs)
}

// SoftDelete hides a project from all surfaces without removing the row.
func (s *ProjectStore) SoftDelete(id uuid.UUID) error {
	return softDelete(s.db, "projects", id)
}

// Restore brings a soft-deleted project back.
func (s *ProjectStore) Restore(id uuid.UUID) error {
	return restore(s.db, "projects", id)
}
