// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// CourseStore handles course database operations.
type CourseStore struct {
	db *sql.DB
}

// NewCourseStore creates a new CourseStore with the given database connection.
func NewCourseStore(db *sql.DB) *CourseStore {
	return &CourseStore{db: db}
}

const courseCols = contentCols + `,
	subtitle, description, thumbnail_key, price_cents, is_free, level, language,
	duration_hours, instructor_id, prerequisites, learning_outcomes, certificate_available`

// ListPublished returns publicly visible courses, newest first.
func (s *CourseStore) ListPublished(limit, offset int) ([]models.Course, error) {
	return s.list(publishedWhere+` ORDER BY published_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListFree returns publicly visible free courses, newest first.
func (s *CourseStore) ListFree(limit int) ([]models.Course, error) {
	return s.list(publishedWhere+` AND is_free ORDER BY published_at DESC LIMIT $1`, limit)
}

// ListByLevel returns publicly visible courses at one level, newest first.
func (s *CourseStore) ListByLevel(level models.CourseLevel, limit int) ([]models.Course, error) {
	return s.list(publishedWhere+` AND level = $1 ORDER BY published_at DESC LIMIT $2`, level, limit)
}

// ListAll returns all non-deleted courses for the admin surface, newest first.
func (s *CourseStore) ListAll() ([]models.Course, error) {
	return s.list(adminWhere + ` ORDER BY created_at DESC`)
}

func (s *CourseStore) list(whereAndOrder string, args ...any) ([]models.Course, error) {
	rows, err := s.db.Query(`SELECT `+courseCols+` FROM courses WHERE `+whereAndOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

func scanCourse(scan func(...any) error) (*models.Course, error) {
	c := &models.Course{}
	var outcomes []byte
	dest := append(contentDest(&c.Content),
		&c.Subtitle, &c.Description, &c.ThumbnailKey, &c.PriceCents, &c.IsFree,
		&c.Level, &c.Language, &c.DurationHours, &c.InstructorID,
		&c.Prerequisites, &outcomes, &c.CertificateAvailable)
	if err := scan(dest...); err != nil {
		return nil, fmt.Errorf("scan course: %w", err)
	}
	if len(outcomes) > 0 {
		if err := json.Unmarshal(outcomes, &c.LearningOutcomes); err != nil {
			return nil, fmt.Errorf("decode learning outcomes: %w", err)
		}
	}
	return c, nil
}

// FindByID retrieves a course by its UUID. Returns nil if not found.
func (s *CourseStore) FindByID(id uuid.UUID) (*models.Course, error) {
	return s.find(`id = $1`, id)
}

// FindBySlug retrieves a publicly visible course by slug. Returns nil if not found.
func (s *CourseStore) FindBySlug(slug string) (*models.Course, error) {
	return s.find(`slug = $1 AND `+publishedWhere, slug)
}

func (s *CourseStore) find(where string, args ...any) (*models.Course, error) {
	row := s.db.QueryRow(`SELECT `+courseCols+` FROM courses WHERE `+where, args...)
	c, err := scanCourse(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if c.CategoryIDs, err = loadIDs(s.db, "course_categories", "course_id", "category_id", c.ID); err != nil {
		return nil, err
	}
	if c.TagIDs, err = loadIDs(s.db, "course_tags", "course_id", "tag_id", c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new course and writes back generated timestamps.
func (s *CourseStore) Create(c *models.Course) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	outcomes, err := json.Marshal(c.LearningOutcomes)
	if err != nil {
		return fmt.Errorf("encode learning outcomes: %w", err)
	}
	err = s.db.QueryRow(`
		INSERT INTO courses (
			id, title, slug, status,
			meta_title, meta_description, og_image_key, focus_keyword, secondary_keywords,
			readability_score, seo_score,
			social_media_title, social_media_description, twitter_card_type,
			published_at,
			subtitle, description, thumbnail_key, price_cents, is_free, level, language,
			duration_hours, instructor_id, prerequisites, learning_outcomes, certificate_available
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,
			$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
		RETURNING created_at, updated_at
	`,
		c.ID, c.Title, c.Slug, c.Status,
		c.MetaTitle, c.MetaDescription, c.OGImageKey, c.FocusKeyword, c.SecondaryKeywords,
		c.ReadabilityScore, c.SEOScore,
		c.SocialMediaTitle, c.SocialMediaDescription, c.TwitterCardType,
		c.PublishedAt,
		c.Subtitle, c.Description, c.ThumbnailKey, c.PriceCents, c.IsFree, c.Level, c.Language,
		c.DurationHours, c.InstructorID, c.Prerequisites, outcomes, c.CertificateAvailable,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return s.saveRelations(c)
}

// Update persists changes to an existing course.
func (s *CourseStore) Update(c *models.Course) error {
	outcomes, err := json.Marshal(c.LearningOutcomes)
	if err != nil {
		return fmt.Errorf("encode learning outcomes: %w", err)
	}
	err = s.db.QueryRow(`
		UPDATE courses SET
			title = $2, slug = $3, status = $4,
			meta_title = $5, meta_description = $6, og_image_key = $7,
			focus_keyword = $8, secondary_keywords = $9,
			readability_score = $10, seo_score = $11,
			social_media_title = $12, social_media_description = $13, twitter_card_type = $14,
			published_at = $15,
			subtitle = $16, description = $17, thumbnail_key = $18, price_cents = $19,
			is_free = $20, level = $21, language = $22, duration_hours = $23,
			instructor_id = $24, prerequisites = $25, learning_outcomes = $26,
			certificate_available = $27,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`,
		c.ID, c.Title, c.Slug, c.Status,
		c.MetaTitle, c.MetaDescription, c.OGImageKey,
		c.FocusKeyword, c.SecondaryKeywords,
		c.ReadabilityScore, c.SEOScore,
		c.SocialMediaTitle, c.SocialMediaDescription, c.TwitterCardType,
		c.PublishedAt,
		c.Subtitle, c.Description, c.ThumbnailKey, c.PriceCents,
		c.IsFree, c.Level, c.Language, c.DurationHours,
		c.InstructorID, c.Prerequisites, outcomes,
		c.CertificateAvailable,
	).Scan(&c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return s.saveRelations(c)
}

func (s *CourseStore) saveRelations(c *models.Course) error {
	if err := replaceIDs(s.db, "course_categories", "course_id", "category_id", c.ID, c.CategoryIDs); err != nil {
		return err
	}
	return replaceIDs(s.db, "course_tags", "course_id", "tag_id", c.ID, c.TagIDs)
}

// SoftDelete hides a course from all surfaces without removing the row.
func (s *CourseStore) SoftDelete(id uuid.UUID) error {
	return softDelete(s.db, "courses", id)
}

// Restore brings a soft-deleted course back.
func (s *CourseStore) Restore(id uuid.UUID) error {
	return restore(s.db, "courses", id)
}
