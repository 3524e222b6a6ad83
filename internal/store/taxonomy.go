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

// TaxonomyStore handles the small lookup tables: categories, tags, news
// categories, and technologies. They share a name/slug shape, so one
// store covers all four.
type TaxonomyStore struct {
	db *sql.DB
}

// NewTaxonomyStore creates a new TaxonomyStore with the given database connection.
func NewTaxonomyStore(db *sql.DB) *TaxonomyStore {
	return &TaxonomyStore{db: db}
}

// Categories returns all categories ordered by name.
func (s *TaxonomyStore) Categories() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Tags returns all tags ordered by name.
func (s *TaxonomyStore) Tags() ([]models.Tag, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var out []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// NewsCategories returns all news categories ordered by name.
func (s *TaxonomyStore) NewsCategories() ([]models.NewsCategory, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM news_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list news categories: %w", err)
	}
	defer rows.Close()

	var out []models.NewsCategory
	for rows.Next() {
		var c models.NewsCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan news category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Technologies returns all technologies ordered by name.
func (s *TaxonomyStore) Technologies() ([]models.Technology, error) {
	rows, err := s.db.Query(`SELECT id, name, slug, icon FROM technologies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	defer rows.Close()

	var out []models.Technology
	for rows.Next() {
		var t models.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Icon); err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateCategory inserts a category, reusing an existing row on slug conflict.
func (s *TaxonomyStore) CreateCategory(name, slug string) (*models.Category, error) {
	c := &models.Category{Name: name, Slug: slug}
	err := s.db.QueryRow(`
		INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, uuid.New(), name, slug).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// CreateTag inserts a tag, reusing an existing row on slug conflict.
func (s *TaxonomyStore) CreateTag(name, slug string) (*models.Tag, error) {
	t := &models.Tag{Name: name, Slug: slug}
	err := s.db.QueryRow(`
		INSERT INTO tags (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, uuid.New(), name, slug).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return t, nil
}

// CreateNewsCategory inserts a news category, reusing an existing row on
// slug conflict.
func (s *TaxonomyStore) CreateNewsCategory(name, slug string) (*models.NewsCategory, error) {
	c := &models.NewsCategory{Name: name, Slug: slug}
	err := s.db.QueryRow(`
		INSERT INTO news_categories (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, uuid.New(), name, slug).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("create news category: %w", err)
	}
	return c, nil
}

// CreateTechnology inserts a technology, reusing an existing row on slug
// conflict.
func (s *TaxonomyStore) CreateTechnology(name, slug, icon string) (*models.Technology, error) {
	t := &models.Technology{Name: name, Slug: slug, Icon: icon}
	err := s.db.QueryRow(`
		INSERT INTO technologies (id, name, slug, icon) VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, icon = EXCLUDED.icon
		RETURNING id
	`, uuid.New(), name, slug, icon).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("create technology: %w", err)
	}
	return t, nil
}
