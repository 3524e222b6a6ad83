// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements PostgreSQL persistence for all content types.
// Every content table carries the same shared lifecycle/SEO columns; the
// helpers here keep the per-type stores from repeating them.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// contentCols is the shared column list present on every content table,
// in the order contentDest scans them.
const contentCols = `id, title, slug, status,
	meta_title, meta_description, og_image_key, focus_keyword, secondary_keywords,
	readability_score, seo_score,
	social_media_title, social_media_description, twitter_card_type,
	published_at, created_at, updated_at, deleted_at`

// publishedWhere is the public visibility predicate in SQL. It mirrors
// lifecycle.IsVisible and is applied by every public read path.
const publishedWhere = `status = 'published' AND (published_at IS NULL OR published_at <= NOW()) AND deleted_at IS NULL`

// adminWhere is the admin visibility predicate: soft-deleted rows are
// hidden, drafts and archived rows are not.
const adminWhere = `deleted_at IS NULL`

// contentDest returns scan destinations matching contentCols.
func contentDest(c *models.Content) []any {
	return []any{
		&c.ID, &c.Title, &c.Slug, &c.Status,
		&c.MetaTitle, &c.MetaDescription, &c.OGImageKey, &c.FocusKeyword, &c.SecondaryKeywords,
		&c.ReadabilityScore, &c.SEOScore,
		&c.SocialMediaTitle, &c.SocialMediaDescription, &c.TwitterCardType,
		&c.PublishedAt, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	}
}

// softDelete marks a row deleted. Already-deleted rows keep their
// original deletion time.
func softDelete(db *sql.DB, table string, id uuid.UUID) error {
	_, err := db.Exec(
		`UPDATE `+table+` SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", table, err)
	}
	return nil
}

// restore clears the soft-delete marker. Restoring a live row is a no-op.
func restore(db *sql.DB, table string, id uuid.UUID) error {
	_, err := db.Exec(
		`UPDATE `+table+` SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("restore %s: %w", table, err)
	}
	return nil
}

// loadIDs reads the related IDs from a join table, ordered for stable
// output.
func loadIDs(db *sql.DB, table, ownerCol, relCol string, owner uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(
		`SELECT `+relCol+` FROM `+table+` WHERE `+ownerCol+` = $1 ORDER BY `+relCol, owner)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// replaceIDs rewrites the join table rows for one owner.
func replaceIDs(db *sql.DB, table, ownerCol, relCol string, owner uuid.UUID, ids []uuid.UUID) error {
	if _, err := db.Exec(`DELETE FROM `+table+` WHERE `+ownerCol+` = $1`, owner); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	for _, id := range ids {
		if _, err := db.Exec(
			`INSERT INTO `+table+` (`+ownerCol+`, `+relCol+`) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			owner, id); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}
