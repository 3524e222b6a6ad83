// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// contentTables maps API type names to their tables. The dashboard runs
// the same aggregate query against each.
var contentTables = map[string]string{
	"blog_posts": "blog_posts",
	"courses":    "courses",
	"news_items": "news_items",
	"pages":      "pages",
	"projects":   "projects",
}

// featuredTables names the content tables that carry a featured flag.
var featuredTables = map[string]bool{
	"blog_posts": true,
	"news_items": true,
	"projects":   true,
}

// StatusCounts summarizes one content type for the dashboard.
type StatusCounts struct {
	Draft           int `json:"draft"`
	Published       int `json:"published"`
	Archived        int `json:"archived"`
	Featured        int `json:"featured"`
	Deleted         int `json:"deleted"`
	UpdatedLastHour int `json:"updated_last_hour"`
	Total           int `json:"total"`
}

// RecentItem is a row in the dashboard's recent activity feed.
type RecentItem struct {
	Type        string        `json:"type"`
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Status      models.Status `json:"status"`
	SEOScore    *int          `json:"seo_score,omitempty"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// DashboardStore aggregates editorial statistics across all content tables.
type DashboardStore struct {
	db *sql.DB
}

// NewDashboardStore creates a new DashboardStore with the given database connection.
func NewDashboardStore(db *sql.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

// SyncStatus returns per-type status counts. Deleted rows are counted
// separately and excluded from the status buckets.
func (s *DashboardStore) SyncStatus() (map[string]StatusCounts, error) {
	out := make(map[string]StatusCounts, len(contentTables))
	for name, table := range contentTables {
		var c StatusCounts
		err := s.db.QueryRow(`
			SELECT
				COUNT(*) FILTER (WHERE status = 'draft' AND deleted_at IS NULL),
				COUNT(*) FILTER (WHERE status = 'published' AND deleted_at IS NULL),
				COUNT(*) FILTER (WHERE status = 'archived' AND deleted_at IS NULL),
				COUNT(*) FILTER (WHERE deleted_at IS NOT NULL),
				COUNT(*) FILTER (WHERE updated_at >= NOW() - INTERVAL '1 hour' AND deleted_at IS NULL),
				COUNT(*)
			FROM ` + table,
		).Scan(&c.Draft, &c.Published, &c.Archived, &c.Deleted, &c.UpdatedLastHour, &c.Total)
		if err != nil {
			return nil, fmt.Errorf("sync status %s: %w", table, err)
		}
		if featuredTables[name] {
			err := s.db.QueryRow(
				`SELECT COUNT(*) FROM ` + table + ` WHERE featured AND deleted_at IS NULL`,
			).Scan(&c.Featured)
			if err != nil {
				return nil, fmt.Errorf("sync status featured %s: %w", table, err)
			}
		}
		out[name] = c
	}
	return out, nil
}

// RecentUpdates returns the most recently edited live items across every
// content type, newest first.
func (s *DashboardStore) RecentUpdates(limit int) ([]RecentItem, error) {
	return s.queryItems(`deleted_at IS NULL`, `updated_at DESC`, limit)
}

// PendingPublications returns items published with a future timestamp,
// soonest first. They stay off the public surface until the timestamp
// passes.
func (s *DashboardStore) PendingPublications(limit int) ([]RecentItem, error) {
	return s.queryItems(
		`status = 'published' AND published_at > NOW() AND deleted_at IS NULL`,
		`published_at ASC`, limit)
}

// TopSEO returns live items with an SEO score of 80 or better, best first.
func (s *DashboardStore) TopSEO(limit int) ([]RecentItem, error) {
	return s.queryItems(`seo_score >= 80 AND deleted_at IS NULL`, `seo_score DESC, updated_at DESC`, limit)
}

// PublishedThisMonth counts items that went live since the start of the
// current calendar month.
func (s *DashboardStore) PublishedThisMonth() (int, error) {
	total := 0
	for _, table := range contentTables {
		var n int
		err := s.db.QueryRow(`
			SELECT COUNT(*) FROM ` + table + `
			WHERE status = 'published' AND deleted_at IS NULL
			  AND published_at >= date_trunc('month', NOW())
			  AND published_at <= NOW()`,
		).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("published this month %s: %w", table, err)
		}
		total += n
	}
	return total, nil
}

// queryItems unions the shared columns of every content table under one
// predicate. The per-table queries stay simple at the cost of sorting the
// merged result in SQL via the outer ORDER BY.
func (s *DashboardStore) queryItems(where, order string, limit int) ([]RecentItem, error) {
	q := `SELECT * FROM (`
	first := true
	for name, table := range contentTables {
		if !first {
			q += ` UNION ALL `
		}
		first = false
		q += fmt.Sprintf(
			`SELECT '%s' AS type, id, title, slug, status, seo_score, published_at, updated_at FROM %s WHERE %s`,
			name, table, where)
	}
	q += `) items ORDER BY ` + order + ` LIMIT $1`

	rows, err := s.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard items: %w", err)
	}
	defer rows.Close()

	var items []RecentItem
	for rows.Next() {
		var it RecentItem
		if err := rows.Scan(&it.Type, &it.ID, &it.Title, &it.Slug, &it.Status, &it.SEOScore, &it.PublishedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan dashboard item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
