// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"pressfolio/internal/store"
)

// defaultDashboardLimit bounds the dashboard activity feeds.
const defaultDashboardLimit = 10

// Dashboard serves the editorial overview for the admin UI.
type Dashboard struct {
	dashboard *store.DashboardStore
}

// NewDashboard creates a new Dashboard handler group.
func NewDashboard(dashboard *store.DashboardStore) *Dashboard {
	return &Dashboard{dashboard: dashboard}
}

func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 1 || n > 100 {
		return defaultDashboardLimit
	}
	return n
}

// Overview serves the aggregate editorial snapshot: per-type status
// counts, recent edits, scheduled publications, top SEO performers, and
// the month's publish count.
func (d *Dashboard) Overview(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r)

	counts, err := d.dashboard.SyncStatus()
	if err != nil {
		writeError(w, err)
		return
	}
	recent, err := d.dashboard.RecentUpdates(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	pending, err := d.dashboard.PendingPublications(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	topSEO, err := d.dashboard.TopSEO(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	monthly, err := d.dashboard.PublishedThisMonth()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status_counts":        counts,
		"recent_updates":       recent,
		"pending_publications": pending,
		"top_seo":              topSEO,
		"published_this_month": monthly,
	})
}

// SyncStatus serves the per-type status counts on their own, for the
// lightweight header widget.
func (d *Dashboard) SyncStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := d.dashboard.SyncStatus()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
