// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

import (
	"time"

	"pressfolio/internal/models"
)

// IsVisible reports whether a record appears in public read paths:
// published, past its publish time, and not soft-deleted. Every public
// listing and detail query applies this predicate (in SQL via the store's
// published filter).
func IsVisible(c *models.Content, now time.Time) bool {
	if c.Status != models.StatusPublished {
		return false
	}
	if c.PublishedAt != nil && c.PublishedAt.After(now) {
		return false
	}
	return c.DeletedAt == nil
}

// IsAdminVisible reports whether a record appears in admin read paths.
// Drafts and archived content stay visible to admins; only soft-deleted
// records are hidden.
func IsAdminVisible(c *models.Content) bool {
	return c.DeletedAt == nil
}
