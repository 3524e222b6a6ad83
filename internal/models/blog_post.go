// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// wordsPerMinute is the average reading speed used for reading time estimates.
const wordsPerMinute = 200

// BlogPost is a long-form article with an author, taxonomy, and an
// explicit editorial excerpt.
type BlogPost struct {
	Content

	Excerpt            string      `json:"excerpt"`
	Body               string      `json:"body"`
	CoverImageKey      string      `json:"cover_image_key,omitempty"`
	AuthorID           uuid.UUID   `json:"author_id"`
	CategoryIDs        []uuid.UUID `json:"category_ids,omitempty"`
	TagIDs             []uuid.UUID `json:"tag_ids,omitempty"`
	ReadingTimeMinutes *int        `json:"reading_time_minutes,omitempty"`
	Featured           bool        `json:"featured"`
	AllowComments      bool        `json:"allow_comments"`
}

// AnalysisText returns the post body for readability and SEO scoring.
func (p *BlogPost) AnalysisText() string { return p.Body }

// ExcerptText returns the editorial excerpt used as the meta description
// default.
func (p *BlogPost) ExcerptText() string { return p.Excerpt }

// EstimateReadingTime fills in ReadingTimeMinutes from the body word count
// when it has not been set explicitly. A minimum of one minute is reported
// for any non-empty body.
func (p *BlogPost) EstimateReadingTime() {
	if p.Body == "" || p.ReadingTimeMinutes != nil {
		return
	}
	words := len(strings.Fields(p.Body))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	p.ReadingTimeMinutes = &minutes
}
