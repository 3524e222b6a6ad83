// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the publishing state of a content item.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// TwitterCard selects the Twitter card rendering for shared links.
type TwitterCard string

const (
	TwitterCardSummary           TwitterCard = "summary"
	TwitterCardSummaryLargeImage TwitterCard = "summary_large_image"
)

// Field length limits shared by every content type.
const (
	MaxTitleLen           = 200
	MaxMetaTitleLen       = 60
	MaxMetaDescriptionLen = 160
)

// Content holds the identity, SEO, and lifecycle fields shared by every
// publishable type (blog posts, courses, news items, pages, projects).
// Concrete types embed it and implement the Record interface; the seo and
// lifecycle packages operate only against these shared fields.
type Content struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Slug   string    `json:"slug"`
	Status Status    `json:"status"`

	// SEO fields. Blank meta fields are filled in on save from the title
	// and the type-specific excerpt.
	MetaTitle         string   `json:"meta_title"`
	MetaDescription   string   `json:"meta_description"`
	OGImageKey        string   `json:"og_image_key,omitempty"`
	FocusKeyword      string   `json:"focus_keyword,omitempty"`
	SecondaryKeywords string   `json:"secondary_keywords,omitempty"`
	ReadabilityScore  *float64 `json:"readability_score,omitempty"`
	SEOScore          *int     `json:"seo_score,omitempty"`

	// Social media fields, defaulted from the meta fields when blank.
	SocialMediaTitle       string      `json:"social_media_title"`
	SocialMediaDescription string      `json:"social_media_description"`
	TwitterCardType        TwitterCard `json:"twitter_card_type"`

	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Record is implemented by every content type carrying Content fields.
// AnalysisText returns the long-form text used for readability and SEO
// scoring; ExcerptText returns the short summary used as the default
// meta description.
type Record interface {
	Fields() *Content
	AnalysisText() string
	ExcerptText() string
}

// Fields returns the shared content fields, satisfying Record on behalf
// of every embedding type.
func (c *Content) Fields() *Content { return c }

// HasImage reports whether an Open Graph image reference is set.
// The image bytes themselves live in object storage.
func (c *Content) HasImage() bool {
	return c.OGImageKey != ""
}

// IsDeleted reports whether the record has been soft-deleted.
func (c *Content) IsDeleted() bool {
	return c.DeletedAt != nil
}

// ParseStatus validates a status string from the HTTP boundary.
// Lifecycle code assumes statuses have already passed through here.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(s), nil
	}
	return "", &ValidationError{Field: "status", Message: "must be one of draft, published, archived"}
}

// ParseTwitterCard validates a twitter card type string from the HTTP
// boundary. An empty string defaults to the summary card.
func ParseTwitterCard(s string) (TwitterCard, error) {
	if s == "" {
		return TwitterCardSummary, nil
	}
	switch TwitterCard(s) {
	case TwitterCardSummary, TwitterCardSummaryLargeImage:
		return TwitterCard(s), nil
	}
	return "", &ValidationError{Field: "twitter_card_type", Message: "must be one of summary, summary_large_image"}
}
