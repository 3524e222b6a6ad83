// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"pressfolio/internal/models"
	"pressfolio/internal/slug"
)

// Validation limits for request fields not already bounded by the models
// package.
const (
	maxSlugLen    = 300
	maxBodyLen    = 500_000
	maxExcerptLen = 1_000
	maxKeywordLen = 200
)

// validateShared checks the content fields common to every type and
// returns the first problem found.
func validateShared(c *models.Content) error {
	if strings.TrimSpace(c.Title) == "" {
		return &models.ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(c.Title) > models.MaxTitleLen {
		return &models.ValidationError{Field: "title", Message: "title is too long (max 200 characters)"}
	}
	if utf8.RuneCountInString(c.Slug) > maxSlugLen {
		return &models.ValidationError{Field: "slug", Message: "slug is too long (max 300 characters)"}
	}
	if c.Slug != "" && !slug.IsValid(c.Slug) {
		return &models.ValidationError{Field: "slug", Message: "slug may contain only lowercase letters, digits, and hyphens"}
	}
	if utf8.RuneCountInString(c.MetaTitle) > models.MaxMetaTitleLen {
		return &models.ValidationError{Field: "meta_title", Message: "meta title is too long (max 60 characters)"}
	}
	if utf8.RuneCountInString(c.MetaDescription) > models.MaxMetaDescriptionLen {
		return &models.ValidationError{Field: "meta_description", Message: "meta description is too long (max 160 characters)"}
	}
	if utf8.RuneCountInString(c.FocusKeyword) > maxKeywordLen {
		return &models.ValidationError{Field: "focus_keyword", Message: "focus keyword is too long (max 200 characters)"}
	}
	return nil
}

// validateBody bounds a long-form text field.
func validateBody(field, body string) error {
	if utf8.RuneCountInString(body) > maxBodyLen {
		return &models.ValidationError{Field: field, Message: "text is too long (max 500,000 characters)"}
	}
	return nil
}

// validateExcerpt bounds a short summary field.
func validateExcerpt(field, excerpt string) error {
	if utf8.RuneCountInString(excerpt) > maxExcerptLen {
		return &models.ValidationError{Field: field, Message: "text is too long (max 1,000 characters)"}
	}
	return nil
}
