// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import "pressfolio/internal/models"

// Preview is the social-sharing snippet for a content record, with the
// usual fallback chain applied to each field.
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image,omitempty"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	TwitterCard string `json:"twitter_card"`
}

// BuildPreview assembles the sharing preview for a record. imageURL is the
// resolved public URL of the OG image ("" when no image is set); pageURL
// is the canonical frontend URL of the record.
func BuildPreview(rec models.Record, imageURL, pageURL string) Preview {
	c := rec.Fields()

	title := c.SocialMediaTitle
	if title == "" {
		title = c.MetaTitle
	}
	if title == "" {
		title = c.Title
	}

	desc := c.SocialMediaDescription
	if desc == "" {
		desc = c.MetaDescription
	}
	if desc == "" {
		desc = rec.ExcerptText()
	}

	return Preview{
		Title:       title,
		Description: desc,
		ImageURL:    imageURL,
		URL:         pageURL,
		Type:        "article",
		TwitterCard: string(c.TwitterCardType),
	}
}
