// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// schema.go builds schema.org JSON-LD markup for content records so the
// frontend can embed structured data without knowing field fallbacks.
package seo

import (
	"encoding/json"
	"fmt"
	"time"

	"pressfolio/internal/models"
)

// SiteInfo carries site-wide values used in structured data.
type SiteInfo struct {
	Name    string
	BaseURL string
}

// BlogPostingSchema returns JSON-LD markup for a blog post.
func BlogPostingSchema(post *models.BlogPost, authorName string, site SiteInfo, imageURL string) ([]byte, error) {
	published := post.CreatedAt
	if post.PublishedAt != nil {
		published = *post.PublishedAt
	}

	schema := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": published.Format(time.RFC3339),
		"dateModified":  post.UpdatedAt.Format(time.RFC3339),
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   fmt.Sprintf("%s/blog/%s/", site.BaseURL, post.Slug),
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  site.Name,
		},
	}
	if authorName != "" {
		schema["author"] = map[string]any{"@type": "Person", "name": authorName}
	}
	if imageURL != "" {
		schema["image"] = imageURL
	}
	return json.Marshal(schema)
}

// NewsArticleSchema returns JSON-LD markup for a news item.
func NewsArticleSchema(item *models.NewsItem, site SiteInfo, imageURL string) ([]byte, error) {
	published := item.CreatedAt
	if item.PublishedAt != nil {
		published = *item.PublishedAt
	}

	schema := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "NewsArticle",
		"headline":      item.Title,
		"datePublished": published.Format(time.RFC3339),
		"dateModified":  item.UpdatedAt.Format(time.RFC3339),
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   fmt.Sprintf("%s/news/%s/", site.BaseURL, item.Slug),
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  site.Name,
		},
	}
	if item.SourceName != "" {
		source := map[string]any{"@type": "Organization", "name": item.SourceName}
		if item.SourceURL != "" {
			source["url"] = item.SourceURL
		}
		schema["sourceOrganization"] = source
	}
	if imageURL != "" {
		schema["image"] = imageURL
	}
	return json.Marshal(schema)
}

// CourseSchema returns JSON-LD markup for a course, including pricing.
func CourseSchema(course *models.Course, instructorName string, site SiteInfo, imageURL string) ([]byte, error) {
	schema := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Course",
		"name":        course.Title,
		"description": course.Description,
		"provider": map[string]any{
			"@type":  "Organization",
			"name":   site.Name,
			"sameAs": site.BaseURL,
		},
	}

	price := "0"
	if !course.IsFree {
		price = fmt.Sprintf("%.2f", float64(course.PriceCents)/100)
	}
	schema["offers"] = map[string]any{
		"@type":         "Offer",
		"price":         price,
		"priceCurrency": "USD",
		"availability":  "https://schema.org/InStock",
	}

	if course.Level != "" {
		schema["educationalLevel"] = string(course.Level)
	}
	if len(course.LearningOutcomes) > 0 {
		schema["teaches"] = course.LearningOutcomes
	}
	if instructorName != "" {
		schema["instructor"] = map[string]any{"@type": "Person", "name": instructorName}
	}
	if imageURL != "" {
		schema["image"] = imageURL
	}
	return json.Marshal(schema)
}

// CreativeWorkSchema returns JSON-LD markup for a portfolio project.
func CreativeWorkSchema(project *models.Project, imageURL string) ([]byte, error) {
	created := project.CreatedAt
	if project.CompletionDate != nil {
		created = *project.CompletionDate
	}

	schema := map[string]any{
		"@context":     "https://schema.org",
		"@type":        "CreativeWork",
		"name":         project.Title,
		"description":  project.Summary,
		"dateCreated":  created.Format(time.RFC3339),
		"dateModified": project.UpdatedAt.Format(time.RFC3339),
	}
	if project.GithubURL != "" {
		schema["codeRepository"] = project.GithubURL
	}
	if imageURL != "" {
		schema["image"] = imageURL
	}
	return json.Marshal(schema)
}
