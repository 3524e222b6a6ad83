// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// NewsPriority orders news items by urgency.
type NewsPriority string

const (
	NewsPriorityLow    NewsPriority = "low"
	NewsPriorityMedium NewsPriority = "medium"
	NewsPriorityHigh   NewsPriority = "high"
	NewsPriorityUrgent NewsPriority = "urgent"
)

// NewsItem is a short announcement or update, optionally attributed to an
// external source.
type NewsItem struct {
	Content

	Body       string       `json:"body"`
	SourceURL  string       `json:"source_url,omitempty"`
	SourceName string       `json:"source_name,omitempty"`
	CategoryID uuid.UUID    `json:"category_id"`
	Priority   NewsPriority `json:"priority"`
	Featured   bool         `json:"featured"`
}

// AnalysisText returns the news body for readability and SEO scoring.
func (n *NewsItem) AnalysisText() string { return n.Body }

// ExcerptText returns the opening of the body.
func (n *NewsItem) ExcerptText() string { return excerptFromBody(n.Body) }

// ParseNewsPriority validates a priority string from the HTTP boundary.
// An empty string defaults to medium.
func ParseNewsPriority(s string) (NewsPriority, error) {
	if s == "" {
		return NewsPriorityMedium, nil
	}
	switch NewsPriority(s) {
	case NewsPriorityLow, NewsPriorityMedium, NewsPriorityHigh, NewsPriorityUrgent:
		return NewsPriority(s), nil
	}
	return "", &ValidationError{Field: "priority", Message: "must be one of low, medium, high, urgent"}
}
