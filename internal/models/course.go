// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// CourseLevel indicates the intended audience experience for a course.
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

// Course is a sellable unit of learning content.
type Course struct {
	Content

	Subtitle      string      `json:"subtitle,omitempty"`
	Description   string      `json:"description"`
	ThumbnailKey  string      `json:"thumbnail_key,omitempty"`
	PriceCents    int         `json:"price_cents"`
	IsFree        bool        `json:"is_free"`
	Level         CourseLevel `json:"level"`
	Language      string      `json:"language"`
	DurationHours float64     `json:"duration_hours"`
	InstructorID  uuid.UUID   `json:"instructor_id"`
	CategoryIDs   []uuid.UUID `json:"category_ids,omitempty"`
	TagIDs        []uuid.UUID `json:"tag_ids,omitempty"`

	Prerequisites        string   `json:"prerequisites,omitempty"`
	LearningOutcomes     []string `json:"learning_outcomes,omitempty"`
	CertificateAvailable bool     `json:"certificate_available"`
}

// AnalysisText returns the course description for readability and SEO
// scoring.
func (c *Course) AnalysisText() string { return c.Description }

// ExcerptText returns the subtitle when present, otherwise the opening of
// the description.
func (c *Course) ExcerptText() string {
	if c.Subtitle != "" {
		return c.Subtitle
	}
	return excerptFromBody(c.Description)
}
