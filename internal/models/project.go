// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType categorizes portfolio projects.
type ProjectType string

const (
	ProjectTypeWeb     ProjectType = "web"
	ProjectTypeMobile  ProjectType = "mobile"
	ProjectTypeDesktop ProjectType = "desktop"
	ProjectTypeML      ProjectType = "ml"
	ProjectTypeData    ProjectType = "data"
)

// Difficulty grades how advanced a project is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Project is a portfolio entry showcasing completed work.
type Project struct {
	Content

	Summary        string      `json:"summary"`
	Description    string      `json:"description"`
	ThumbnailKey   string      `json:"thumbnail_key,omitempty"`
	TechnologyIDs  []uuid.UUID `json:"technology_ids,omitempty"`
	GithubURL      string      `json:"github_url,omitempty"`
	LiveURL        string      `json:"live_url,omitempty"`
	DemoVideoURL   string      `json:"demo_video_url,omitempty"`
	Type           ProjectType `json:"project_type"`
	CompletionDate *time.Time  `json:"completion_date,omitempty"`
	Featured       bool        `json:"featured"`
	Difficulty     Difficulty  `json:"difficulty"`
}

// AnalysisText returns the project description for readability and SEO
// scoring.
func (p *Project) AnalysisText() string { return p.Description }

// ExcerptText returns the one-line summary.
func (p *Project) ExcerptText() string { return p.Summary }

// ParseProjectType validates a project type string from the HTTP boundary.
func ParseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectTypeWeb, ProjectTypeMobile, ProjectTypeDesktop, ProjectTypeML, ProjectTypeData:
		return ProjectType(s), nil
	}
	return "", &ValidationError{Field: "project_type", Message: "must be one of web, mobile, desktop, ml, data"}
}

// ParseDifficulty validates a difficulty string from the HTTP boundary.
// An empty string defaults to intermediate.
func ParseDifficulty(s string) (Difficulty, error) {
	if s == "" {
		return DifficultyIntermediate, nil
	}
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s), nil
	}
	return "", &ValidationError{Field: "difficulty", Message: "must be one of beginner, intermediate, advanced"}
}
