// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"math"
	"strings"
	"unicode/utf8"
)

// minAnalysisLen is the body length (in runes) above which readability is
// computed. Shorter texts produce meaningless reading-ease values.
const minAnalysisLen = 50

// maxPoints is the total weight of all scoring factors before
// normalization to 0-100.
const maxPoints = 50

// Input carries everything the scorer looks at. Meta fields are expected
// to have been defaulted already (lifecycle runs meta defaulting before
// scoring).
type Input struct {
	Title             string
	MetaDescription   string
	FocusKeyword      string
	SecondaryKeywords string
	Body              string
	HasImage          bool
}

// Result holds the two computed scores. Both are nil when the body text
// is empty, scoring is skipped entirely rather than zeroed.
type Result struct {
	Readability *float64
	SEOScore    *int
}

// Scorer computes readability and SEO scores. ReadingEase is injectable
// so tests can pin readability to a known value; NewScorer wires the
// Flesch implementation.
type Scorer struct {
	ReadingEase func(text string) float64
}

// NewScorer returns a Scorer using the Flesch reading-ease metric.
func NewScorer() *Scorer {
	return &Scorer{ReadingEase: FleschReadingEase}
}

// Analyze computes both scores from the given input. It is deterministic
// and idempotent: the same input always yields the same result.
func (s *Scorer) Analyze(in Input) Result {
	if in.Body == "" {
		return Result{}
	}

	var readability *float64
	if utf8.RuneCountInString(in.Body) > minAnalysisLen {
		v := s.ReadingEase(in.Body)
		readability = &v
	}

	score := scorePoints(in, readability)
	normalized := int(math.Round(float64(score) / maxPoints * 100))
	return Result{Readability: readability, SEOScore: &normalized}
}

// scorePoints applies the factor table and returns earned points out of
// maxPoints.
func scorePoints(in Input, readability *float64) int {
	score := 0

	// Title length: the 50-60 character window is what search engines
	// display without truncation.
	if in.Title != "" {
		score += titlePoints(utf8.RuneCountInString(in.Title))
	}

	// Meta description length: ideal window 140-160. An empty description
	// (only possible when the excerpt was empty too) earns nothing.
	if in.MetaDescription != "" {
		score += metaDescriptionPoints(utf8.RuneCountInString(in.MetaDescription))
	}

	// Focus keyword presence in title and body, case-insensitive.
	if in.FocusKeyword != "" {
		kw := strings.ToLower(in.FocusKeyword)
		if strings.Contains(strings.ToLower(in.Title), kw) {
			score += 5
		}
		if strings.Contains(strings.ToLower(in.Body), kw) {
			score += 5
		}
	}

	// Readability band. Unset readability earns nothing.
	if readability != nil {
		switch v := *readability; {
		case v >= 70:
			score += 10
		case v >= 60:
			score += 8
		case v >= 50:
			score += 6
		case v >= 40:
			score += 4
		default:
			score += 2
		}
	}

	if in.HasImage {
		score += 5
	}

	if in.SecondaryKeywords != "" {
		score += 5
	}

	return score
}

// titlePoints scores the title length against the 50-60 ideal window,
// falling off in 10-character bands on either side.
func titlePoints(n int) int {
	switch {
	case n >= 50 && n <= 60:
		return 10
	case (n >= 40 && n < 50) || (n > 60 && n <= 70):
		return 7
	case (n >= 30 && n < 40) || (n > 70 && n <= 80):
		return 5
	default:
		return 2
	}
}

// metaDescriptionPoints scores the description length against the 140-160
// ideal window, falling off in 20-character bands on either side.
func metaDescriptionPoints(n int) int {
	switch {
	case n >= 140 && n <= 160:
		return 10
	case (n >= 120 && n < 140) || (n > 160 && n <= 180):
		return 7
	case (n >= 100 && n < 120) || (n > 180 && n <= 200):
		return 5
	default:
		return 2
	}
}
