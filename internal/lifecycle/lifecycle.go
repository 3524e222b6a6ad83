// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package lifecycle normalizes content records on save and enforces the
// publish/archive/soft-delete rules shared by every content type. It is
// pure and in-memory: callers pass the current time explicitly and persist
// the mutated record themselves.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pressfolio/internal/models"
	"pressfolio/internal/seo"
	"pressfolio/internal/slug"
)

// ErrInvalidTransition is returned for status changes the state machine
// does not define.
var ErrInvalidTransition = errors.New("invalid status transition")

// Manager applies save-time normalization and status transitions.
type Manager struct {
	scorer *seo.Scorer

	// revertToDraft permits published/archived content to move back to
	// draft. Off by default: the standard lifecycle is one-way.
	revertToDraft bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithRevertToDraft permits transitions back to draft from published or
// archived.
func WithRevertToDraft() Option {
	return func(m *Manager) { m.revertToDraft = true }
}

// WithScorer replaces the default Flesch-based scorer, mainly for tests
// that pin readability to a known value.
func WithScorer(s *seo.Scorer) Option {
	return func(m *Manager) { m.scorer = s }
}

// New returns a Manager with the default scorer.
func New(opts ...Option) *Manager {
	m := &Manager{scorer: seo.NewScorer()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Normalize prepares a record for persistence: slug derivation, meta field
// defaulting, the publish-timestamp rule, and score recomputation, in that
// order. It is idempotent: running it twice with no intervening field
// change leaves the record identical.
func (m *Manager) Normalize(rec models.Record, now time.Time) {
	c := rec.Fields()

	// Slug: derive from the title only when blank. An explicitly set slug
	// is never overwritten.
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Title)
	}
	// A title with no sluggable characters (CJK, emoji, punctuation only)
	// generates an empty slug. Fall back to the record ID, minting it here
	// if the store has not assigned one yet, so the slug column stays
	// non-empty and unique.
	if c.Slug == "" {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		c.Slug = c.ID.String()
	}

	// Meta defaulting. The excerpt accessor is type-specific; everything
	// else is uniform.
	if c.MetaTitle == "" {
		c.MetaTitle = truncate(c.Title, models.MaxMetaTitleLen)
	}
	if c.MetaDescription == "" {
		c.MetaDescription = truncate(rec.ExcerptText(), models.MaxMetaDescriptionLen)
	}
	if c.SocialMediaTitle == "" {
		c.SocialMediaTitle = c.MetaTitle
	}
	if c.SocialMediaDescription == "" {
		c.SocialMediaDescription = c.MetaDescription
	}

	// PublishedAt is set exactly once, on the first save in published
	// status. Later status changes never touch it.
	if c.Status == models.StatusPublished && c.PublishedAt == nil {
		t := now
		c.PublishedAt = &t
	}

	// Recompute scores from the current text. An empty body skips scoring
	// entirely, leaving any previous values in place.
	result := m.scorer.Analyze(seo.Input{
		Title:             c.Title,
		MetaDescription:   c.MetaDescription,
		FocusKeyword:      c.FocusKeyword,
		SecondaryKeywords: c.SecondaryKeywords,
		Body:              rec.AnalysisText(),
		HasImage:          c.HasImage(),
	})
	if result.Readability != nil {
		c.ReadabilityScore = result.Readability
	}
	if result.SEOScore != nil {
		c.SEOScore = result.SEOScore
	}
}

// Transition moves a record to a new status. Defined transitions:
// draft→published, draft→archived, published→archived, and
// archived→published (which preserves the original publish time).
// Moving back to draft requires the revert option. Transitioning a
// soft-deleted record updates status only; DeletedAt is untouched.
func (m *Manager) Transition(rec models.Record, to models.Status, now time.Time) error {
	c := rec.Fields()
	from := c.Status

	if from == to {
		return nil
	}

	if !m.allowed(from, to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
	}

	c.Status = to
	if to == models.StatusPublished && c.PublishedAt == nil {
		t := now
		c.PublishedAt = &t
	}
	return nil
}

func (m *Manager) allowed(from, to models.Status) bool {
	switch to {
	case models.StatusPublished, models.StatusArchived:
		return true
	case models.StatusDraft:
		return m.revertToDraft
	}
	return false
}

// SoftDelete marks a record as logically deleted. Deleting an
// already-deleted record is a no-op, preserving the original deletion
// time. Status and PublishedAt are unchanged.
func (m *Manager) SoftDelete(rec models.Record, now time.Time) {
	c := rec.Fields()
	if c.DeletedAt != nil {
		return
	}
	t := now
	c.DeletedAt = &t
}

// Restore clears the soft-delete marker. Restoring a record that is not
// deleted is a no-op.
func (m *Manager) Restore(rec models.Record) {
	rec.Fields().DeletedAt = nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
