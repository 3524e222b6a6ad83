package models

import (
	"errors"
	"testing"
	"time"
)

// TestParseStatus verifies boundary validation of the status enum.
func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "draft", input: "draft", want: StatusDraft},
		{name: "published", input: "published", want: StatusPublished},
		{name: "archived", input: "archived", want: StatusArchived},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "pending", wantErr: true},
		{name: "uppercase", input: "PUBLISHED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				if verr.Field != "status" {
					t.Errorf("Field = %q, want status", verr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseTwitterCard verifies card type validation and its default.
func TestParseTwitterCard(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TwitterCard
		wantErr bool
	}{
		{name: "empty defaults to summary", input: "", want: TwitterCardSummary},
		{name: "summary", input: "summary", want: TwitterCardSummary},
		{name: "large image", input: "summary_large_image", want: TwitterCardSummaryLargeImage},
		{name: "unknown", input: "player", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTwitterCard(tt.input)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				if verr.Field != "twitter_card_type" {
					t.Errorf("Field = %q, want twitter_card_type", verr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTwitterCard(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTwitterCard(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestContentHasImage checks the OG image presence predicate.
func TestContentHasImage(t *testing.T) {
	c := &Content{}
	if c.HasImage() {
		t.Error("HasImage() = true for empty key")
	}
	c.OGImageKey = "og_images/cover.png"
	if !c.HasImage() {
		t.Error("HasImage() = false with key set")
	}
}

// TestContentIsDeleted checks the soft-delete predicate.
func TestContentIsDeleted(t *testing.T) {
	c := &Content{}
	if c.IsDeleted() {
		t.Error("IsDeleted() = true for live record")
	}
	now := time.Now()
	c.DeletedAt = &now
	if !c.IsDeleted() {
		t.Error("IsDeleted() = false with DeletedAt set")
	}
}
