package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

func TestPageStoreHomepageConflict(t *testing.T) {
	db := testDB(t)
	s := NewPageStore(db)

	slug := "test-home-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "pages", slug) })

	existing, err := s.Homepage()
	if err != nil {
		t.Fatalf("Homepage: %v", err)
	}

	page := &models.Page{
		Content:    models.Content{Title: "Contender", Slug: slug, Status: models.StatusDraft},
		Template:   models.PageTemplateDefault,
		IsHomepage: true,
	}

	if existing == nil {
		// No homepage yet: the first one saves, a second must not.
		if err := s.Create(page); err != nil {
			t.Fatalf("Create first homepage: %v", err)
		}
		second := &models.Page{
			Content:    models.Content{Title: "Second", Slug: slug + "-b", Status: models.StatusDraft},
			Template:   models.PageTemplateDefault,
			IsHomepage: true,
		}
		t.Cleanup(func() { cleanTable(t, db, "pages", slug+"-b") })
		err = s.Create(second)
	} else {
		err = s.Create(page)
	}

	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for duplicate homepage, got %v", err)
	}
	if ve.Field != "is_homepage" {
		t.Errorf("field: got %q, want is_homepage", ve.Field)
	}
}

func TestPageStoreMenuAndBreadcrumbs(t *testing.T) {
	db := testDB(t)
	s := NewPageStore(db)

	parentSlug := "test-parent-" + uuid.NewString()[:8]
	childSlug := "test-child-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "pages", childSlug, parentSlug) })

	past := time.Now().Add(-time.Hour)
	parent := &models.Page{
		Content: models.Content{
			Title: "Parent", Slug: parentSlug,
			Status: models.StatusPublished, PublishedAt: &past,
		},
		Template:   models.PageTemplateDefault,
		ShowInMenu: true,
		MenuTitle:  "Parent",
	}
	if err := s.Create(parent); err != nil {
		t.Fatalf("Create parent: %v", err)
	}

	child := &models.Page{
		Content: models.Content{
			Title: "Child", Slug: childSlug,
			Status: models.StatusPublished, PublishedAt: &past,
		},
		Template:   models.PageTemplateDefault,
		ParentID:   &parent.ID,
		ShowInMenu: true,
	}
	if err := s.Create(child); err != nil {
		t.Fatalf("Create child: %v", err)
	}

	// Only top-level pages appear in the menu.
	menu, err := s.Menu()
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	var sawParent, sawChild bool
	for _, p := range menu {
		if p.Slug == parentSlug {
			sawParent = true
		}
		if p.Slug == childSlug {
			sawChild = true
		}
	}
	if !sawParent {
		t.Error("expected parent in menu")
	}
	if sawChild {
		t.Error("did not expect nested child in menu")
	}

	children, err := s.Children(parent.ID)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(children) != 1 || children[0].Slug != childSlug {
		t.Errorf("children: got %d entries, want the child page", len(children))
	}

	crumbs, err := s.Breadcrumbs(child.ID)
	if err != nil {
		t.Fatalf("Breadcrumbs: %v", err)
	}
	if len(crumbs) != 2 {
		t.Fatalf("breadcrumbs: got %d entries, want 2", len(crumbs))
	}
	if crumbs[0].Slug != parentSlug || crumbs[1].Slug != childSlug {
		t.Errorf("breadcrumb order: got [%s %s], want root first", crumbs[0].Slug, crumbs[1].Slug)
	}
}
