package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// testAuthor creates a user for content to reference and registers cleanup.
func testAuthor(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	email := "author-" + uuid.NewString()[:8] + "@test.local"
	u := &models.User{Email: email, DisplayName: "Test Author", Role: models.RoleAdmin}
	if err := NewUserStore(db).Create(u, "secret"); err != nil {
		t.Fatalf("create test author: %v", err)
	}
	t.Cleanup(func() { cleanUsers(t, db, email) })
	return u.ID
}

func TestBlogPostStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	authorID := testAuthor(t, db)

	slug := "test-create-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "blog_posts", slug) })

	post := &models.BlogPost{
		Content: models.Content{
			Title:  "Test Post",
			Slug:   slug,
			Status: models.StatusDraft,
		},
		Excerpt:  "A test post.",
		Body:     "Some body text.",
		AuthorID: authorID,
	}

	if err := s.Create(post); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if post.CreatedAt.IsZero() {
		t.Error("expected created_at to be written back")
	}

	found, err := s.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if found.Slug != slug {
		t.Errorf("slug: got %q, want %q", found.Slug, slug)
	}
	if found.Status != models.StatusDraft {
		t.Errorf("status: got %q, want draft", found.Status)
	}

	// Drafts are never visible through the public lookup.
	found, err = s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug (draft): %v", err)
	}
	if found != nil {
		t.Error("expected nil for draft via FindBySlug")
	}
}

func TestBlogPostStoreVisibility(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	authorID := testAuthor(t, db)

	liveSlug := "test-live-" + uuid.NewString()[:8]
	futureSlug := "test-future-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "blog_posts", liveSlug, futureSlug) })

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	live := &models.BlogPost{
		Content: models.Content{
			Title: "Live", Slug: liveSlug,
			Status: models.StatusPublished, PublishedAt: &past,
		},
		Body: "body", AuthorID: authorID,
	}
	scheduled := &models.BlogPost{
		Content: models.Content{
			Title: "Scheduled", Slug: futureSlug,
			Status: models.StatusPublished, PublishedAt: &future,
		},
		Body: "body", AuthorID: authorID,
	}
	if err := s.Create(live); err != nil {
		t.Fatalf("Create live: %v", err)
	}
	if err := s.Create(scheduled); err != nil {
		t.Fatalf("Create scheduled: %v", err)
	}

	found, err := s.FindBySlug(liveSlug)
	if err != nil {
		t.Fatalf("FindBySlug (live): %v", err)
	}
	if found == nil {
		t.Error("expected live post to be visible")
	}

	found, err = s.FindBySlug(futureSlug)
	if err != nil {
		t.Fatalf("FindBySlug (scheduled): %v", err)
	}
	if found != nil {
		t.Error("expected scheduled post to be hidden until its publish time")
	}
}

func TestBlogPostStoreSoftDeleteRestore(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	authorID := testAuthor(t, db)

	slug := "test-softdel-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "blog_posts", slug) })

	past := time.Now().Add(-time.Hour)
	post := &models.BlogPost{
		Content: models.Content{
			Title: "Delete Me", Slug: slug,
			Status: models.StatusPublished, PublishedAt: &past,
		},
		Body: "body", AuthorID: authorID,
	}
	if err := s.Create(post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.SoftDelete(post.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	// Deleting again is a no-op.
	if err := s.SoftDelete(post.ID); err != nil {
		t.Fatalf("SoftDelete (repeat): %v", err)
	}

	found, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug (deleted): %v", err)
	}
	if found != nil {
		t.Error("expected deleted post to be hidden")
	}

	// FindByID still returns the row so admins can restore it.
	byID, err := s.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID (deleted): %v", err)
	}
	if byID == nil {
		t.Fatal("expected deleted post via FindByID")
	}
	if byID.DeletedAt == nil {
		t.Error("expected deleted_at to be set")
	}
	if byID.Status != models.StatusPublished {
		t.Errorf("status changed by delete: got %q", byID.Status)
	}

	if err := s.Restore(post.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	found, err = s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug (restored): %v", err)
	}
	if found == nil {
		t.Error("expected restored post to be visible again")
	}
}

func TestBlogPostStoreRelations(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	ts := NewTaxonomyStore(db)
	authorID := testAuthor(t, db)

	catSlug := "test-cat-" + uuid.NewString()[:8]
	tagSlug := "test-tag-" + uuid.NewString()[:8]
	postSlug := "test-rel-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		cleanTable(t, db, "blog_posts", postSlug)
		cleanTable(t, db, "categories", catSlug)
		cleanTable(t, db, "tags", tagSlug)
	})

	cat, err := ts.CreateCategory("Test Category", catSlug)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	tag, err := ts.CreateTag("Test Tag", tagSlug)
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	post := &models.BlogPost{
		Content:     models.Content{Title: "Tagged", Slug: postSlug, Status: models.StatusDraft},
		Body:        "body",
		AuthorID:    authorID,
		CategoryIDs: []uuid.UUID{cat.ID},
		TagIDs:      []uuid.UUID{tag.ID},
	}
	if err := s.Create(post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(found.CategoryIDs) != 1 || found.CategoryIDs[0] != cat.ID {
		t.Errorf("category ids: got %v, want [%s]", found.CategoryIDs, cat.ID)
	}
	if len(found.TagIDs) != 1 || found.TagIDs[0] != tag.ID {
		t.Errorf("tag ids: got %v, want [%s]", found.TagIDs, tag.ID)
	}

	// Clearing relations on update removes the join rows.
	found.CategoryIDs = nil
	found.TagIDs = nil
	if err := s.Update(found); err != nil {
		t.Fatalf("Update: %v", err)
	}
	found, _ = s.FindByID(post.ID)
	if len(found.CategoryIDs) != 0 || len(found.TagIDs) != 0 {
		t.Errorf("expected relations cleared, got %v / %v", found.CategoryIDs, found.TagIDs)
	}
}
