package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user, a starter set of taxonomy rows, a published homepage, and
// a sample blog post.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	adminID := uuid.New()
	_, err = db.Exec(`
		INSERT INTO users (id, email, password_hash, display_name, role, is_email_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, adminID, "admin@pressfolio.local", string(hash), "Admin", "admin", true)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	taxonomy := []struct {
		table, name, slug string
	}{
		{"categories", "General", "general"},
		{"tags", "Announcement", "announcement"},
		{"news_categories", "Updates", "updates"},
	}
	for _, t := range taxonomy {
		if _, err := db.Exec(
			`INSERT INTO `+t.table+` (id, name, slug) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), t.name, t.slug); err != nil {
			return fmt.Errorf("seed %s: %w", t.table, err)
		}
	}

	// A published homepage and a sample post so the public API serves
	// something out of the box.
	_, err = db.Exec(`
		INSERT INTO pages (id, title, slug, status, published_at, body, is_homepage, show_in_menu, menu_title)
		VALUES ($1, 'Welcome', 'welcome', 'published', NOW(),
			'# Welcome to Pressfolio' || E'\n\n' || 'This site is running on a fresh installation.',
			TRUE, TRUE, 'Home')
		ON CONFLICT (slug) DO NOTHING
	`, uuid.New())
	if err != nil {
		return fmt.Errorf("seed homepage: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO blog_posts (id, title, slug, status, published_at, excerpt, body, author_id, reading_time_minutes)
		VALUES ($1, 'Hello, World', 'hello-world', 'published', NOW(),
			'The first post on this site.',
			'# Hello, World' || E'\n\n' || 'This is a sample post. Edit or delete it, then start writing.',
			$2, 1)
		ON CONFLICT (slug) DO NOTHING
	`, uuid.New(), adminID)
	if err != nil {
		return fmt.Errorf("seed sample post: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@pressfolio.local",
		"password", "admin",
	)

	return nil
}
