package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/foxzi/contentd/internal/db"
)

// setupTestDB creates a throwaway database with all migrations applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database.DB
}

var testBase = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func insertCampaign(t *testing.T, d *sql.DB, title string, active bool, validFrom, validUntil *time.Time, createdAt time.Time) int64 {
	t.Helper()

	res, err := d.Exec(`
		INSERT INTO campaigns (title, description, image_url, link, is_active, valid_from, valid_until, created_at, updated_at)
		VALUES (?, '', '', '', ?, ?, ?, ?, ?)`,
		title, active, validFrom, validUntil, createdAt, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to insert campaign: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func insertNews(t *testing.T, d *sql.DB, title string, published bool, publishedDate time.Time) int64 {
	t.Helper()

	res, err := d.Exec(`
		INSERT INTO news (title, content, link, published_date, is_published, created_at, updated_at)
		VALUES (?, '', '', ?, ?, ?, ?)`,
		title, publishedDate, published, testBase, testBase,
	)
	if err != nil {
		t.Fatalf("failed to insert news: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func insertFaq(t *testing.T, d *sql.DB, question, category string, active bool, createdAt time.Time) int64 {
	t.Helper()

	res, err := d.Exec(`
		INSERT INTO faqs (question, answer, category, is_active, created_at, updated_at)
		VALUES (?, 'answer', ?, ?, ?, ?)`,
		question, category, active, createdAt, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to insert faq: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}
