package repository

import (
	"database/sql"
	"fmt"

	"github.com/foxzi/contentd/internal/models"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

const newsColumns = "id, title, content, link, published_date, is_published, created_at, updated_at"

// ListPublished returns one page of published news, most recently
// published first, plus the total count of published news.
func (r *NewsRepository) ListPublished(offset, limit int) ([]models.News, int, error) {
	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM news WHERE is_published = 1").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT `+newsColumns+`
		FROM news
		WHERE is_published = 1
		ORDER BY published_date DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		var n models.News
		if err := scanNews(rows, &n); err != nil {
			return nil, 0, fmt.Errorf("failed to scan news: %w", err)
		}
		items = append(items, n)
	}

	return items, total, rows.Err()
}

// GetPublishedByID returns the published news item with the given id, or
// nil when it does not exist or is unpublished.
func (r *NewsRepository) GetPublishedByID(id int64) (*models.News, error) {
	var n models.News
	err := scanNews(r.db.QueryRow(
		"SELECT "+newsColumns+" FROM news WHERE id = ? AND is_published = 1", id), &n)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	return &n, nil
}

func scanNews(row rowScanner, n *models.News) error {
	return row.Scan(&n.ID, &n.Title, &n.Content, &n.Link,
		&n.PublishedDate, &n.IsPublished, &n.CreatedAt, &n.UpdatedAt)
}
