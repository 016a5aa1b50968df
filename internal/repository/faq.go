package repository

import (
	"database/sql"
	"fmt"

	"github.com/foxzi/contentd/internal/models"
)

type FaqRepository struct {
	db *sql.DB
}

func NewFaqRepository(db *sql.DB) *FaqRepository {
	return &FaqRepository{db: db}
}

const faqColumns = "id, question, answer, category, is_active, created_at, updated_at"

// ListActive returns one page of active FAQs, most recently created
// first, plus the total count of active FAQs.
func (r *FaqRepository) ListActive(offset, limit int) ([]models.Faq, int, error) {
	return r.list("", offset, limit)
}

// ListActiveByCategory is ListActive restricted to a single category.
func (r *FaqRepository) ListActiveByCategory(category models.FaqCategory, offset, limit int) ([]models.Faq, int, error) {
	return r.list(string(category), offset, limit)
}

func (r *FaqRepository) list(category string, offset, limit int) ([]models.Faq, int, error) {
	where := "WHERE is_active = 1"
	args := []any{}
	if category != "" {
		where += " AND category = ?"
		args = append(args, category)
	}

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM faqs "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count faqs: %w", err)
	}

	rows, err := r.db.Query(
		"SELECT "+faqColumns+" FROM faqs "+where+" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []models.Faq
	for rows.Next() {
		var f models.Faq
		if err := scanFaq(rows, &f); err != nil {
			return nil, 0, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}

	return faqs, total, rows.Err()
}

// GetActiveByID returns the active FAQ with the given id, or nil when it
// does not exist or is inactive.
func (r *FaqRepository) GetActiveByID(id int64) (*models.Faq, error) {
	var f models.Faq
	err := scanFaq(r.db.QueryRow(
		"SELECT "+faqColumns+" FROM faqs WHERE id = ? AND is_active = 1", id), &f)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return &f, nil
}

func scanFaq(row rowScanner, f *models.Faq) error {
	return row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt)
}
