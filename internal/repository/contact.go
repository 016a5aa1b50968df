package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/foxzi/contentd/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact submission and fills in the
// storage-assigned id and timestamps.
func (r *ContactRepository) Create(c *models.Contact) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt

	res, err := r.db.Exec(`
		INSERT INTO contacts (name, email, phone, category, message, status, estimated_response_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Category, c.Message, c.Status, c.EstimatedResponseTime, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read contact id: %w", err)
	}
	c.ID = id

	return nil
}

// GetByID returns the contact with the given id, or nil when it does not
// exist. Used by back-office tooling and tests; the public API has no
// contact read path.
func (r *ContactRepository) GetByID(id int64) (*models.Contact, error) {
	var c models.Contact
	err := r.db.QueryRow(`
		SELECT id, name, email, phone, category, message, status, estimated_response_time, created_at, updated_at
		FROM contacts WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Category, &c.Message,
		&c.Status, &c.EstimatedResponseTime, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &c, nil
}
