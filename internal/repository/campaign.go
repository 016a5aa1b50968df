package repository

import (
	"database/sql"
	"fmt"

	"github.com/foxzi/contentd/internal/models"
)

type CampaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = "id, title, description, image_url, link, is_active, valid_from, valid_until, created_at, updated_at"

// ListActive returns one page of active campaigns, most recently created
// first, plus the total count of active campaigns.
func (r *CampaignRepository) ListActive(offset, limit int) ([]models.Campaign, int, error) {
	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM campaigns WHERE is_active = 1").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE is_active = 1
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, total, rows.Err()
}

// GetActiveByID returns the active campaign with the given id, or nil
// when no such campaign exists. An inactive campaign is indistinguishable
// from a missing one here.
func (r *CampaignRepository) GetActiveByID(id int64) (*models.Campaign, error) {
	return r.getOne("SELECT "+campaignColumns+" FROM campaigns WHERE id = ? AND is_active = 1", id)
}

// GetByID returns the campaign with the given id regardless of its active
// flag, or nil when it does not exist. Validity evaluation needs the
// unfiltered record so it can classify inactive campaigns.
func (r *CampaignRepository) GetByID(id int64) (*models.Campaign, error) {
	return r.getOne("SELECT "+campaignColumns+" FROM campaigns WHERE id = ?", id)
}

func (r *CampaignRepository) getOne(query string, id int64) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(r.db.QueryRow(query, id), &c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return &c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner, c *models.Campaign) error {
	return row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.Link,
		&c.IsActive, &c.ValidFrom, &c.ValidUntil, &c.CreatedAt, &c.UpdatedAt)
}
