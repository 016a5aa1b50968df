// Package service orchestrates repository access and maps stored records
// into the response shapes served by the API.
package service

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/foxzi/contentd/internal/metrics"
	"github.com/foxzi/contentd/internal/models"
	"github.com/foxzi/contentd/internal/repository"
	"github.com/foxzi/contentd/internal/validity"
)

// CampaignResponse is the campaign shape served to clients.
type CampaignResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsActive    bool      `json:"isActive"`
}

// ValidityResponse is the outcome of a campaign validity check. ValidFrom
// and ValidUntil serialize as null when the window is unbounded on that
// side, matching what clients expect for an absent bound.
type ValidityResponse struct {
	CampaignID     string     `json:"campaignId"`
	Title          string     `json:"title"`
	IsValid        bool       `json:"isValid"`
	ValidityStatus string     `json:"validityStatus"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil"`
	Reason         string     `json:"reason"`
}

type CampaignService struct {
	repo   *repository.CampaignRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewCampaignService(repo *repository.CampaignRepository, logger *slog.Logger) *CampaignService {
	return &CampaignService{repo: repo, logger: logger, now: time.Now}
}

// List returns one page of active campaigns plus the total count. page is
// 1-indexed.
func (s *CampaignService) List(page, limit int) ([]CampaignResponse, int, error) {
	campaigns, total, err := s.repo.ListActive((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		responses[i] = toCampaignResponse(&c)
	}
	return responses, total, nil
}

// GetByID returns the active campaign with the given id, or nil when it
// does not exist or has been deactivated.
func (s *CampaignService) GetByID(id int64) (*CampaignResponse, error) {
	c, err := s.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		s.logger.Warn("campaign not found", "id", id)
		return nil, nil
	}

	resp := toCampaignResponse(c)
	return &resp, nil
}

// CheckValidity classifies the campaign's current validity. Absence of
// the campaign is a classification outcome, not an error, so this always
// returns a response when storage is reachable.
func (s *CampaignService) CheckValidity(id int64) (*ValidityResponse, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := validity.Evaluate(c, s.now(), id)
	s.logger.Info("campaign validity evaluated", "id", id, "status", result.Status)
	if m := metrics.Global(); m != nil {
		m.ValidityChecksTotal.WithLabelValues(string(result.Status)).Inc()
	}

	return &ValidityResponse{
		CampaignID:     result.CampaignID,
		Title:          result.Title,
		IsValid:        result.IsValid,
		ValidityStatus: string(result.Status),
		ValidFrom:      result.ValidFrom,
		ValidUntil:     result.ValidUntil,
		Reason:         result.Reason,
	}, nil
}

func toCampaignResponse(c *models.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          strconv.FormatInt(c.ID, 10),
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Link:        c.Link,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		IsActive:    c.IsActive,
	}
}
