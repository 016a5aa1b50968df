package service

import (
	"log/slog"
	"strconv"

	"github.com/foxzi/contentd/internal/metrics"
	"github.com/foxzi/contentd/internal/models"
	"github.com/foxzi/contentd/internal/repository"
)

// SubmitContactInput is a validated contact submission. Shape validation
// (blank fields, email format, unknown category) happens at the API
// boundary before this is constructed.
type SubmitContactInput struct {
	Name     string
	Email    string
	Phone    string
	Category models.ContactCategory
	Message  string
}

// ContactResponse is returned after a successful submission.
type ContactResponse struct {
	ID                    string `json:"id"`
	Status                string `json:"status"`
	EstimatedResponseTime string `json:"estimatedResponseTime"`
}

// ContactCategoryResponse describes one selectable inquiry category.
type ContactCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ContactService struct {
	repo   *repository.ContactRepository
	logger *slog.Logger

	// estimatedResponseTime is echoed verbatim on every submission.
	estimatedResponseTime string
}

func NewContactService(repo *repository.ContactRepository, estimatedResponseTime string, logger *slog.Logger) *ContactService {
	return &ContactService{
		repo:                  repo,
		logger:                logger,
		estimatedResponseTime: estimatedResponseTime,
	}
}

// Submit persists a new contact submission. Status always starts at
// RECEIVED; later transitions belong to back-office processes, never to
// this API.
func (s *ContactService) Submit(in SubmitContactInput) (*ContactResponse, error) {
	contact := &models.Contact{
		Name:                  in.Name,
		Email:                 in.Email,
		Phone:                 in.Phone,
		Category:              in.Category,
		Message:               in.Message,
		Status:                models.ContactStatusReceived,
		EstimatedResponseTime: s.estimatedResponseTime,
	}

	if err := s.repo.Create(contact); err != nil {
		return nil, err
	}

	s.logger.Info("contact submission received", "id", contact.ID, "category", contact.Category)
	if m := metrics.Global(); m != nil {
		m.ContactSubmissionsTotal.WithLabelValues(contact.Category.Code()).Inc()
	}

	return &ContactResponse{
		ID:                    strconv.FormatInt(contact.ID, 10),
		Status:                string(contact.Status),
		EstimatedResponseTime: contact.EstimatedResponseTime,
	}, nil
}

// Categories returns the selectable inquiry categories in display order.
func (s *ContactService) Categories() []ContactCategoryResponse {
	categories := make([]ContactCategoryResponse, len(models.ContactCategories))
	for i, c := range models.ContactCategories {
		categories[i] = ContactCategoryResponse{
			ID:          c.Code(),
			Name:        c.DisplayName(),
			Description: "Inquiries regarding " + c.DisplayName(),
		}
	}
	return categories
}
