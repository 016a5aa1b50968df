package service

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/foxzi/contentd/internal/models"
	"github.com/foxzi/contentd/internal/repository"
)

// FaqResponse is the FAQ shape served to clients. Category carries the
// display name, not the storage code.
type FaqResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsActive  bool      `json:"isActive"`
}

type FaqService struct {
	repo   *repository.FaqRepository
	logger *slog.Logger
}

func NewFaqService(repo *repository.FaqRepository, logger *slog.Logger) *FaqService {
	return &FaqService{repo: repo, logger: logger}
}

// List returns one page of active FAQs plus the total count, optionally
// restricted to a category. An unrecognized category is treated as
// matching nothing, not as an error. page is 1-indexed.
func (s *FaqService) List(page, limit int, category string) ([]FaqResponse, int, error) {
	offset := (page - 1) * limit

	var (
		faqs  []models.Faq
		total int
		err   error
	)
	if category == "" {
		faqs, total, err = s.repo.ListActive(offset, limit)
	} else {
		cat, ok := models.ParseFaqCategory(category)
		if !ok {
			s.logger.Warn("unknown faq category", "category", category)
			return []FaqResponse{}, 0, nil
		}
		faqs, total, err = s.repo.ListActiveByCategory(cat, offset, limit)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FaqResponse, len(faqs))
	for i, f := range faqs {
		responses[i] = toFaqResponse(&f)
	}
	return responses, total, nil
}

// GetByID returns the active FAQ with the given id, or nil when it does
// not exist or is inactive.
func (s *FaqService) GetByID(id int64) (*FaqResponse, error) {
	f, err := s.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		s.logger.Warn("faq not found", "id", id)
		return nil, nil
	}

	resp := toFaqResponse(f)
	return &resp, nil
}

func toFaqResponse(f *models.Faq) FaqResponse {
	return FaqResponse{
		ID:        strconv.FormatInt(f.ID, 10),
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category.DisplayName(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		IsActive:  f.IsActive,
	}
}
