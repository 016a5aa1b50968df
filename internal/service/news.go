package service

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/foxzi/contentd/internal/models"
	"github.com/foxzi/contentd/internal/repository"
)

// NewsResponse is the news shape served to clients. Date is the
// published date rendered as YYYY-MM-DD for display.
type NewsResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Link          string    `json:"link"`
	Date          string    `json:"date"`
	PublishedDate time.Time `json:"publishedDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	IsPublished   bool      `json:"isPublished"`
}

type NewsService struct {
	repo   *repository.NewsRepository
	logger *slog.Logger
}

func NewNewsService(repo *repository.NewsRepository, logger *slog.Logger) *NewsService {
	return &NewsService{repo: repo, logger: logger}
}

// List returns one page of published news plus the total count. page is
// 1-indexed.
func (s *NewsService) List(page, limit int) ([]NewsResponse, int, error) {
	items, total, err := s.repo.ListPublished((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NewsResponse, len(items))
	for i, n := range items {
		responses[i] = toNewsResponse(&n)
	}
	return responses, total, nil
}

// GetByID returns the published news item with the given id, or nil when
// it does not exist or is unpublished.
func (s *NewsService) GetByID(id int64) (*NewsResponse, error) {
	n, err := s.repo.GetPublishedByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		s.logger.Warn("news not found", "id", id)
		return nil, nil
	}

	resp := toNewsResponse(n)
	return &resp, nil
}

func toNewsResponse(n *models.News) NewsResponse {
	return NewsResponse{
		ID:            strconv.FormatInt(n.ID, 10),
		Title:         n.Title,
		Content:       n.Content,
		Link:          n.Link,
		Date:          n.PublishedDate.Format("2006-01-02"),
		PublishedDate: n.PublishedDate,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		IsPublished:   n.IsPublished,
	}
}
