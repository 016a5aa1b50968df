package api

import (
	"net/http"

	"github.com/foxzi/contentd/internal/service"
)

// NewsListResponse is the response for GET /news
type NewsListResponse struct {
	News  []service.NewsResponse `json:"news"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// handleListNews handles GET /news
func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	p := parsePagination(r)

	news, total, err := s.news.List(p.Page, p.Limit)
	if err != nil {
		s.logger.Error("failed to list news", "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to list news")
		return
	}

	s.sendJSON(w, http.StatusOK, NewsListResponse{
		News:  news,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// handleGetNews handles GET /news/{id}
func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.sendError(w, http.StatusBadRequest, "invalid news id")
		return
	}

	item, err := s.news.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get news", "id", id, "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to get news")
		return
	}
	if item == nil {
		s.sendNotFound(w)
		return
	}

	s.sendJSON(w, http.StatusOK, item)
}
