package api

import (
	"net/http"
	"strings"

	"github.com/foxzi/contentd/internal/service"
)

// FaqListResponse is the response for GET /faq. Category echoes the
// requested filter, or "all" when none was supplied.
type FaqListResponse struct {
	Faqs     []service.FaqResponse `json:"faqs"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	Limit    int                   `json:"limit"`
	Category string                `json:"category"`
}

// handleListFaqs handles GET /faq
func (s *Server) handleListFaqs(w http.ResponseWriter, r *http.Request) {
	p := parsePagination(r)
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	faqs, total, err := s.faqs.List(p.Page, p.Limit, category)
	if err != nil {
		s.logger.Error("failed to list faqs", "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to list faqs")
		return
	}

	echo := category
	if echo == "" {
		echo = "all"
	}

	s.sendJSON(w, http.StatusOK, FaqListResponse{
		Faqs:     faqs,
		Total:    total,
		Page:     p.Page,
		Limit:    p.Limit,
		Category: echo,
	})
}

// handleGetFaq handles GET /faq/{id}
func (s *Server) handleGetFaq(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.sendError(w, http.StatusBadRequest, "invalid faq id")
		return
	}

	faq, err := s.faqs.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get faq", "id", id, "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to get faq")
		return
	}
	if faq == nil {
		s.sendNotFound(w)
		return
	}

	s.sendJSON(w, http.StatusOK, faq)
}
