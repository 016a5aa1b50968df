package api

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/foxzi/contentd/internal/models"
	"github.com/foxzi/contentd/internal/service"
)

// ContactRequest is the request body for POST /contact
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// handleSubmitContact handles POST /contact. Validation happens here,
// before any storage call, so a rejected request leaves no partial
// writes behind.
func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		s.sendError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		s.sendError(w, http.StatusBadRequest, "email is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		s.sendError(w, http.StatusBadRequest, "email is not a valid address")
		return
	}
	category, ok := models.ParseContactCategory(req.Category)
	if !ok {
		s.sendError(w, http.StatusBadRequest, "unknown contact category")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.sendError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := s.contacts.Submit(service.SubmitContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: category,
		Message:  req.Message,
	})
	if err != nil {
		s.logger.Error("failed to submit contact", "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to submit contact")
		return
	}

	s.sendJSON(w, http.StatusOK, resp)
}

// handleContactCategories handles GET /contact/categories
func (s *Server) handleContactCategories(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, s.contacts.Categories())
}
