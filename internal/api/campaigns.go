package api

import (
	"net/http"

	"github.com/foxzi/contentd/internal/service"
)

// CampaignListResponse is the response for GET /campaigns
type CampaignListResponse struct {
	Campaigns []service.CampaignResponse `json:"campaigns"`
	Total     int                        `json:"total"`
	Page      int                        `json:"page"`
	Limit     int                        `json:"limit"`
}

// handleListCampaigns handles GET /campaigns
func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	p := parsePagination(r)

	campaigns, total, err := s.campaigns.List(p.Page, p.Limit)
	if err != nil {
		s.logger.Error("failed to list campaigns", "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to list campaigns")
		return
	}

	s.sendJSON(w, http.StatusOK, CampaignListResponse{
		Campaigns: campaigns,
		Total:     total,
		Page:      p.Page,
		Limit:     p.Limit,
	})
}

// handleGetCampaign handles GET /campaigns/{id}
func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.sendError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	campaign, err := s.campaigns.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get campaign", "id", id, "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to get campaign")
		return
	}
	if campaign == nil {
		s.sendNotFound(w)
		return
	}

	s.sendJSON(w, http.StatusOK, campaign)
}

// handleCampaignValidity handles GET /campaigns/{id}/validity. Absence
// of the campaign is a valid answer, not a request error, so the outcome
// is always served with 200.
func (s *Server) handleCampaignValidity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		s.sendError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	result, err := s.campaigns.CheckValidity(id)
	if err != nil {
		s.logger.Error("failed to check campaign validity", "id", id, "error", err)
		s.sendError(w, http.StatusInternalServerError, "Failed to check campaign validity")
		return
	}

	s.sendJSON(w, http.StatusOK, result)
}
