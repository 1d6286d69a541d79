// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pracharai/campaign-backend/internal/apperrors"
	"github.com/pracharai/campaign-backend/internal/auth"
	"github.com/pracharai/campaign-backend/internal/logx"
	"github.com/pracharai/campaign-backend/internal/model"
	"github.com/pracharai/campaign-backend/internal/service"
)

// CampaignController holds the dependencies for the campaign HTTP handlers.
type CampaignController struct {
	CampaignService *service.CampaignService
}

// Generate handles POST /campaigns.
func (c *CampaignController) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerateRequest(r)
	if err != nil {
		writeClientError(w, err)
		return
	}

	// A gateway-verified identity wins over whatever the body claims.
	if uc := auth.FromContext(r.Context()); uc != nil && uc.UserID != "" {
		logx.L().Infow("user authenticated via gateway", "user_id", uc.UserID)
		req.UserID = uc.UserID
	}

	logx.L().Infow("processing campaign request", "user_id", req.UserID, "goal", req.Goal)

	record := c.CampaignService.GenerateCampaign(r.Context(), req)
	writeJSON(w, http.StatusOK, record)
}

func parseGenerateRequest(r *http.Request) (model.GenerateRequest, error) {
	var req model.GenerateRequest

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		return req, &apperrors.ErrEmptyBody{}
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, &apperrors.ErrBadJSON{Cause: err}
	}
	if req.Goal == "" {
		return req, apperrors.NewMissingField("goal")
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}
	return req, nil
}

// RegenerateCaptions handles POST /campaigns/captions.
func (c *CampaignController) RegenerateCaptions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plan         model.CampaignPlan `json:"plan"`
		BrandContext string             `json:"brand_context"`
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		writeClientError(w, &apperrors.ErrEmptyBody{})
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeClientError(w, &apperrors.ErrBadJSON{Cause: err})
		return
	}
	if req.Plan.IsZero() {
		writeClientError(w, apperrors.NewMissingField("plan"))
		return
	}

	captions := c.CampaignService.RegenerateCaptions(r.Context(), req.Plan, req.BrandContext)
	writeJSON(w, http.StatusOK, map[string]any{"captions": captions})
}

// Healthz handles GET /healthz.
func (c *CampaignController) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeClientError(w http.ResponseWriter, err error) {
	var missing *apperrors.ErrMissingField
	var badJSON *apperrors.ErrBadJSON
	var empty *apperrors.ErrEmptyBody

	status := http.StatusInternalServerError
	label := "Internal Server Error"
	if errors.As(err, &missing) || errors.As(err, &badJSON) || errors.As(err, &empty) {
		status = http.StatusBadRequest
		label = "Bad Request"
	}

	writeJSON(w, status, map[string]string{
		"error":   label,
		"message": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
