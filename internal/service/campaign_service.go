// internal/service/campaign_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pracharai/campaign-backend/internal/ai"
	"github.com/pracharai/campaign-backend/internal/logx"
	"github.com/pracharai/campaign-backend/internal/model"
	"github.com/pracharai/campaign-backend/internal/repository"
	"github.com/pracharai/campaign-backend/internal/storage"
)

// DefaultBrandColors is the palette used when the caller does not supply one.
var DefaultBrandColors = []string{"#FF5733", "#3498DB"}

// copyErrorCaption is returned as a single-element list when the caption-only
// call fails.
const copyErrorCaption = "Error generating copy. Please try again."

// CampaignService orchestrates one campaign generation end to end.
type CampaignService struct {
	LLM            ai.LLMClient
	Image          ai.ImageClient
	Uploader       storage.Uploader
	Store          repository.CampaignStore
	PlaceholderURL string
}

type planAndCaptions struct {
	Plan     model.CampaignPlan `json:"plan"`
	Captions []string           `json:"captions"`
}

// GenerateCampaign runs the full pipeline: plan and captions, poster, record
// assembly, best-effort persistence. Upstream failures degrade to fallbacks,
// so a record always comes back; only malformed caller input can fail a
// request, and that is rejected before this is called.
func (s *CampaignService) GenerateCampaign(ctx context.Context, req model.GenerateRequest) *model.CampaignRecord {
	plan, captions := s.generatePlan(ctx, req.Goal, req.BrandContext)

	colors := req.BrandColors
	if len(colors) == 0 {
		colors = DefaultBrandColors
	}

	imageURL := s.generatePoster(ctx, captions[0], colors)
	if imageURL == "" {
		logx.L().Warnw("image generation failed, using placeholder", "goal", req.Goal)
		imageURL = s.PlaceholderURL
	}

	record := &model.CampaignRecord{
		CampaignID: uuid.NewString(),
		UserID:     req.UserID,
		Goal:       req.Goal,
		Plan:       plan,
		Captions:   captions,
		ImageURL:   imageURL,
		Status:     model.StatusCompleted,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	// Persistence is best-effort: the record in hand is the response either way.
	if err := s.Store.Put(ctx, record); err != nil {
		logx.L().Errorw("failed to save campaign", "campaign_id", record.CampaignID, "error", err)
	} else {
		logx.L().Infow("campaign saved", "campaign_id", record.CampaignID)
	}

	return record
}

// generatePlan asks the text model for a plan and captions, falling back to
// the deterministic template when the call fails or the reply does not parse.
func (s *CampaignService) generatePlan(ctx context.Context, goal, brandContext string) (model.CampaignPlan, []string) {
	reply, err := s.LLM.Complete(ctx, planPrompt(goal, brandContext))
	if err != nil {
		logx.L().Errorw("text generation failed, using fallback plan", "error", err)
		return fallbackPlan(goal)
	}

	var parsed planAndCaptions
	if err := json.Unmarshal([]byte(StripCodeFence(reply)), &parsed); err != nil {
		logx.L().Warnw("model reply was not valid JSON, using fallback plan", "error", err)
		return fallbackPlan(goal)
	}

	return parsed.Plan, NormalizeCaptions(parsed.Captions)
}

// fallbackPlan builds the deterministic templated plan and captions for a goal.
func fallbackPlan(goal string) (model.CampaignPlan, []string) {
	plan := model.CampaignPlan{
		Hook:  "Attention Indian students!",
		Offer: "Amazing opportunity: " + goal,
		CTA:   "Join us today!",
	}
	captions := []string{
		"🚀 " + goal + " - Yeh opportunity miss mat karo! 🎯",
		"Arre bhai, " + goal + " ke liye ready ho jao! 💪✨",
		"Indian students, " + goal + " is calling! Join now! 🇮🇳🔥",
	}
	return plan, captions
}

// RegenerateCaptions runs the narrower caption-only call for an explicit plan.
// Transport or service failures become a single-element error message list,
// never a returned error.
func (s *CampaignService) RegenerateCaptions(ctx context.Context, plan model.CampaignPlan, brandContext string) []string {
	reply, err := s.LLM.Complete(ctx, copyPrompt(plan, brandContext))
	if err != nil {
		logx.L().Errorw("caption generation failed", "error", err)
		return []string{copyErrorCaption}
	}
	return NormalizeCaptions(SplitCaptions(reply))
}

// generatePoster builds the poster prompt, generates one square image and
// uploads it under a fresh key. Returns "" on any failure; no retries.
func (s *CampaignService) generatePoster(ctx context.Context, caption string, colors []string) string {
	img, err := s.Image.Generate(ctx, posterPrompt(caption, colors))
	if err != nil {
		logx.L().Errorw("poster generation failed", "error", err)
		return ""
	}

	filename := uuid.NewString() + ".png"
	url, err := s.Uploader.Upload(ctx, filename, "image/png", img)
	if err != nil {
		logx.L().Errorw("poster upload failed", "filename", filename, "error", err)
		return ""
	}

	logx.L().Infow("poster uploaded", "url", url)
	return url
}
