// internal/model/campaign.go
package model

// StatusCompleted is the only status a generated campaign can end in: the
// pipeline always produces a full record, degrading individual steps instead
// of failing part-way.
const StatusCompleted = "completed"

// CampaignPlan is the hook/offer/cta triple produced by the creative model.
type CampaignPlan struct {
	Hook  string `json:"hook" dynamodbav:"hook"`
	Offer string `json:"offer" dynamodbav:"offer"`
	CTA   string `json:"cta" dynamodbav:"cta"`
}

// IsZero reports whether no plan field was supplied.
func (p CampaignPlan) IsZero() bool {
	return p.Hook == "" && p.Offer == "" && p.CTA == ""
}

// CampaignRecord is one finished campaign. It is written once to the campaign
// table and never updated.
type CampaignRecord struct {
	CampaignID string       `json:"campaign_id" dynamodbav:"campaign_id"`
	UserID     string       `json:"user_id" dynamodbav:"user_id"`
	Goal       string       `json:"goal" dynamodbav:"goal"`
	Plan       CampaignPlan `json:"plan" dynamodbav:"plan"`
	Captions   []string     `json:"captions" dynamodbav:"captions"`
	ImageURL   string       `json:"image_url" dynamodbav:"image_url"`
	Status     string       `json:"status" dynamodbav:"status"`
	CreatedAt  string       `json:"created_at" dynamodbav:"created_at"`
}

// GenerateRequest is the body of a campaign generation call.
type GenerateRequest struct {
	Goal         string   `json:"goal"`
	UserID       string   `json:"user_id"`
	BrandContext string   `json:"brand_context"`
	BrandColors  []string `json:"brand_colors"`
}
