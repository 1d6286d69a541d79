// internal/service/prompts.go
package service

import (
	"fmt"
	"strings"

	"github.com/pracharai/campaign-backend/internal/ai"
	"github.com/pracharai/campaign-backend/internal/model"
)

const creativeDirectorSystem = `You are Prachar.ai, an expert Indian marketing creative director specializing in campaigns for Indian students and creators.

Analyze the user's goal and create a strategic Campaign Plan with:
- hook: An attention-grabbing opening line
- offer: The core value proposition
- cta: A clear call-to-action

Then write 3 Hinglish social media captions that follow the plan.

Respond with ONLY valid JSON in this exact format:
{
  "plan": {
    "hook": "Your hook here",
    "offer": "Your offer here",
    "cta": "Your CTA here"
  },
  "captions": ["Caption 1", "Caption 2", "Caption 3"]
}

Do NOT include any markdown formatting, explanations, or extra text. Return ONLY the JSON object.`

// planPrompt builds the single plan+captions request for a goal.
func planPrompt(goal, brandContext string) ai.Prompt {
	user := fmt.Sprintf("Create a campaign for this goal: '%s'. Return ONLY a JSON object with 'plan' (hook, offer, cta) and 'captions' (array of 3 strings).", goal)
	if brandContext != "" {
		user += "\n\nBrand context:\n" + brandContext
	}
	return ai.Prompt{System: creativeDirectorSystem, User: user}
}

// copyPrompt builds the narrower caption-only request from an explicit plan
// and brand context.
func copyPrompt(plan model.CampaignPlan, brandContext string) ai.Prompt {
	hook := plan.Hook
	if hook == "" {
		hook = "Attention-grabbing opening"
	}
	offer := plan.Offer
	if offer == "" {
		offer = "Value proposition"
	}
	cta := plan.CTA
	if cta == "" {
		cta = "Action to take"
	}
	brand := brandContext
	if brand == "" {
		brand = "No specific brand guidelines provided. Use general youth-friendly tone."
	}

	user := fmt.Sprintf(`You are Prachar.ai, an expert AI Creative Director specializing in Hinglish social media content for Indian students and creators.

Campaign Plan:
- Hook: %s
- Offer: %s
- Call-to-Action: %s

Brand Context:
%s

Task: Generate exactly 3 unique Hinglish social media captions (150-200 characters each) that:
1. Mix Hindi and English naturally (like Indian youth speak)
2. Include relevant emojis
3. Are culturally authentic (references to chai, coding, college life, etc.)
4. Follow the campaign plan structure (hook → offer → CTA)
5. Are engaging and shareable

Format: Return ONLY the 3 captions, separated by newlines, no numbering or extra text.`, hook, offer, cta, brand)

	return ai.Prompt{User: user}
}

// posterPrompt builds the image-generation request for a caption and palette.
func posterPrompt(caption string, colors []string) string {
	colorsText := "vibrant orange, blue, and purple"
	if len(colors) > 0 {
		colorsText = strings.Join(colors, ", ")
	}

	return fmt.Sprintf(`Create a professional, eye-catching social media poster for Indian youth audience.

Content: %s

Design Requirements:
- Modern, vibrant design with colors: %s
- Include abstract geometric shapes or gradients
- Professional typography with good readability
- Suitable for Instagram/Facebook posts
- Indian cultural aesthetic (modern, not traditional)
- High energy, youth-focused vibe
- No text in the image (text will be added separately)

Style: Modern, minimalist, professional, vibrant, youth-oriented`, caption, colorsText)
}
