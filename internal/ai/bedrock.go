// internal/ai/bedrock.go
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// InvokeModelAPI is the slice of the Bedrock runtime client this package uses.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockText invokes an Anthropic model hosted on Amazon Bedrock. When a
// guardrail id is configured every invocation carries it.
type BedrockText struct {
	Client           InvokeModelAPI
	Model            string
	GuardrailID      string
	GuardrailVersion string
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Temperature      float64            `json:"temperature"`
	System           string             `json:"system,omitempty"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (b *BedrockText) Complete(ctx context.Context, prompt Prompt) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        1024,
		Temperature:      0.7,
		System:           prompt.System,
		Messages:         []anthropicMessage{{Role: "user", Content: prompt.User}},
	})
	if err != nil {
		return "", err
	}

	in := &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.Model),
		Body:        body,
		ContentType: aws.String("application/json"),
	}
	if b.GuardrailID != "" {
		in.GuardrailIdentifier = aws.String(b.GuardrailID)
		in.GuardrailVersion = aws.String(b.GuardrailVersion)
	}

	out, err := b.Client.InvokeModel(ctx, in)
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", err
	}
	if len(resp.Content) == 0 {
		return "", errors.New("bedrock: empty content in model reply")
	}
	return resp.Content[0].Text, nil
}

// BedrockImage invokes the Titan image generator hosted on Amazon Bedrock.
type BedrockImage struct {
	Client InvokeModelAPI
	Model  string
}

type titanRequest struct {
	TaskType          string `json:"taskType"`
	TextToImageParams struct {
		Text string `json:"text"`
	} `json:"textToImageParams"`
	ImageGenerationConfig struct {
		NumberOfImages int     `json:"numberOfImages"`
		Height         int     `json:"height"`
		Width          int     `json:"width"`
		CfgScale       float64 `json:"cfgScale"`
		Quality        string  `json:"quality"`
	} `json:"imageGenerationConfig"`
}

type titanResponse struct {
	Images []string `json:"images"`
}

func (b *BedrockImage) Generate(ctx context.Context, prompt string) ([]byte, error) {
	var req titanRequest
	req.TaskType = "TEXT_IMAGE"
	req.TextToImageParams.Text = prompt
	req.ImageGenerationConfig.NumberOfImages = 1
	req.ImageGenerationConfig.Height = 1024
	req.ImageGenerationConfig.Width = 1024
	req.ImageGenerationConfig.CfgScale = 8.0
	req.ImageGenerationConfig.Quality = "premium"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	out, err := b.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.Model),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, err
	}

	var resp titanResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Images) == 0 {
		return nil, errors.New("bedrock: no images returned")
	}
	return base64.StdEncoding.DecodeString(resp.Images[0])
}
