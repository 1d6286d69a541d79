// internal/ai/openai.go
package ai

import (
	"context"
	"encoding/base64"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIText implements LLMClient using the official openai-go SDK (chat
// completions). BaseURL allows pointing at any OpenAI-compatible endpoint.
type OpenAIText struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAIText(model, apiKey, baseURL string) *OpenAIText {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIText{Model: model, Opts: opts}
}

func (o *OpenAIText) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	var msgs []openai.ChatCompletionMessageParamUnion
	if prompt.System != "" {
		msgs = append(msgs, openai.SystemMessage(prompt.System))
	}
	msgs = append(msgs, openai.UserMessage(prompt.User))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: msgs,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// OpenAIImage implements ImageClient using the openai-go images API.
type OpenAIImage struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAIImage(model, apiKey, baseURL string) *OpenAIImage {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIImage{Model: model, Opts: opts}
}

func (o *OpenAIImage) Generate(ctx context.Context, prompt string) ([]byte, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(o.Model),
		Prompt:         prompt,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize1024x1024,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("openai: no images returned")
	}
	return base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
}
