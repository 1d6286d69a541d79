package ai_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pracharai/campaign-backend/internal/ai"
)

type fakeInvoker struct {
	in   *bedrockruntime.InvokeModelInput
	body string
	err  error
}

func (f *fakeInvoker) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestBedrockTextComplete(t *testing.T) {
	api := &fakeInvoker{body: `{"content": [{"text": "model reply"}]}`}
	c := &ai.BedrockText{Client: api, Model: "anthropic.claude-3-5-sonnet-20240620-v1:0"}

	out, err := c.Complete(context.Background(), ai.Prompt{System: "sys", User: "usr"})
	require.NoError(t, err)
	assert.Equal(t, "model reply", out)

	require.NotNil(t, api.in)
	assert.Equal(t, "anthropic.claude-3-5-sonnet-20240620-v1:0", *api.in.ModelId)
	assert.Nil(t, api.in.GuardrailIdentifier)

	var req map[string]any
	require.NoError(t, json.Unmarshal(api.in.Body, &req))
	assert.Equal(t, "bedrock-2023-05-31", req["anthropic_version"])
	assert.Equal(t, "sys", req["system"])
	assert.Equal(t, float64(1024), req["max_tokens"])

	msgs, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
}

func TestBedrockTextGuardrail(t *testing.T) {
	api := &fakeInvoker{body: `{"content": [{"text": "ok"}]}`}
	c := &ai.BedrockText{Client: api, Model: "m", GuardrailID: "gr-1", GuardrailVersion: "DRAFT"}

	_, err := c.Complete(context.Background(), ai.Prompt{User: "u"})
	require.NoError(t, err)

	require.NotNil(t, api.in.GuardrailIdentifier)
	assert.Equal(t, "gr-1", *api.in.GuardrailIdentifier)
	assert.Equal(t, "DRAFT", *api.in.GuardrailVersion)
}

func TestBedrockTextErrors(t *testing.T) {
	c := &ai.BedrockText{Client: &fakeInvoker{err: errors.New("throttled")}, Model: "m"}
	_, err := c.Complete(context.Background(), ai.Prompt{User: "u"})
	assert.Error(t, err)

	c = &ai.BedrockText{Client: &fakeInvoker{body: `{"content": []}`}, Model: "m"}
	_, err = c.Complete(context.Background(), ai.Prompt{User: "u"})
	assert.Error(t, err)
}

func TestBedrockImageGenerate(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	api := &fakeInvoker{body: `{"images": ["` + base64.StdEncoding.EncodeToString(png) + `"]}`}
	c := &ai.BedrockImage{Client: api, Model: "amazon.titan-image-generator-v1"}

	out, err := c.Generate(context.Background(), "poster prompt")
	require.NoError(t, err)
	assert.Equal(t, png, out)

	var req map[string]any
	require.NoError(t, json.Unmarshal(api.in.Body, &req))
	assert.Equal(t, "TEXT_IMAGE", req["taskType"])

	cfg, ok := req["imageGenerationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1024), cfg["height"])
	assert.Equal(t, float64(1024), cfg["width"])
	assert.Equal(t, float64(1), cfg["numberOfImages"])
	assert.Equal(t, 8.0, cfg["cfgScale"])
	assert.Equal(t, "premium", cfg["quality"])
}

func TestBedrockImageNoImages(t *testing.T) {
	c := &ai.BedrockImage{Client: &fakeInvoker{body: `{"images": []}`}, Model: "m"}
	_, err := c.Generate(context.Background(), "p")
	assert.Error(t, err)
}
