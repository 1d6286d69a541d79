// internal/ai/llm.go
package ai

import "context"

// Prompt is a single system+user exchange sent to a text model.
type Prompt struct {
	System string
	User   string
}

// LLMClient abstracts the hosted text-generation model so implementations can
// be swapped and faked in tests.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// ImageClient abstracts the hosted image-generation model. Generate returns
// the raw bytes of one square PNG for the given prompt.
type ImageClient interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
