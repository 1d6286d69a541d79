// internal/ai/mock.go
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
)

// MockLLM is a local placeholder that never calls an external model, for
// running the stack without AWS or OpenAI credentials.
type MockLLM struct{}

func (MockLLM) Complete(context.Context, Prompt) (string, error) {
	out := map[string]any{
		"plan": map[string]string{
			"hook":  "Sab log dhyan do!",
			"offer": "Ek dum local test offer",
			"cta":   "Abhi try karo!",
		},
		"captions": []string{
			"Local test caption 1 🚀",
			"Local test caption 2 ✨",
			"Local test caption 3 🎯",
		},
	}
	b, _ := json.Marshal(out)
	return string(b), nil
}

// onePixelPNG is the smallest valid PNG (1x1, transparent).
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// MockImage returns a tiny placeholder PNG without calling an external model.
type MockImage struct{}

func (MockImage) Generate(context.Context, string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(onePixelPNG)
}
