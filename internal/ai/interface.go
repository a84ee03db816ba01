package ai

import "context"

// TextGenerator defines the contract for remote text-generation backends.
// This interface allows swapping providers (hosted completion endpoints,
// Gemini) without touching the explanation logic built on top of them.
type TextGenerator interface {
	// Generate sends one prompt and returns the raw completion text.
	Generate(ctx context.Context, prompt string) (string, error)
}
