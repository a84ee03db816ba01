// README: Generic HTTP text-generation provider (OpenAI-compatible and friends).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// httpClient is shared by all completion requests; the 30s timeout guards
// against stalled connections while context cancellation is still honoured
// via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

const (
	defaultMaxTokens   = 300
	defaultTemperature = 0.7
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HTTPProvider implements TextGenerator against a hosted completion
// endpoint. The provider name selects the request/response field layout;
// the endpoint, key and model come from configuration.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	model    string
	shape    providerShape
}

// NewHTTPProvider builds a provider for the named API family. An empty
// apiKey is tolerated: the request is simply sent unauthenticated and the
// caller's fallback handling absorbs the rejection.
func NewHTTPProvider(provider, endpoint, apiKey, model string) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		shape:    shapeFor(provider),
	}
}

// Generate sends prompt as a single completion request and extracts the
// completion text along the provider's response path.
func (p *HTTPProvider) Generate(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":       p.model,
		"max_tokens":  defaultMaxTokens,
		"temperature": defaultTemperature,
	}
	if p.shape.ChatMessages {
		payload["messages"] = []chatMessage{{Role: "user", Content: prompt}}
	} else {
		payload[p.shape.PromptField] = prompt
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("completion: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("completion: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("completion: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("completion: endpoint returned %d (raw: %s)", resp.StatusCode, body)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("completion: unmarshal response: %w", err)
	}

	text, err := lookupPath(doc, p.shape.ResponsePath)
	if err != nil {
		return "", fmt.Errorf("completion: %w (raw: %s)", err, body)
	}
	return text, nil
}
