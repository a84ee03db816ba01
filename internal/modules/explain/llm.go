// README: LLM-backed explanation engine with degrade-gracefully fallback.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"farecast/internal/ai"
	"farecast/internal/logger"
	"farecast/internal/modules/features"
)

// DefaultLLMTimeout bounds the remote explanation call. A timeout counts as
// an LLM failure and triggers the fixed fallback.
const DefaultLLMTimeout = 15 * time.Second

// LLM delegates explanation generation to a remote text-generation backend.
// Explain never fails: the predicted fare is useful without commentary, so
// every provider or parsing error degrades to the fixed fallback insight.
type LLM struct {
	gen     ai.TextGenerator
	timeout time.Duration
}

func NewLLM(gen ai.TextGenerator, timeout time.Duration) *LLM {
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	return &LLM{gen: gen, timeout: timeout}
}

// Explain prompts the backend and parses its JSON reply. The returned error
// is always nil.
func (l *LLM) Explain(ctx context.Context, fs features.FeatureSet, predictedFare float64) (Insight, error) {
	prompt, err := buildPrompt(fs, predictedFare)
	if err != nil {
		logger.Warn("explanation prompt build failed, serving fallback", zap.Error(err))
		return Fallback(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	raw, err := l.gen.Generate(ctx, prompt)
	if err != nil {
		logger.Warn("explanation backend call failed, serving fallback", zap.Error(err))
		return Fallback(), nil
	}

	insight, err := parseInsight(raw)
	if err != nil {
		logger.Warn("explanation response unparseable, serving fallback", zap.Error(err))
		return Fallback(), nil
	}
	return insight, nil
}

func buildPrompt(fs features.FeatureSet, predictedFare float64) (string, error) {
	weekdayIdx := int(fs[features.KeyPickupWeekday])
	if weekdayIdx < 0 || weekdayIdx >= len(weekdayNames) {
		return "", fmt.Errorf("pickup_weekday %d outside 0..6", weekdayIdx)
	}

	rush := "no"
	if fs[features.KeyIsRushHour] == 1 {
		rush = "yes"
	}

	return fmt.Sprintf(`You are a taxi fare assistant. A regression model predicted a fare of $%.2f for this trip:
- Trip distance: %.2f km
- Passenger count: %d
- Pickup hour: %d (24h clock)
- Rush hour pickup: %s
- Day of week: %s

Context: rush hours are 7-9 AM and 4-7 PM on weekdays. Early morning (5-6 AM) and afternoon peak (3-4 PM) pickups, as well as Thursday and Sunday trips, historically cost more.

Explain this fare to the rider in one or two sentences and suggest one realistic way to save money on a similar trip. Respond with JSON only, exactly two keys: "explanation" and "recommendation".`,
		predictedFare,
		fs[features.KeyTripDistance],
		int(fs[features.KeyPassengerCount]),
		int(fs[features.KeyPickupHour]),
		rush,
		weekdayNames[weekdayIdx],
	), nil
}

// parseInsight tries a strict JSON parse first, then retries on the widest
// brace-delimited substring. The greedy first-{-to-last-} span is a known
// limitation: braces inside a verbose explanation can defeat it.
func parseInsight(raw string) (Insight, error) {
	if insight, err := decodeInsight(raw); err == nil {
		return insight, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return Insight{}, fmt.Errorf("%w: no JSON object in %q", ErrResponseParse, raw)
	}

	insight, err := decodeInsight(raw[start : end+1])
	if err != nil {
		return Insight{}, fmt.Errorf("%w: %v", ErrResponseParse, err)
	}
	return insight, nil
}

func decodeInsight(text string) (Insight, error) {
	var insight Insight
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		return Insight{}, err
	}
	if insight.Explanation == "" || insight.Recommendation == "" {
		return Insight{}, fmt.Errorf("missing explanation or recommendation key")
	}
	return insight, nil
}
