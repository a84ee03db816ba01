// README: Explanation strategy contract and shared insight type.
package explain

import (
	"context"
	"errors"

	"farecast/internal/modules/features"
)

// ErrResponseParse is returned internally when the remote completion text
// cannot be parsed as an insight. It never escapes the LLM explainer.
var ErrResponseParse = errors.New("unparseable explanation response")

// Insight is the narrative half of a prediction.
type Insight struct {
	Explanation    string `json:"explanation"`
	Recommendation string `json:"recommendation"`
}

// Explainer turns a feature set and a predicted fare into rider-facing
// text. The variant (rule engine or LLM-backed) is chosen at configuration
// time, not per request.
type Explainer interface {
	Explain(ctx context.Context, fs features.FeatureSet, predictedFare float64) (Insight, error)
}

// weekdayNames maps the model's weekday encoding (Monday=0) to names.
// Any index outside the table is malformed input and must fail loudly.
var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Fallback returns the fixed degraded insight used whenever the remote
// explanation path fails. The predicted fare is still valid without
// commentary, so this is served with a successful response.
func Fallback() Insight {
	return Insight{
		Explanation:    "Unable to generate explanation at this time.",
		Recommendation: "Please check back later.",
	}
}
