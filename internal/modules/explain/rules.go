// README: Deterministic rule-based fare explanation engine.
package explain

import (
	"context"
	"fmt"
	"strings"

	"farecast/internal/modules/features"
)

// RuleBased produces explanations and savings recommendations from fixed
// local rules. No I/O, fully deterministic.
type RuleBased struct{}

func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Explain builds the factor sentence and picks up to two recommendations.
func (RuleBased) Explain(_ context.Context, fs features.FeatureSet, predictedFare float64) (Insight, error) {
	distance := fs[features.KeyTripDistance]
	passengers := int(fs[features.KeyPassengerCount])
	hour := int(fs[features.KeyPickupHour])
	isRushHour := fs[features.KeyIsRushHour] == 1

	weekdayIdx := int(fs[features.KeyPickupWeekday])
	if weekdayIdx < 0 || weekdayIdx >= len(weekdayNames) {
		return Insight{}, fmt.Errorf("pickup_weekday %d outside 0..6", weekdayIdx)
	}
	weekday := weekdayNames[weekdayIdx]

	factors := buildFactors(distance, passengers, hour, isRushHour, weekday)
	explanation := buildExplanation(predictedFare, factors)
	recommendation := buildRecommendation(distance, passengers, hour, isRushHour, weekday, predictedFare)

	return Insight{Explanation: explanation, Recommendation: recommendation}, nil
}

func distanceDescription(distance float64) string {
	switch {
	case distance < 1:
		return "very short"
	case distance < 2:
		return "short"
	case distance < 5:
		return "medium"
	case distance < 10:
		return "long"
	default:
		return "very long"
	}
}

func buildFactors(distance float64, passengers, hour int, isRushHour bool, weekday string) []string {
	factors := []string{
		fmt.Sprintf("a %s trip distance of %.2f km", distanceDescription(distance), distance),
	}

	// The 15-16 "afternoon peak" window is a narrative signal distinct from
	// the 16-19 rush-hour flag; the two are intentionally not unified.
	if hour == 5 || hour == 6 {
		factors = append(factors, "early morning travel (typically higher fares)")
	} else if hour == 15 || hour == 16 {
		factors = append(factors, "afternoon peak travel time")
	}

	if isRushHour {
		factors = append(factors, "rush hour pricing")
	}

	if weekday == "Thursday" || weekday == "Sunday" {
		factors = append(factors, fmt.Sprintf("%s travel (historically higher fares)", weekday))
	}

	if passengers == 1 {
		factors = append(factors, "solo trip (higher per-passenger fare)")
	} else {
		factors = append(factors, fmt.Sprintf("shared trip with %d passengers", passengers))
	}

	return factors
}

func buildExplanation(predictedFare float64, factors []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your estimated fare of $%.2f is based on %s", predictedFare, factors[0])

	if len(factors) == 1 {
		b.WriteString(".")
		return b.String()
	}
	for i, factor := range factors[1:] {
		if i == len(factors)-2 {
			fmt.Fprintf(&b, ", and %s.", factor)
		} else {
			fmt.Fprintf(&b, ", %s", factor)
		}
	}
	return b.String()
}

func buildRecommendation(distance float64, passengers, hour int, isRushHour bool, weekday string, predictedFare float64) string {
	var recs []string

	if isRushHour {
		recs = append(recs, "Consider traveling outside rush hours (7-9 AM, 4-7 PM) for potentially lower fares")
	}

	if hour == 5 || hour == 6 || hour == 15 || hour == 16 {
		window := "1-2 PM"
		if hour == 5 || hour == 6 {
			window = "7-8 AM"
		}
		recs = append(recs, fmt.Sprintf("Shifting your trip to %s could reduce the fare", window))
	}

	if weekday == "Thursday" || weekday == "Sunday" {
		recs = append(recs, fmt.Sprintf("If flexible, consider traveling on days other than %s for potentially lower fares", weekday))
	}

	if passengers == 1 && predictedFare > 10 {
		recs = append(recs, "Sharing your ride with others could make this trip more cost-effective per person")
	}

	if distance > 5 {
		recs = append(recs, "For this longer trip, exploring alternate routes might offer savings")
	}

	if len(recs) == 0 {
		return "This fare is optimal based on current conditions"
	}

	recommendation := recs[0]
	if len(recs) > 1 {
		recommendation += fmt.Sprintf(". Additionally, %s", strings.ToLower(recs[1]))
	}
	return recommendation
}
