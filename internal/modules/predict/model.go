// README: Model-facing feature ordering, error taxonomy, and the model capability.
package predict

import (
	"errors"

	"farecast/internal/modules/features"
)

var (
	// ErrPreprocess covers feature/scaler mismatches: a missing feature key
	// or a scaler fitted on a different width.
	ErrPreprocess = errors.New("feature preprocessing failed")

	// ErrInference covers model invocation failures (e.g. vector shape
	// mismatch). Never retried: the model is static, retrying cannot help.
	ErrInference = errors.New("model inference failed")
)

// FeatureOrder is the exact column order the forecaster and scaler were
// fitted on. Reordering silently corrupts predictions.
var FeatureOrder = []string{
	features.KeyPickupLongitude,
	features.KeyPickupLatitude,
	features.KeyDropoffLongitude,
	features.KeyDropoffLatitude,
	features.KeyPassengerCount,
	features.KeyPickupHour,
	features.KeyPickupDay,
	features.KeyPickupMonth,
	features.KeyPickupYear,
	features.KeyPickupWeekday,
	features.KeyPickupIsWeekend,
	features.KeyTripDistance,
	features.KeyIsRushHour,
}

// NumericalFeatures lists the scaled columns. The two 0/1 flags
// (pickup_is_weekend, is_rush_hour) pass through untouched.
var NumericalFeatures = []string{
	features.KeyPickupLongitude,
	features.KeyPickupLatitude,
	features.KeyDropoffLongitude,
	features.KeyDropoffLatitude,
	features.KeyPassengerCount,
	features.KeyPickupHour,
	features.KeyPickupDay,
	features.KeyPickupMonth,
	features.KeyPickupYear,
	features.KeyPickupWeekday,
	features.KeyTripDistance,
}

// Model is the regression capability: a preprocessed vector of
// len(FeatureOrder) floats in, one fare out.
type Model interface {
	Predict(vector []float64) (float64, error)
}
