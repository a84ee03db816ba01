// README: Trip request and canonical feature-set definitions.
package features

import "errors"

// ErrInvalidInput is returned when a trip request fails validation
// (malformed datetime, out-of-range coordinates, bad passenger count).
var ErrInvalidInput = errors.New("invalid trip input")

// PickupTimeLayout is the only accepted pickup_datetime format.
const PickupTimeLayout = "2006-01-02 15:04:05"

// TripRequest is the raw prediction input as received over the wire.
type TripRequest struct {
	PickupDatetime   string  `json:"pickup_datetime"`
	PickupLongitude  float64 `json:"pickup_longitude"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	PassengerCount   int     `json:"passenger_count"`
}

// Canonical feature keys. The model and scaler were fitted against these
// exact names; every consumer addresses the set through them.
const (
	KeyPickupLongitude  = "pickup_longitude"
	KeyPickupLatitude   = "pickup_latitude"
	KeyDropoffLongitude = "dropoff_longitude"
	KeyDropoffLatitude  = "dropoff_latitude"
	KeyPassengerCount   = "passenger_count"
	KeyPickupHour       = "pickup_hour"
	KeyPickupDay        = "pickup_day"
	KeyPickupMonth      = "pickup_month"
	KeyPickupYear       = "pickup_year"
	KeyPickupWeekday    = "pickup_weekday"
	KeyPickupIsWeekend  = "pickup_is_weekend"
	KeyTripDistance     = "trip_distance"
	KeyIsRushHour       = "is_rush_hour"
)

// FeatureSet is the derived feature mapping produced once per request by
// Extract. Integer-valued features (counts, calendar fields, 0/1 flags) are
// stored as whole-valued float64s. Treat as read-only after extraction.
type FeatureSet map[string]float64
