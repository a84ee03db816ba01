// README: Converts a raw trip request into the canonical feature set.
package features

import (
	"fmt"
	"time"
)

// Extract validates a trip request and derives the canonical feature set:
// the four raw coordinates, passenger count, calendar fields of the pickup
// timestamp, weekend and rush-hour flags, and the haversine trip distance.
// It is a pure function of its input.
func Extract(req TripRequest) (FeatureSet, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// Strict parse, naive local time. No partial matches, no timezone math.
	pickup, err := time.Parse(PickupTimeLayout, req.PickupDatetime)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup_datetime %q does not match %q",
			ErrInvalidInput, req.PickupDatetime, "YYYY-MM-DD HH:MM:SS")
	}

	// Go counts weekdays from Sunday=0; the model was fitted on Monday=0.
	weekday := (int(pickup.Weekday()) + 6) % 7

	isWeekend := 0
	if weekday >= 5 {
		isWeekend = 1
	}

	hour := pickup.Hour()
	isRushHour := 0
	if isWeekend == 0 && ((hour >= 7 && hour <= 9) || (hour >= 16 && hour <= 19)) {
		isRushHour = 1
	}

	distance := haversineKm(
		req.PickupLongitude, req.PickupLatitude,
		req.DropoffLongitude, req.DropoffLatitude,
	)

	return FeatureSet{
		KeyPickupLongitude:  req.PickupLongitude,
		KeyPickupLatitude:   req.PickupLatitude,
		KeyDropoffLongitude: req.DropoffLongitude,
		KeyDropoffLatitude:  req.DropoffLatitude,
		KeyPassengerCount:   float64(req.PassengerCount),
		KeyPickupHour:       float64(hour),
		KeyPickupDay:        float64(pickup.Day()),
		KeyPickupMonth:      float64(int(pickup.Month())),
		KeyPickupYear:       float64(pickup.Year()),
		KeyPickupWeekday:    float64(weekday),
		KeyPickupIsWeekend:  float64(isWeekend),
		KeyTripDistance:     distance,
		KeyIsRushHour:       float64(isRushHour),
	}, nil
}

func validate(req TripRequest) error {
	if req.PassengerCount < 1 {
		return fmt.Errorf("%w: passenger_count must be positive, got %d", ErrInvalidInput, req.PassengerCount)
	}
	for _, c := range []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"pickup_longitude", req.PickupLongitude, -180, 180},
		{"pickup_latitude", req.PickupLatitude, -90, 90},
		{"dropoff_longitude", req.DropoffLongitude, -180, 180},
		{"dropoff_latitude", req.DropoffLatitude, -90, 90},
	} {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidInput, c.name, c.value, c.min, c.max)
		}
	}
	return nil
}
