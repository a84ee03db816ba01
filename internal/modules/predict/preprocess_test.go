package predict

import (
	"errors"
	"testing"

	"farecast/internal/modules/features"
)

func identityScaler() *StandardScaler {
	n := len(NumericalFeatures)
	s := &StandardScaler{Mean: make([]float64, n), Scale: make([]float64, n)}
	for i := range s.Scale {
		s.Scale[i] = 1
	}
	return s
}

func sampleFeatures() features.FeatureSet {
	return features.FeatureSet{
		features.KeyPickupLongitude:  -73.985,
		features.KeyPickupLatitude:   40.748,
		features.KeyDropoffLongitude: -73.968,
		features.KeyDropoffLatitude:  40.785,
		features.KeyPassengerCount:   2,
		features.KeyPickupHour:       8,
		features.KeyPickupDay:        14,
		features.KeyPickupMonth:      3,
		features.KeyPickupYear:       2024,
		features.KeyPickupWeekday:    3,
		features.KeyPickupIsWeekend:  0,
		features.KeyTripDistance:     4.12,
		features.KeyIsRushHour:       1,
	}
}

func TestPreprocess_OrderAndLength(t *testing.T) {
	fs := sampleFeatures()
	vector, err := Preprocess(fs, identityScaler())
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if len(vector) != 13 {
		t.Fatalf("vector length = %d, want 13", len(vector))
	}
	// Identity scaler: every position must equal the named feature,
	// independent of map iteration order.
	for i, key := range FeatureOrder {
		if vector[i] != fs[key] {
			t.Errorf("vector[%d] = %v, want %s = %v", i, vector[i], key, fs[key])
		}
	}
}

func TestPreprocess_FlagsBypassScaler(t *testing.T) {
	scaler := identityScaler()
	for i := range scaler.Scale {
		scaler.Scale[i] = 2 // halves every scaled column
	}

	fs := sampleFeatures()
	vector, err := Preprocess(fs, scaler)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}

	if got := vector[10]; got != 0 { // pickup_is_weekend
		t.Errorf("pickup_is_weekend = %v, want untouched 0", got)
	}
	if got := vector[12]; got != 1 { // is_rush_hour
		t.Errorf("is_rush_hour = %v, want untouched 1", got)
	}
	if got, want := vector[4], 1.0; got != want { // passenger_count halved
		t.Errorf("scaled passenger_count = %v, want %v", got, want)
	}
}

func TestPreprocess_MissingFeature(t *testing.T) {
	fs := sampleFeatures()
	delete(fs, features.KeyTripDistance)
	if _, err := Preprocess(fs, identityScaler()); !errors.Is(err, ErrPreprocess) {
		t.Errorf("Preprocess() error = %v, want ErrPreprocess", err)
	}
}

func TestPreprocess_ScalerWidthMismatch(t *testing.T) {
	scaler := &StandardScaler{Mean: make([]float64, 5), Scale: make([]float64, 5)}
	if _, err := Preprocess(sampleFeatures(), scaler); !errors.Is(err, ErrPreprocess) {
		t.Errorf("Preprocess() error = %v, want ErrPreprocess", err)
	}
}
