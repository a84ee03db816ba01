// README: Feature scaling and fixed-order vector assembly.
package predict

import (
	"fmt"

	"farecast/internal/modules/features"
)

// Preprocess scales the numerical features and assembles the final model
// vector in FeatureOrder, regardless of map iteration order. The two 0/1
// flags bypass the scaler.
func Preprocess(fs features.FeatureSet, scaler *StandardScaler) ([]float64, error) {
	numeric := make([]float64, len(NumericalFeatures))
	for i, key := range NumericalFeatures {
		v, ok := fs[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing feature %q", ErrPreprocess, key)
		}
		numeric[i] = v
	}

	scaled, err := scaler.Transform(numeric)
	if err != nil {
		return nil, err
	}

	scaledByKey := make(map[string]float64, len(NumericalFeatures))
	for i, key := range NumericalFeatures {
		scaledByKey[key] = scaled[i]
	}

	vector := make([]float64, len(FeatureOrder))
	for i, key := range FeatureOrder {
		if v, ok := scaledByKey[key]; ok {
			vector[i] = v
			continue
		}
		v, ok := fs[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing feature %q", ErrPreprocess, key)
		}
		vector[i] = v
	}
	return vector, nil
}
