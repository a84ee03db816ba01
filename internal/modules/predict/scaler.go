// README: Fitted standard scaler for the numerical feature columns.
package predict

import "fmt"

// StandardScaler is a fitted (x - mean) / scale transform over the
// NumericalFeatures columns, in that order. Loaded once at startup and
// read-only afterwards, so it is safe to share across requests.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Transform scales one row of numerical features. The input length must
// match the fitted width.
func (s *StandardScaler) Transform(values []float64) ([]float64, error) {
	if len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("%w: scaler mean/scale widths differ (%d vs %d)",
			ErrPreprocess, len(s.Mean), len(s.Scale))
	}
	if len(values) != len(s.Mean) {
		return nil, fmt.Errorf("%w: scaler fitted on %d columns, got %d values",
			ErrPreprocess, len(s.Mean), len(values))
	}

	out := make([]float64, len(values))
	for i, v := range values {
		div := s.Scale[i]
		if div == 0 {
			// Zero-variance column: scikit-learn leaves scale at 1.
			div = 1
		}
		out[i] = (v - s.Mean[i]) / div
	}
	return out, nil
}
