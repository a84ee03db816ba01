// README: Fare prediction service wrapping the loaded forecaster and scaler.
package predict

import (
	"errors"
	"fmt"
	"math"

	"farecast/internal/modules/features"
)

// Service runs the numeric half of the pipeline: preprocess a feature set
// and invoke the regression model. Both collaborators are loaded once at
// startup and shared read-only, so Service is safe for concurrent use.
type Service struct {
	model  Model
	scaler *StandardScaler
}

func NewService(model Model, scaler *StandardScaler) *Service {
	return &Service{model: model, scaler: scaler}
}

// Predict returns the fare for an extracted feature set, rounded to two
// decimal places. Model failures are wrapped as ErrInference and propagate;
// there is no silent default fare.
func (s *Service) Predict(fs features.FeatureSet) (float64, error) {
	vector, err := Preprocess(fs, s.scaler)
	if err != nil {
		return 0, err
	}

	fare, err := s.model.Predict(vector)
	if err != nil {
		if !errors.Is(err, ErrInference) {
			err = fmt.Errorf("%w: %v", ErrInference, err)
		}
		return 0, err
	}

	return math.Round(fare*100) / 100, nil
}
