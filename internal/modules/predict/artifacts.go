// README: Startup loading of the persisted forecaster and scaler blobs.
package predict

import (
	"encoding/gob"
	"fmt"
	"os"
)

// LoadArtifacts reads the two gob-encoded artifacts produced by the offline
// training pipeline: the boosted-forest forecaster and the fitted scaler.
// Called exactly once at process start; both results are immutable.
func LoadArtifacts(forecasterPath, scalerPath string) (*BoostedForest, *StandardScaler, error) {
	var forest BoostedForest
	if err := decodeFile(forecasterPath, &forest); err != nil {
		return nil, nil, fmt.Errorf("load forecaster: %w", err)
	}
	if forest.NumFeatures != len(FeatureOrder) {
		return nil, nil, fmt.Errorf("forecaster fitted on %d features, pipeline produces %d",
			forest.NumFeatures, len(FeatureOrder))
	}

	var scaler StandardScaler
	if err := decodeFile(scalerPath, &scaler); err != nil {
		return nil, nil, fmt.Errorf("load scaler: %w", err)
	}
	if len(scaler.Mean) != len(NumericalFeatures) {
		return nil, nil, fmt.Errorf("scaler fitted on %d columns, pipeline produces %d",
			len(scaler.Mean), len(NumericalFeatures))
	}

	return &forest, &scaler, nil
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
