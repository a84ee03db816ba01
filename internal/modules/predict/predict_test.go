package predict

import (
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distanceStump builds a one-split tree on trip_distance (column 11).
func distanceStump(threshold, below, above float64) Tree {
	return Tree{Nodes: []TreeNode{
		{Feature: 11, Threshold: threshold, Left: 1, Right: 2},
		{Leaf: true, Value: below},
		{Leaf: true, Value: above},
	}}
}

func testForest() *BoostedForest {
	return &BoostedForest{
		NumFeatures:  13,
		BaseScore:    5.0,
		LearningRate: 0.5,
		Trees: []Tree{
			distanceStump(2.0, 1.0, 10.0),
			distanceStump(8.0, 2.0, 6.0),
		},
	}
}

func TestBoostedForestPredict(t *testing.T) {
	forest := testForest()

	shortTrip := make([]float64, 13)
	shortTrip[11] = 1.0
	fare, err := forest.Predict(shortTrip)
	require.NoError(t, err)
	assert.InDelta(t, 5.0+0.5*(1.0+2.0), fare, 1e-9)

	longTrip := make([]float64, 13)
	longTrip[11] = 9.0
	fare, err = forest.Predict(longTrip)
	require.NoError(t, err)
	assert.InDelta(t, 5.0+0.5*(10.0+6.0), fare, 1e-9)
}

func TestBoostedForestPredict_WrongWidth(t *testing.T) {
	_, err := testForest().Predict(make([]float64, 12))
	assert.ErrorIs(t, err, ErrInference)
}

func TestBoostedForestPredict_MalformedTree(t *testing.T) {
	forest := &BoostedForest{
		NumFeatures:  13,
		LearningRate: 1,
		Trees: []Tree{{Nodes: []TreeNode{
			{Feature: 0, Threshold: 0, Left: 0, Right: 0}, // cycles to itself
		}}},
	}
	_, err := forest.Predict(make([]float64, 13))
	assert.ErrorIs(t, err, ErrInference)
}

// stubModel lets service tests control the raw model output.
type stubModel struct {
	fare float64
	err  error
}

func (m *stubModel) Predict([]float64) (float64, error) { return m.fare, m.err }

func TestServicePredict_Rounding(t *testing.T) {
	svc := NewService(&stubModel{fare: 12.3456}, identityScaler())
	fare, err := svc.Predict(sampleFeatures())
	require.NoError(t, err)
	assert.Equal(t, 12.35, fare)
}

func TestServicePredict_ModelFailure(t *testing.T) {
	svc := NewService(&stubModel{err: errors.New("shape mismatch")}, identityScaler())
	_, err := svc.Predict(sampleFeatures())
	assert.ErrorIs(t, err, ErrInference)
}

func TestLoadArtifacts_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	forecasterPath := filepath.Join(dir, "forecaster.gob")
	scalerPath := filepath.Join(dir, "scaler.gob")

	writeGob(t, forecasterPath, testForest())
	writeGob(t, scalerPath, identityScaler())

	forest, scaler, err := LoadArtifacts(forecasterPath, scalerPath)
	require.NoError(t, err)

	svc := NewService(forest, scaler)
	fare, err := svc.Predict(sampleFeatures())
	require.NoError(t, err)
	assert.Greater(t, fare, 0.0)
}

func TestLoadArtifacts_WidthValidation(t *testing.T) {
	dir := t.TempDir()
	forecasterPath := filepath.Join(dir, "forecaster.gob")
	scalerPath := filepath.Join(dir, "scaler.gob")

	narrow := testForest()
	narrow.NumFeatures = 7
	writeGob(t, forecasterPath, narrow)
	writeGob(t, scalerPath, identityScaler())

	_, _, err := LoadArtifacts(forecasterPath, scalerPath)
	assert.Error(t, err)
}

func writeGob(t *testing.T, path string, v any) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gob.NewEncoder(f).Encode(v))
}
