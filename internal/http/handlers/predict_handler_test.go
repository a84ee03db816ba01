// README: Handler tests for the prediction endpoint.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"farecast/internal/http/handlers"
	"farecast/internal/modules/explain"
	"farecast/internal/modules/predict"
)

// stubModel is a test double for predict.Model.
type stubModel struct {
	fare float64
	err  error
}

func (m *stubModel) Predict([]float64) (float64, error) { return m.fare, m.err }

func identityScaler() *predict.StandardScaler {
	n := 11
	s := &predict.StandardScaler{Mean: make([]float64, n), Scale: make([]float64, n)}
	for i := range s.Scale {
		s.Scale[i] = 1
	}
	return s
}

// buildTestRouter wires a minimal Gin engine with the prediction handler.
func buildTestRouter(model predict.Model) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := predict.NewService(model, identityScaler())
	r := gin.New()
	h := handlers.NewPredictHandler(svc, explain.NewRuleBased())
	r.POST("/predict", h.Predict)
	r.GET("/health", handlers.Health)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"pickup_datetime":   "2024-03-14 08:15:00",
		"pickup_longitude":  -73.985,
		"pickup_latitude":   40.748,
		"dropoff_longitude": -73.968,
		"dropoff_latitude":  40.785,
		"passenger_count":   2,
	}
}

func TestPredict_Success(t *testing.T) {
	r := buildTestRouter(&stubModel{fare: 14.237})
	w := doRequest(r, http.MethodPost, "/predict", validBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var resp handlers.PredictionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.PredictedFare != 14.24 {
		t.Errorf("predicted_fare = %v, want rounded 14.24", resp.PredictedFare)
	}
	if resp.Explanation == "" || resp.Recommendation == "" {
		t.Errorf("explanation/recommendation must be non-empty, got %+v", resp)
	}
	if !strings.HasPrefix(resp.Explanation, "Your estimated fare of $14.24 is based on ") {
		t.Errorf("explanation = %q, want the rule-engine sentence", resp.Explanation)
	}
}

// TestPredict_Deterministic verifies that a fixed model yields the same
// response for the same request.
func TestPredict_Deterministic(t *testing.T) {
	forest := &predict.BoostedForest{
		NumFeatures:  13,
		BaseScore:    6.0,
		LearningRate: 0.5,
		Trees: []predict.Tree{{Nodes: []predict.TreeNode{
			{Feature: 11, Threshold: 2.0, Left: 1, Right: 2},
			{Leaf: true, Value: 1.0},
			{Leaf: true, Value: 9.0},
		}}},
	}
	r := buildTestRouter(forest)

	first := doRequest(r, http.MethodPost, "/predict", validBody())
	second := doRequest(r, http.MethodPost, "/predict", validBody())
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("responses differ:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	r := buildTestRouter(&stubModel{fare: 10})
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPredict_InvalidDatetime(t *testing.T) {
	r := buildTestRouter(&stubModel{fare: 10})
	body := validBody()
	body["pickup_datetime"] = "March 14th, 8am"
	w := doRequest(r, http.MethodPost, "/predict", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d (body %s)", w.Code, w.Body.String())
	}
}

func TestPredict_ModelFailure(t *testing.T) {
	r := buildTestRouter(&stubModel{err: errors.New("shape mismatch")})
	w := doRequest(r, http.MethodPost, "/predict", validBody())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Prediction error") {
		t.Errorf("error body %q missing detail prefix", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r := buildTestRouter(&stubModel{fare: 10})
	w := doRequest(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"healthy"`) {
		t.Errorf("health body = %s", w.Body.String())
	}
}
