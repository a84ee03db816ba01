// README: Fare prediction handler orchestrating the extract→predict→explain pipeline.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farecast/internal/logger"
	"farecast/internal/modules/explain"
	"farecast/internal/modules/features"
	"farecast/internal/modules/predict"
)

// PredictionResponse is the success payload of POST /predict.
type PredictionResponse struct {
	PredictedFare  float64 `json:"predicted_fare"`
	Recommendation string  `json:"recommendation"`
	Explanation    string  `json:"explanation"`
}

type PredictHandler struct {
	predictor *predict.Service
	explainer explain.Explainer
}

func NewPredictHandler(predictor *predict.Service, explainer explain.Explainer) *PredictHandler {
	return &PredictHandler{predictor: predictor, explainer: explainer}
}

// Predict handles POST /predict.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req features.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	fs, err := features.Extract(req)
	if err != nil {
		if errors.Is(err, features.ErrInvalidInput) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(c, err)
		return
	}

	fare, err := h.predictor.Predict(fs)
	if err != nil {
		h.serverError(c, err)
		return
	}

	// The explanation path degrades on its own (the LLM variant never
	// errors); a rule-engine failure still fails the request because it
	// means the feature set itself is malformed.
	insight, err := h.explainer.Explain(c.Request.Context(), fs, fare)
	if err != nil {
		h.serverError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, PredictionResponse{
		PredictedFare:  fare,
		Recommendation: insight.Recommendation,
		Explanation:    insight.Explanation,
	})
}

func (h *PredictHandler) serverError(c *gin.Context, err error) {
	logger.Error("prediction failed", zap.Error(err))
	writeError(c, http.StatusInternalServerError, "Prediction error: "+err.Error())
}

// Health handles GET /health.
func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "healthy"})
}
