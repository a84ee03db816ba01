// README: API surface; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/modules/explain"
	"farecast/internal/modules/predict"
)

type ServerDeps struct {
	Predictor   *predict.Service
	Explainer   explain.Explainer
	CORSOrigins string
}

type Server struct {
	predictor   *predict.Service
	explainer   explain.Explainer
	corsOrigins string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		predictor:   deps.Predictor,
		explainer:   deps.Explainer,
		corsOrigins: deps.CORSOrigins,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(s.corsOrigins))

	predictHandler := handlers.NewPredictHandler(s.predictor, s.explainer)
	r.POST("/predict", predictHandler.Predict)
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
