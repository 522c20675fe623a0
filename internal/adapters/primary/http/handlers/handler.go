package handlers

import (
	"net/http"

	"price-prediction-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictionSvc *services.PredictionService
	artifactStore *services.ArtifactStore
	environment   string
}

func New(
	predictionSvc *services.PredictionService,
	artifactStore *services.ArtifactStore,
	environment string,
) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		artifactStore: artifactStore,
		environment:   environment,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	// Status
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/healthz", h.Ready)

	// Predictions
	r.POST("/predict", h.Predict)
	r.POST("/predict/real-estate", h.PredictRealEstate)
	r.GET("/predict/real-estate/metadata", h.GetRealEstateMetadata)

	// Registry
	r.GET("/models", h.ListModels)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "API is running successfully", "environment": h.environment})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the model artifacts can be loaded.
func (h *Handler) Ready(c *gin.Context) {
	if _, err := h.artifactStore.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
