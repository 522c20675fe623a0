package handlers

import (
	"net/http"

	"price-prediction-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if req.Features == nil {
		req.Features = map[string]any{}
	}

	model := req.ModelName()
	result, err := h.predictionSvc.Predict(c.Request.Context(), model, req.Features)
	if err != nil {
		log.WithError(err).WithField("model", model).Warn("prediction failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PredictionResponse{
		Model:      model,
		Prediction: result,
		Details:    map[string]any{"input_features": req.Features},
	})
}

func (h *Handler) PredictRealEstate(c *gin.Context) {
	var req dto.RealEstatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictionSvc.PredictRealEstate(c.Request.Context(), req.ToRawFeatures())
	if err != nil {
		log.WithError(err).Warn("real estate prediction failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRealEstatePredictionResponse(result))
}

func (h *Handler) GetRealEstateMetadata(c *gin.Context) {
	meta, err := h.predictionSvc.RealEstateMetadata(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("get real estate metadata failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *Handler) ListModels(c *gin.Context) {
	names := h.predictionSvc.Models()
	c.JSON(http.StatusOK, dto.ListModelsResponse{Items: names, Total: len(names)})
}
