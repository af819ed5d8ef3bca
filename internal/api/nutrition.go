package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

// NutritionHandler handles nutrition plan requests
type NutritionHandler struct {
	planner service.NutritionPlannerInterface
}

// NewNutritionHandler creates a new NutritionHandler instance
func NewNutritionHandler(planner service.NutritionPlannerInterface) *NutritionHandler {
	return &NutritionHandler{planner: planner}
}

// RegisterRoutes registers the nutrition routes on an authenticated group.
func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	nutrition := router.Group("/nutrition")
	{
		if rateLimit != nil {
			nutrition.POST("/generate-plan", rateLimit, h.GeneratePlan)
		} else {
			nutrition.POST("/generate-plan", h.GeneratePlan)
		}
	}
}

// GeneratePlan handles plan generation requests
func (h *NutritionHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.planner.GeneratePlan(c.Request.Context(), req.Profile())
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
			return
		}
		var genErr *service.GenerationError
		if errors.As(err, &genErr) {
			log.Printf("plan generation failed: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "plan generation failed, please try again"})
			return
		}
		log.Printf("unexpected plan generation error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, GeneratePlanResponse{
		Success:  true,
		Plan:     result.Plan,
		Metadata: result.Targets,
	})
}
