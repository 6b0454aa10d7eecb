package handlers

import (
	"context"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityFinder computes free slots for a date.
type AvailabilityFinder interface {
	Available(ctx context.Context, date string) ([]models.AvailabilityResult, error)
}

// ServiceNameLister lists the catalog by name.
type ServiceNameLister interface {
	FindNames(ctx context.Context) ([]models.ServiceName, error)
}

// ServiceHandler serves the catalog and availability endpoints.
type ServiceHandler struct {
	Catalog      ServiceNameLister
	Availability AvailabilityFinder
}

func NewServiceHandler(catalog ServiceNameLister, availability AvailabilityFinder) *ServiceHandler {
	return &ServiceHandler{Catalog: catalog, Availability: availability}
}

// GetServicesHandler handles GET /service.
func (h *ServiceHandler) GetServicesHandler(c *gin.Context) {
	names, err := h.Catalog.FindNames(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetAvailableHandler handles GET /available?date=.
func (h *ServiceHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")
	results, err := h.Availability.Available(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("availability failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, results)
}
