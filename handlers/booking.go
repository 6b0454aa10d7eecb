package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
	// Metrics is optional.
	Metrics *utils.Metrics
}

func NewBookingHandler(bs booking.BookingService, metrics *utils.Metrics) *BookingHandler {
	return &BookingHandler{BookingService: bs, Metrics: metrics}
}

// CreateBookingHandler handles POST /booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Metrics.ObserveBooking("invalid")
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}

	result, err := h.BookingService.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, booking.ErrUnknownTreatment), errors.Is(err, booking.ErrSlotNotOffered):
		h.Metrics.ObserveBooking("invalid")
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	case err != nil:
		h.Metrics.ObserveBooking("error")
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}

	if !result.Success {
		h.Metrics.ObserveBooking(result.Reason)
	} else {
		h.Metrics.ObserveBooking("created")
		utils.GetLogger().Info("booking created",
			zap.String("bookingID", result.Booking.ID),
			zap.String("treatment", result.Booking.Treatment),
			zap.String("date", result.Booking.Date))
	}
	c.JSON(http.StatusOK, result)
}

// GetPatientBookingsHandler handles GET /booking?patient=.
func (h *BookingHandler) GetPatientBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	bookings, err := h.BookingService.ListForPatient(c.Request.Context(), middleware.Requester(c), patient)
	if err != nil {
		if errors.Is(err, booking.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
