// File: handlers/bundle.go
package handlers

import (
	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the guards routes need.
type HandlerBundle struct {
	Tokens  middleware.TokenVerifier
	Roles   middleware.RoleChecker
	Health  *utils.HealthMonitor
	Metrics *utils.Metrics

	// Catalog endpoints
	GetServicesHandler  gin.HandlerFunc
	GetAvailableHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler      gin.HandlerFunc
	GetPatientBookingsHandler gin.HandlerFunc

	// User endpoints
	GetUsersHandler   gin.HandlerFunc
	UpsertUserHandler gin.HandlerFunc
	CheckAdminHandler gin.HandlerFunc
	MakeAdminHandler  gin.HandlerFunc

	// Doctor endpoints
	ListDoctorsHandler  gin.HandlerFunc
	AddDoctorHandler    gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}
