package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the unauthenticated catalog and booking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello Doctors portal")
	})
	r.GET("/service", hb.GetServicesHandler)
	r.GET("/available", hb.GetAvailableHandler)
	r.POST("/booking", hb.CreateBookingHandler)
}

// RegisterUserRoutes registers sign-in, role and patient booking endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.UpsertUserHandler)
	r.GET("/admin/:email", hb.CheckAdminHandler)

	// Protected routes (Require Authentication)
	protected := r.Group("")
	protected.Use(middleware.VerifyJWT(hb.Tokens))
	protected.GET("/user", hb.GetUsersHandler)
	protected.GET("/booking", hb.GetPatientBookingsHandler)
	protected.PUT("/user/admin/:email", middleware.VerifyAdmin(hb.Roles), hb.MakeAdminHandler)
}

// RegisterDoctorRoutes registers the admin-only doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctor")
	{
		doctors.Use(middleware.VerifyJWT(hb.Tokens), middleware.VerifyAdmin(hb.Roles))
		doctors.GET("", hb.ListDoctorsHandler)
		doctors.POST("", hb.AddDoctorHandler)
		doctors.DELETE("/:email", hb.DeleteDoctorHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := hb.Health.Status()
		code := http.StatusOK
		state := "ok"
		if !status.Mongo {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "services": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	if hb.Metrics != nil {
		r.GET("/metrics", gin.WrapH(hb.Metrics.Handler()))
	}
}
