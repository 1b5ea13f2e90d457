package routes

import (
	"net/http"
	"time"

	"podium/handlers"
	"podium/middleware"
	"podium/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	registerAvailabilityRoutes(r, hb)
	registerCalendarRoutes(r, hb)
	registerBookingRoutes(r, hb)
	registerInquiryRoutes(r, hb)
	registerHealthRoute(r)
}

// registerAvailabilityRoutes registers the speaker-side slot management endpoints.
func registerAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	api.Use(middleware.JWTAuth(middleware.RoleSpeaker))
	{
		api.POST("", hb.Availability.CreateSlotHandler)
		api.GET("", hb.Availability.ListSlotsHandler)
		api.DELETE("/:slotID", hb.Availability.DeleteSlotHandler)
	}
}

// registerCalendarRoutes registers the public read-side projection endpoints.
func registerCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/:speakerID/slots", hb.Calendar.SlotsForDateHandler)
		api.GET("/:speakerID/dates", hb.Calendar.DatesWithSlotsHandler)
		api.GET("/:speakerID/status", hb.Calendar.AggregateStatusHandler)
	}
}

// registerBookingRoutes registers the booking coordinator endpoints.
func registerBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuth(middleware.RoleOrganizer), hb.Booking.AttemptBookingHandler)
		api.POST("/:bookingID/cancel", middleware.JWTAuth(""), hb.Booking.CancelBookingHandler)
		api.POST("/:bookingID/confirm", middleware.JWTAuth(middleware.RoleSpeaker), hb.Booking.ConfirmBookingHandler)
		api.GET("/id/:bookingID", middleware.JWTAuth(""), hb.Booking.GetBookingHandler)
		api.GET("/speaker", middleware.JWTAuth(middleware.RoleSpeaker), hb.Booking.ListSpeakerBookingsHandler)
		api.GET("/organizer", middleware.JWTAuth(middleware.RoleOrganizer), hb.Booking.ListOrganizerBookingsHandler)
	}
}

// registerInquiryRoutes registers the inquiry log endpoints.
func registerInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", middleware.OptionalJWTAuth(), hb.Inquiry.SubmitInquiryHandler)
		api.PATCH("/:inquiryID/status", middleware.JWTAuth(middleware.RoleSpeaker), hb.Inquiry.UpdateInquiryStatusHandler)
		api.GET("", middleware.JWTAuth(middleware.RoleSpeaker), hb.Inquiry.ListInquiriesHandler)
	}
}

// registerHealthRoute registers a health-check endpoint.
func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
