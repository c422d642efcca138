package routes

import (
	"net/http"
	"time"

	"mentu/handlers"
	"mentu/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers the academic calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("/events", hb.GetEventsHandler)
		api.GET("/overview", hb.GetOverviewHandler)
		api.PATCH("/events/:id/toggle", hb.ToggleEventHandler)
		api.POST("/draft", hb.OpenDraftHandler)
		api.PUT("/draft", hb.UpdateDraftHandler)
		api.POST("/draft/commit", hb.CommitDraftHandler)
		api.DELETE("/draft", hb.CancelDraftHandler)
		api.GET("/export.ics", hb.ExportICSHandler)
	}
}

// RegisterTutorRoutes registers the tutor directory endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		api.GET("", hb.ListTutorsHandler)
		api.GET("/id/:id", hb.GetTutorByIDHandler)
		api.GET("/subjects", hb.GetSubjectsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for booking drafts.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.InitiateBooking)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateBooking)
		bookingGroup.GET("/session/:sessionID/quote", hb.QuoteBooking)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Mentu"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCalendarRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
