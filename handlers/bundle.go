package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Calendar endpoints
	GetEventsHandler   gin.HandlerFunc
	GetOverviewHandler gin.HandlerFunc
	ToggleEventHandler gin.HandlerFunc
	OpenDraftHandler   gin.HandlerFunc
	UpdateDraftHandler gin.HandlerFunc
	CommitDraftHandler gin.HandlerFunc
	CancelDraftHandler gin.HandlerFunc
	ExportICSHandler   gin.HandlerFunc

	// Tutor directory endpoints
	ListTutorsHandler   gin.HandlerFunc
	GetTutorByIDHandler gin.HandlerFunc
	GetSubjectsHandler  gin.HandlerFunc

	// Booking endpoints
	InitiateBooking gin.HandlerFunc
	UpdateBooking   gin.HandlerFunc
	QuoteBooking    gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelBooking   gin.HandlerFunc
}
