package handlers

import (
	"errors"
	"net/http"

	tutorRepo "mentu/database/repository/tutor"
	"mentu/models"
	"mentu/services/booking"
	"mentu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking draft endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found", err.Error())
	case errors.Is(err, tutorRepo.ErrTutorNotFound):
		utils.JSONError(c, http.StatusNotFound, "Tutor not found", err.Error())
	default:
		utils.WriteError(c, err, "Booking operation failed")
	}
}

// InitiateBooking opens a booking session against one tutor.
func (h *BookingHandler) InitiateBooking(c *gin.Context) {
	var req struct {
		TutorID string `json:"tutorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	bs, err := h.Svc.Initiate(c.Request.Context(), req.TutorID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bs)
}

// UpdateBooking replaces the draft on an open booking session.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	bs, err := h.Svc.Update(c.Request.Context(), c.Param("sessionID"), draft)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}

// QuoteBooking prices the current draft.
func (h *BookingHandler) QuoteBooking(c *gin.Context) {
	quote, err := h.Svc.Quote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ConfirmBooking validates the draft and closes the session.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	confirmation, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// CancelBooking discards the session.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("Failed to cancel booking session", zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
