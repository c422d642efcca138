package handlers

import (
	"errors"
	"net/http"
	"time"

	"mentu/middleware"
	"mentu/models"
	"mentu/services/calendar"
	"mentu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the academic calendar endpoints.
type CalendarHandler struct {
	Svc    calendar.CalendarService
	Logger *zap.Logger
}

func NewCalendarHandler(svc calendar.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Svc: svc, Logger: logger}
}

// todayParam resolves "today" for the derivations: an explicit query value
// wins, otherwise the server's wall-clock date.
func todayParam(c *gin.Context) string {
	if today := c.Query("today"); today != "" {
		return today
	}
	return time.Now().Format("2006-01-02")
}

// writeCalendarError maps service errors onto HTTP responses. Typed errors
// carry their own status, sentinels are matched here.
func writeCalendarError(c *gin.Context, err error) {
	if errors.Is(err, calendar.ErrEventNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Event not found", err.Error())
		return
	}
	utils.WriteError(c, err, "Calendar operation failed")
}

// GetEventsHandler returns the session's full event list.
func (h *CalendarHandler) GetEventsHandler(c *gin.Context) {
	events, err := h.Svc.Events(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.Logger.Error("Failed to fetch events", zap.Error(err))
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetOverviewHandler returns today/upcoming/overdue views and counts.
func (h *CalendarHandler) GetOverviewHandler(c *gin.Context) {
	overview, err := h.Svc.Overview(c.Request.Context(), middleware.GetSessionID(c), todayParam(c))
	if err != nil {
		h.Logger.Error("Failed to build overview", zap.Error(err))
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// ToggleEventHandler flips an event's completed flag.
func (h *CalendarHandler) ToggleEventHandler(c *gin.Context) {
	event, err := h.Svc.ToggleComplete(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// OpenDraftHandler opens the add-event dialog.
func (h *CalendarHandler) OpenDraftHandler(c *gin.Context) {
	draft, err := h.Svc.OpenDraft(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraftHandler replaces the open draft's fields.
func (h *CalendarHandler) UpdateDraftHandler(c *gin.Context) {
	var draft models.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	updated, err := h.Svc.UpdateDraft(c.Request.Context(), middleware.GetSessionID(c), draft)
	if err != nil {
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": updated})
}

// CommitDraftHandler validates the draft and appends the new event.
func (h *CalendarHandler) CommitDraftHandler(c *gin.Context) {
	event, err := h.Svc.CommitDraft(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// CancelDraftHandler closes the dialog without touching the event list.
func (h *CalendarHandler) CancelDraftHandler(c *gin.Context) {
	if err := h.Svc.CancelDraft(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		writeCalendarError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft cancelled"})
}

// ExportICSHandler streams the session's calendar as an ICS document.
func (h *CalendarHandler) ExportICSHandler(c *gin.Context) {
	doc, err := h.Svc.ExportICS(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.Logger.Error("Failed to export calendar", zap.Error(err))
		writeCalendarError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="mentu-calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}
