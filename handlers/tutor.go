package handlers

import (
	"errors"
	"net/http"

	tutorRepo "mentu/database/repository/tutor"
	"mentu/models"
	"mentu/services/tutor"
	"mentu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TutorHandler serves the tutor directory endpoints.
type TutorHandler struct {
	Svc    tutor.TutorService
	Logger *zap.Logger
}

func NewTutorHandler(svc tutor.TutorService, logger *zap.Logger) *TutorHandler {
	return &TutorHandler{Svc: svc, Logger: logger}
}

// ListTutorsHandler returns tutors matching the search/subject/sessionType
// query, in directory order.
func (h *TutorHandler) ListTutorsHandler(c *gin.Context) {
	var query models.TutorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter query", err.Error())
		return
	}
	tutors, err := h.Svc.List(query)
	if err != nil {
		h.Logger.Error("Failed to list tutors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list tutors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

// GetTutorByIDHandler returns one tutor profile.
func (h *TutorHandler) GetTutorByIDHandler(c *gin.Context) {
	id := c.Param("id")
	t, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Tutor not found", id)
			return
		}
		h.Logger.Error("Failed to fetch tutor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch tutor", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// GetSubjectsHandler returns the unique subject list for the filter dropdown.
func (h *TutorHandler) GetSubjectsHandler(c *gin.Context) {
	subjects, err := h.Svc.Subjects()
	if err != nil {
		h.Logger.Error("Failed to list subjects", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list subjects", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}
