package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

// @Summary Submit a citizen report
// @Description Ingest a signalement: resolve its location, derive an alert and persist everything atomically. Multipart form with optional photos.
// @Tags Reports
// @Accept mpfd
// @Produce json
// @Param description formData string true "Incident description"
// @Param type_incident formData string false "Incident type"
// @Param location formData string false "Location text or lat,lng pair"
// @Param severity formData string false "Severity token (low, medium, high)"
// @Param prenom formData string false "First name"
// @Param nom formData string false "Last name"
// @Param phone formData string false "Phone number"
// @Param photos formData file false "Attached photos"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Missing description"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signalements [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")

	input := service.SubmitReportInput{
		Description:  c.PostForm("description"),
		IncidentType: c.PostForm("type_incident"),
		LocationText: c.PostForm("location"),
		Severity:     c.PostForm("severity"),
		FirstName:    c.PostForm("prenom"),
		LastName:     c.PostForm("nom"),
		Phone:        c.PostForm("phone"),
		CreatedBy:    currentUserID(c),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["photos"] {
			path, err := h.media.Save(c, file, "signalements")
			if err != nil {
				log.WithError(err).Error("Failed to store uploaded photo")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded file"})
				return
			}
			input.PhotoPaths = append(input.PhotoPaths, path)
		}
	}

	result, err := h.reportService.SubmitReport(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrDescriptionRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
			return
		}
		log.WithError(err).Error("Failed to ingest report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	photos := make([]string, 0, len(result.PhotoPaths))
	for _, path := range result.PhotoPaths {
		photos = append(photos, h.media.AbsoluteURL(path))
	}

	c.JSON(http.StatusCreated, SubmitReportResponse{
		OK:            true,
		SignalementID: result.ReportID,
		AlerteID:      result.AlertID,
		Level:         string(result.Level),
		Photos:        photos,
	})
}

// @Summary List citizen reports
// @Description List the most recent reports. Public when filtered by alerte_id, staff-only otherwise.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param alerte_id query string false "Filter by alert ID"
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signalements [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	var alertID *uuid.UUID
	op := OpReportListAll
	if raw := c.Query("alerte_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
			return
		}
		alertID = &id
		op = OpReportListByAlert
	}
	if !h.authorize(c, op) {
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), alertID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports, h.media))
}

// @Summary List own reports
// @Description List the authenticated user's reports, newest first.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signalements/mes [get]
func (h *Handler) listMyReports(c *gin.Context) {
	log := h.logger.WithField("method", "listMyReports")

	userID := currentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	reports, err := h.reportService.ListMyReports(c.Request.Context(), *userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports, h.media))
}

// @Summary Validate a report
// @Description Mark a report verified and broadcast a push notification to every subscriber. Staff only.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} FanoutResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signalements/{id}/validate [post]
func (h *Handler) validateReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "validateReport").WithField("id", id)

	result, err := h.notificationService.ValidateReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to validate report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate report"})
		return
	}

	c.JSON(http.StatusOK, FanoutResponse{OK: true, Sent: result.Sent, Removed: result.Removed})
}

// @Summary Resolve a report
// @Description Mark a report resolved. Staff only.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signalements/{id}/resolve [post]
func (h *Handler) resolveReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "resolveReport").WithField("id", id)

	if err := h.notificationService.ResolveReport(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to resolve report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
