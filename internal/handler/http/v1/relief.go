package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
)

// @Summary Declare flood damage
// @Description Record a damage declaration with optional supporting documents. Multipart form.
// @Tags Relief
// @Accept mpfd
// @Produce json
// @Param property_type formData string true "Property type"
// @Param loss_amount_text formData string false "Estimated loss, free text"
// @Param loss_description formData string false "Loss description"
// @Param people_affected formData int false "People affected"
// @Param remarks formData string false "Additional remarks"
// @Param pieces formData file false "Supporting documents"
// @Success 201 {object} DamageResponse
// @Failure 400 {object} map[string]string "Missing property type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /degats [post]
func (h *Handler) submitDamage(c *gin.Context) {
	log := h.logger.WithField("method", "submitDamage")

	peopleAffected, _ := strconv.Atoi(c.PostForm("people_affected"))
	damage := &models.DamageDeclaration{
		CreatedBy:       currentUserID(c),
		PropertyType:    c.PostForm("property_type"),
		LossAmountText:  c.PostForm("loss_amount_text"),
		LossDescription: c.PostForm("loss_description"),
		PeopleAffected:  peopleAffected,
		Remarks:         c.PostForm("remarks"),
	}
	if damage.PropertyType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_type is required"})
		return
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["pieces"] {
			path, err := h.media.Save(c, file, "degats")
			if err != nil {
				log.WithError(err).Error("Failed to store uploaded document")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded file"})
				return
			}
			damage.Pieces = append(damage.Pieces, &models.DamagePiece{FilePath: path})
		}
	}

	if err := h.reliefService.SubmitDamage(c.Request.Context(), damage); err != nil {
		log.WithError(err).Error("Failed to submit damage declaration in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record damage declaration"})
		return
	}

	c.JSON(http.StatusCreated, ModelToDamageResponse(damage, h.media))
}

// @Summary List damage declarations
// @Description List all damage declarations for review. Staff only.
// @Tags Relief
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DamageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /degats [get]
func (h *Handler) listDamage(c *gin.Context) {
	declarations, err := h.reliefService.ListDamage(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list damage declarations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToDamageResponses(declarations, h.media))
}

// @Summary List own damage declarations
// @Tags Relief
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DamageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /degats/mes [get]
func (h *Handler) listMyDamage(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	declarations, err := h.reliefService.ListMyDamage(c.Request.Context(), *userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list user damage declarations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToDamageResponses(declarations, h.media))
}

// @Summary Request assistance
// @Description Record a request for rescue, shelter, food, transport or medical help.
// @Tags Relief
// @Accept json
// @Produce json
// @Param input body SubmitAssistanceRequest true "Assistance request"
// @Success 201 {object} AssistanceResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assistance [post]
func (h *Handler) submitAssistance(c *gin.Context) {
	log := h.logger.WithField("method", "submitAssistance")

	var req SubmitAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := &models.AssistanceRequest{
		CreatedBy:    currentUserID(c),
		LocationText: req.LocationText,
		HelpType:     req.HelpType,
		PeopleCount:  req.PeopleCount,
		Phone:        req.Phone,
		Availability: req.Availability,
		UrgencyNote:  req.UrgencyNote,
	}
	if err := h.reliefService.SubmitAssistance(c.Request.Context(), request); err != nil {
		log.WithError(err).Error("Failed to submit assistance request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record assistance request"})
		return
	}

	c.JSON(http.StatusCreated, ModelToAssistanceResponse(request))
}

// @Summary List assistance requests
// @Description List all assistance requests for dispatch. Staff only.
// @Tags Relief
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AssistanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assistance [get]
func (h *Handler) listAssistance(c *gin.Context) {
	requests, err := h.reliefService.ListAssistance(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list assistance requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAssistanceResponses(requests))
}

// @Summary List own assistance requests
// @Tags Relief
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AssistanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assistance/mes [get]
func (h *Handler) listMyAssistance(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	requests, err := h.reliefService.ListMyAssistance(c.Request.Context(), *userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list user assistance requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAssistanceResponses(requests))
}
