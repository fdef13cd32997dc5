package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

// @Summary Register a push subscription
// @Description Save a browser push registration, keyed by its endpoint.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param input body SubscribeRequest true "Push subscription"
// @Success 201 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/subscribe [post]
func (h *Handler) subscribe(c *gin.Context) {
	log := h.logger.WithField("method", "subscribe")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.notificationService.Subscribe(c.Request.Context(), service.SubscribeInput{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
		UserID:   currentUserID(c),
	})
	if err != nil {
		log.WithError(err).Error("Failed to save push subscription in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save subscription"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// @Summary Update subscriber presence
// @Description Refresh the last-known coordinates of a subscription, keyed by endpoint.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param input body PresenceRequest true "Presence update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/presence [post]
func (h *Handler) updatePresence(c *gin.Context) {
	log := h.logger.WithField("method", "updatePresence")

	var req PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.notificationService.UpdatePresence(c.Request.Context(), service.PresenceInput{
		Endpoint:  req.Endpoint,
		Latitude:  req.Lat,
		Longitude: req.Lng,
		Locality:  req.Locality,
		UserID:    currentUserID(c),
	})
	if err != nil {
		log.WithError(err).Error("Failed to update presence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update presence"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "updated": updated})
}

// @Summary Push an area alert
// @Description Fan out a notification to every located subscriber within the radius of a report or alert. Staff only.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body AlertAreaRequest true "Fan-out parameters"
// @Success 200 {object} FanoutResponse
// @Failure 400 {object} map[string]string "No reference location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/alert-area/push [post]
func (h *Handler) alertAreaPush(c *gin.Context) {
	log := h.logger.WithField("method", "alertAreaPush")

	var req AlertAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.notificationService.AlertArea(c.Request.Context(), service.AlertAreaInput{
		ReportID: req.SignalementID,
		AlertID:  req.AlerteID,
		RadiusKm: req.RadiusKm,
		Title:    req.Title,
		Body:     req.Body,
		URL:      req.URL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoReferenceLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no reference location"})
			return
		}
		log.WithError(err).Error("Failed to fan out area alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send area alert"})
		return
	}

	c.JSON(http.StatusOK, FanoutResponse{OK: true, Sent: result.Sent, Removed: result.Removed})
}

// @Summary SMS area alert
// @Description Accept an SMS fan-out request. No SMS gateway is wired yet, so nothing is sent.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/alert-area/sms [post]
func (h *Handler) alertAreaSMS(c *gin.Context) {
	// TODO: wire an SMS gateway once the operator contract is signed.
	c.JSON(http.StatusOK, gin.H{"ok": true, "sms_sent": 0})
}

// @Summary Send a test notification
// @Description Broadcast a test push to every subscription. Staff only.
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FanoutResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/test [post]
func (h *Handler) testPush(c *gin.Context) {
	result, err := h.notificationService.BroadcastTest(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to broadcast test notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send test notification"})
		return
	}

	c.JSON(http.StatusOK, FanoutResponse{OK: true, Sent: result.Sent, Removed: result.Removed})
}

// @Summary VAPID public key
// @Description Expose the VAPID public key the front-end needs to subscribe.
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]string
// @Router /notifications/vapid-public-key [get]
func (h *Handler) vapidPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": h.notificationService.PublicKey()})
}
