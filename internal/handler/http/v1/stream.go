package v1

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

const streamInterval = 5 * time.Second

// streamEvent is one server-sent dashboard refresh.
type streamEvent struct {
	Pending       int       `json:"pending"`
	Verified      int       `json:"verified"`
	Resolved      int       `json:"resolved"`
	Total         int       `json:"total"`
	Subscriptions int       `json:"subscriptions"`
	At            time.Time `json:"at"`
}

// @Summary Stream dashboard statistics
// @Description Server-sent events feed refreshing the dashboard counters every few seconds. Staff only.
// @Tags Admin
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /events/stream [get]
func (h *Handler) streamEvents(c *gin.Context) {
	log := h.logger.WithField("method", "streamEvents")

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}

		stats, err := h.reportService.Stats(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to refresh stats for stream, sending heartbeat")
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
		subscriptions, err := h.notificationService.SubscriberCount(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to count subscribers for stream, sending heartbeat")
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}

		c.SSEvent("stats", streamEvent{
			Pending:       stats.Pending,
			Verified:      stats.Verified,
			Resolved:      stats.Resolved,
			Total:         stats.Total,
			Subscriptions: subscriptions,
			At:            time.Now(),
		})
		return true
	})
}
