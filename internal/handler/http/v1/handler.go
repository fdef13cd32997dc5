package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sentinel-dakar/flood_reporting_system/internal/config"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
	"github.com/sentinel-dakar/flood_reporting_system/internal/storage"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService         service.AuthService
	alertService        service.AlertService
	reportService       service.ReportService
	reliefService       service.ReliefService
	notificationService service.NotificationService
	sensorService       service.SensorService
	tokens              *service.TokenManager
	media               storage.MediaStore
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

// HandlerDeps bundle everything the HTTP layer depends on.
type HandlerDeps struct {
	AuthService         service.AuthService
	AlertService        service.AlertService
	ReportService       service.ReportService
	ReliefService       service.ReliefService
	NotificationService service.NotificationService
	SensorService       service.SensorService
	Tokens              *service.TokenManager
	Media               storage.MediaStore
	Logger              *logrus.Logger
	Config              *config.Config
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		authService:         deps.AuthService,
		alertService:        deps.AlertService,
		reportService:       deps.ReportService,
		reliefService:       deps.ReliefService,
		notificationService: deps.NotificationService,
		sensorService:       deps.SensorService,
		tokens:              deps.Tokens,
		media:               deps.Media,
		logger:              deps.Logger,
		validate:            validator.New(),
		cfg:                 deps.Config,
	}
}

// @Summary Get dashboard statistics
// @Description Get report review-status counts and the subscriber total. Staff only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.reportService.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get report stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	subscriptions, err := h.notificationService.SubscriberCount(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get subscriber count from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Pending:       stats.Pending,
		Verified:      stats.Verified,
		Resolved:      stats.Resolved,
		Total:         stats.Total,
		Subscriptions: subscriptions,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
