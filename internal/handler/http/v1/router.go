package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every API v1 route. Each route is guarded by the
// policy table; listing reports checks its operation inside the handler
// because the required capability depends on the query.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.requireOp(OpRegister, h.register))
		auth.POST("/login", h.requireOp(OpLogin, h.login))
	}

	alerts := api.Group("/alertes")
	{
		alerts.GET("", h.requireOp(OpAlertList, h.listAlerts))
		alerts.GET("/:id", h.requireOp(OpAlertGet, h.getAlert))
	}

	reports := api.Group("/signalements")
	{
		reports.POST("", h.requireOp(OpReportSubmit, h.submitReport))
		reports.GET("", h.listReports)
		reports.GET("/mes", h.requireOp(OpReportListMine, h.listMyReports))
		reports.POST("/:id/validate", h.requireOp(OpReportValidate, h.validateReport))
		reports.POST("/:id/resolve", h.requireOp(OpReportResolve, h.resolveReport))
	}

	damage := api.Group("/degats")
	{
		damage.POST("", h.requireOp(OpDamageSubmit, h.submitDamage))
		damage.GET("", h.requireOp(OpDamageList, h.listDamage))
		damage.GET("/mes", h.requireOp(OpDamageListMine, h.listMyDamage))
	}

	assistance := api.Group("/assistance")
	{
		assistance.POST("", h.requireOp(OpAssistSubmit, h.submitAssistance))
		assistance.GET("", h.requireOp(OpAssistList, h.listAssistance))
		assistance.GET("/mes", h.requireOp(OpAssistListMine, h.listMyAssistance))
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("/subscribe", h.requireOp(OpSubscribe, h.subscribe))
		notifications.POST("/presence", h.requireOp(OpPresence, h.updatePresence))
		notifications.POST("/alert-area/push", h.requireOp(OpAlertAreaPush, h.alertAreaPush))
		notifications.POST("/alert-area/sms", h.requireOp(OpAlertAreaSMS, h.alertAreaSMS))
		notifications.POST("/test", h.requireOp(OpTestPush, h.testPush))
		notifications.GET("/vapid-public-key", h.requireOp(OpVAPIDPublicKey, h.vapidPublicKey))
	}

	sensors := api.Group("/capteurs")
	{
		sensors.POST("", h.requireOp(OpSensorCreate, h.createSensor))
		sensors.GET("", h.requireOp(OpSensorRead, h.listSensors))
		sensors.GET("/:id/mesures", h.requireOp(OpSensorRead, h.listMeasurements))
	}
	api.POST("/mesures", h.requireOp(OpMeasurementWrite, h.recordMeasurement))

	api.GET("/stats", h.requireOp(OpStats, h.getStats))
	api.GET("/events/stream", h.requireOp(OpEventStream, h.streamEvents))

	api.GET("/system/health", h.healthCheck)
}
