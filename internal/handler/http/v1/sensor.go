package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
)

// @Summary Register a sensor
// @Description Register a water-level or rainfall station at a known location. Staff only.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body CreateSensorRequest true "Sensor registration"
// @Success 201 {object} SensorResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /capteurs [post]
func (h *Handler) createSensor(c *gin.Context) {
	log := h.logger.WithField("method", "createSensor")

	var req CreateSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sensor := &models.Sensor{
		Code:       req.Code,
		LocationID: req.LocationID,
		SensorType: req.SensorType,
	}
	if err := h.sensorService.CreateSensor(c.Request.Context(), sensor); err != nil {
		log.WithError(err).Error("Failed to register sensor in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register sensor"})
		return
	}

	c.JSON(http.StatusCreated, ModelToSensorResponse(sensor))
}

// @Summary List sensors
// @Tags Sensors
// @Produce json
// @Success 200 {array} SensorResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /capteurs [get]
func (h *Handler) listSensors(c *gin.Context) {
	sensors, err := h.sensorService.ListSensors(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list sensors from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSensorResponses(sensors))
}

// @Summary Record a measurement
// @Description Store a sensor reading. Staff only.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body RecordMeasurementRequest true "Sensor reading"
// @Success 201 {object} MeasurementResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mesures [post]
func (h *Handler) recordMeasurement(c *gin.Context) {
	log := h.logger.WithField("method", "recordMeasurement")

	var req RecordMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := &models.Measurement{
		SensorID: req.SensorID,
		Value:    req.Value,
		Unit:     req.Unit,
	}
	if err := h.sensorService.RecordMeasurement(c.Request.Context(), m); err != nil {
		log.WithError(err).Error("Failed to record measurement in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record measurement"})
		return
	}

	c.JSON(http.StatusCreated, ModelToMeasurementResponse(m))
}

// @Summary List measurements of a sensor
// @Tags Sensors
// @Produce json
// @Param id path string true "Sensor ID"
// @Param limit query int false "Maximum readings to return"
// @Success 200 {array} MeasurementResponse
// @Failure 400 {object} map[string]string "Invalid sensor ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /capteurs/{id}/mesures [get]
func (h *Handler) listMeasurements(c *gin.Context) {
	sensorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	measurements, err := h.sensorService.ListMeasurements(c.Request.Context(), sensorID, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list measurements from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToMeasurementResponses(measurements))
}
