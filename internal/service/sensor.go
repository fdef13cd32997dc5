package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const maxListMeasurements = 200

// SensorRepository is the persistence contract for the sensor network.
type SensorRepository interface {
	CreateSensor(ctx context.Context, sensor *models.Sensor) error
	GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error)
	ListSensors(ctx context.Context) ([]*models.Sensor, error)
	CreateMeasurement(ctx context.Context, m *models.Measurement) error
	ListMeasurements(ctx context.Context, sensorID uuid.UUID, limit int) ([]*models.Measurement, error)
}

// SensorService manages field stations and their readings.
type SensorService interface {
	CreateSensor(ctx context.Context, sensor *models.Sensor) error
	GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error)
	ListSensors(ctx context.Context) ([]*models.Sensor, error)
	RecordMeasurement(ctx context.Context, m *models.Measurement) error
	ListMeasurements(ctx context.Context, sensorID uuid.UUID, limit int) ([]*models.Measurement, error)
}

type sensorService struct {
	repo   SensorRepository
	logger *logrus.Logger
}

func NewSensorService(repo SensorRepository, logger *logrus.Logger) SensorService {
	return &sensorService{
		repo:   repo,
		logger: logger,
	}
}

// CreateSensor registers a field station.
func (s *sensorService) CreateSensor(ctx context.Context, sensor *models.Sensor) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sensor",
		"method":  "CreateSensor",
		"code":    sensor.Code,
	})

	if err := s.repo.CreateSensor(ctx, sensor); err != nil {
		log.WithError(err).Error("Failed to create sensor in repository")
		return fmt.Errorf("service: could not create sensor: %w", err)
	}

	log.WithField("sensor_id", sensor.ID).Info("Sensor registered")
	return nil
}

// GetSensor fetches a sensor by id.
func (s *sensorService) GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	sensor, err := s.repo.GetSensor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get sensor: %w", err)
	}
	return sensor, nil
}

// ListSensors returns every registered sensor.
func (s *sensorService) ListSensors(ctx context.Context) ([]*models.Sensor, error) {
	sensors, err := s.repo.ListSensors(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list sensors: %w", err)
	}
	return sensors, nil
}

// RecordMeasurement stores a reading after checking the sensor exists.
func (s *sensorService) RecordMeasurement(ctx context.Context, m *models.Measurement) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sensor",
		"method":    "RecordMeasurement",
		"sensor_id": m.SensorID,
	})

	if _, err := s.repo.GetSensor(ctx, m.SensorID); err != nil {
		log.WithError(err).Warn("Measurement for unknown sensor")
		return fmt.Errorf("service: sensor not found for measurement: %w", err)
	}

	if err := s.repo.CreateMeasurement(ctx, m); err != nil {
		log.WithError(err).Error("Failed to create measurement in repository")
		return fmt.Errorf("service: could not record measurement: %w", err)
	}
	return nil
}

// ListMeasurements returns the most recent readings of one sensor.
func (s *sensorService) ListMeasurements(ctx context.Context, sensorID uuid.UUID, limit int) ([]*models.Measurement, error) {
	if limit < 1 || limit > maxListMeasurements {
		limit = 50
	}
	measurements, err := s.repo.ListMeasurements(ctx, sensorID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list measurements: %w", err)
	}
	return measurements, nil
}
