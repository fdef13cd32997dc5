package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository is the read contract for alerts.
type AlertRepository interface {
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error)
	AlertCoordinates(ctx context.Context, id uuid.UUID) (geo.Coordinates, error)
	GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	SetAlertCache(ctx context.Context, alert *models.Alert) error
}

// AlertService exposes alert reads to the public listing endpoints.
type AlertService interface {
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error)
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		logger: logger,
	}
}

// GetAlert fetches an alert, trying the cache before the database.
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
	})

	cached, err := s.repo.GetAlertFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read alert cache")
	}
	if cached != nil {
		return cached, nil
	}

	alert, err := s.repo.GetAlert(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	if err := s.repo.SetAlertCache(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to write alert cache")
	}
	return alert, nil
}

// ListAlerts returns alerts newest first, with sanitized pagination.
func (s *alertService) ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "ListAlerts",
		"page":      page,
		"page_size": pageSize,
	})

	alerts, err := s.repo.ListAlerts(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
