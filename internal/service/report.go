package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geocoding"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Listing caps: staff listings return at most 50 rows, personal listings 100.
const (
	maxListReports   = 50
	maxListMyReports = 100
)

// unnamedLocation labels locations created from an empty location text.
const unnamedLocation = "Zone non précisée"

// ReportRepository is the persistence contract for reports and the
// location/alert graph an ingestion creates.
type ReportRepository interface {
	CreateReportGraph(ctx context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, alertID *uuid.UUID, limit int) ([]*models.Report, error)
	ListReportsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Report, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus) error
	ReportCoordinates(ctx context.Context, id uuid.UUID) (geo.Coordinates, error)
	CountReportsByStatus(ctx context.Context) (map[models.ReportStatus]int, error)
}

// SubmitReportInput is a raw citizen submission.
type SubmitReportInput struct {
	Description  string
	IncidentType string
	LocationText string
	Severity     string
	FirstName    string
	LastName     string
	Phone        string
	CreatedBy    *uuid.UUID
	// PhotoPaths are stored media URL paths, already written by the handler.
	PhotoPaths []string
}

// SubmitReportResult identifies the records an ingestion created.
type SubmitReportResult struct {
	ReportID   uuid.UUID
	AlertID    uuid.UUID
	Level      models.AlertLevel
	Message    string
	PhotoPaths []string
}

// ReportStats are review-status counts for the dashboard.
type ReportStats struct {
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}

// ReportService is the report ingestion and listing contract.
type ReportService interface {
	SubmitReport(ctx context.Context, input SubmitReportInput) (*SubmitReportResult, error)
	ListReports(ctx context.Context, alertID *uuid.UUID) ([]*models.Report, error)
	ListMyReports(ctx context.Context, userID uuid.UUID) ([]*models.Report, error)
	Stats(ctx context.Context) (*ReportStats, error)
}

type reportService struct {
	repo     ReportRepository
	geocoder geocoding.Resolver
	events   webhook.Publisher
	logger   *logrus.Logger
}

func NewReportService(repo ReportRepository, geocoder geocoding.Resolver, events webhook.Publisher, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:     repo,
		geocoder: geocoder,
		events:   events,
		logger:   logger,
	}
}

// SubmitReport runs the ingestion pipeline: resolve the submitted location,
// normalize the severity, compose the alert message and persist the
// location/alert/report graph in one transaction.
func (s *reportService) SubmitReport(ctx context.Context, input SubmitReportInput) (*SubmitReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
	})
	log.Info("Ingesting citizen report")

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	loc := s.resolveLocation(ctx, input.LocationText)
	level := models.LevelFromSeverity(strings.ToLower(strings.TrimSpace(input.Severity)))

	alert := &models.Alert{
		Level:   level,
		Message: composeMessage(input, description),
	}
	report := &models.Report{
		CreatedBy:    input.CreatedBy,
		Status:       models.StatusPending,
		IncidentType: input.IncidentType,
		LocationText: input.LocationText,
		Severity:     input.Severity,
		Description:  description,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
	}
	for _, p := range input.PhotoPaths {
		report.Photos = append(report.Photos, &models.ReportPhoto{FilePath: p})
	}

	if err := s.repo.CreateReportGraph(ctx, loc, alert, report); err != nil {
		log.WithError(err).Error("Failed to persist report graph")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	if err := s.events.Publish(ctx, webhook.Event{
		Type:      webhook.EventReportCreated,
		ReportID:  &report.ID,
		AlertID:   &alert.ID,
		Level:     level,
		Locality:  loc.Name,
		Timestamp: time.Now(),
	}); err != nil {
		// Event delivery is best-effort; the report is already persisted.
		log.WithError(err).Warn("Failed to publish report created event")
	}

	log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"alert_id":  alert.ID,
		"level":     level,
	}).Info("Report ingested successfully")

	return &SubmitReportResult{
		ReportID:   report.ID,
		AlertID:    alert.ID,
		Level:      level,
		Message:    alert.Message,
		PhotoPaths: input.PhotoPaths,
	}, nil
}

// resolveLocation turns the submitted location text into a Location: an
// explicit "lat,lng" pair wins, then a geocoding lookup, then the neutral
// fallback. Ingestion never blocks on unresolved geography.
func (s *reportService) resolveLocation(ctx context.Context, locationText string) *models.Location {
	name := strings.TrimSpace(locationText)
	if name == "" {
		name = unnamedLocation
	}

	if coords, ok := geo.ParseLatLng(locationText); ok {
		return &models.Location{Name: name, Latitude: coords.Latitude, Longitude: coords.Longitude}
	}

	if strings.TrimSpace(locationText) != "" {
		if coords, ok := s.geocoder.Resolve(ctx, locationText); ok {
			return &models.Location{Name: name, Latitude: coords.Latitude, Longitude: coords.Longitude}
		}
	}

	return &models.Location{Name: name, Latitude: geo.Neutral.Latitude, Longitude: geo.Neutral.Longitude}
}

// composeMessage builds the alert message: the description, then a blank line
// and one detail line per non-empty optional field. Empty fields get no line.
func composeMessage(input SubmitReportInput, description string) string {
	var details []string
	if t := strings.TrimSpace(input.IncidentType); t != "" {
		details = append(details, "Type: "+t)
	}
	contact := strings.TrimSpace(strings.TrimSpace(input.FirstName) + " " + strings.TrimSpace(input.LastName))
	if contact != "" {
		details = append(details, "Contact: "+contact)
	}
	if p := strings.TrimSpace(input.Phone); p != "" {
		details = append(details, "Téléphone: "+p)
	}

	if len(details) == 0 {
		return description
	}
	return description + "\n\n" + strings.Join(details, "\n")
}

// ListReports returns the most recent reports, optionally filtered by alert.
func (s *reportService) ListReports(ctx context.Context, alertID *uuid.UUID) ([]*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListReports",
	})

	reports, err := s.repo.ListReports(ctx, alertID, maxListReports)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, nil
}

// ListMyReports returns the authenticated user's reports.
func (s *reportService) ListMyReports(ctx context.Context, userID uuid.UUID) ([]*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListMyReports",
		"user_id": userID,
	})

	reports, err := s.repo.ListReportsByUser(ctx, userID, maxListMyReports)
	if err != nil {
		log.WithError(err).Error("Failed to list user reports from repository")
		return nil, fmt.Errorf("service: could not list user reports: %w", err)
	}
	return reports, nil
}

// Stats returns review-status counts.
func (s *reportService) Stats(ctx context.Context) (*ReportStats, error) {
	counts, err := s.repo.CountReportsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count reports: %w", err)
	}

	stats := &ReportStats{
		Pending:  counts[models.StatusPending],
		Verified: counts[models.StatusVerified],
		Resolved: counts[models.StatusResolved],
	}
	stats.Total = stats.Pending + stats.Verified + stats.Resolved
	return stats, nil
}
